package resolve

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/refdex/refdex/internal/extract"
	"github.com/refdex/refdex/internal/wiki"
)

// Fetcher issues one bounded page GET. *fetch.Client satisfies this; tests
// substitute canned bodies.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, int, error)
}

// Resolver resolves a single query against the encyclopedia source. It
// tries the direct page address first, classifies disambiguation pages from
// their markup, and prefers the structured summary API over manual
// extraction. Every failure mode collapses into a NotFound outcome; no
// error ever escapes Resolve.
type Resolver struct {
	Fetcher Fetcher
	API     wiki.API
	// BaseURL of the encyclopedia instance. Empty means wiki.DefaultBaseURL.
	BaseURL string
	// Logger for diagnostic events. Nil means the global logger.
	Logger *zerolog.Logger
}

func (r *Resolver) base() string {
	if r.BaseURL != "" {
		return strings.TrimRight(r.BaseURL, "/")
	}
	return wiki.DefaultBaseURL
}

func (r *Resolver) log() *zerolog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return &log.Logger
}

// Resolve runs the direct-lookup cascade for one query. maxOptions caps the
// options enumerated in a disambiguation document.
//
// The strategy order is fixed: fetch the direct page address; classify
// disambiguation from markup; otherwise resolve the canonical page and a
// sentence-limited summary through the API; on a disambiguation or
// not-found error from the API, fall back to manual extraction of the
// already-fetched markup. Network and parse failures at any step yield
// NotFound so the caller can run its search fallback.
func (r *Resolver) Resolve(ctx context.Context, query string, sentenceLimit, maxOptions int) Outcome {
	directURL := DirectURL(r.base(), query)
	logger := r.log()
	logger.Debug().Str("url", directURL).Msg("checking direct page")

	body, status, err := r.Fetcher.Get(ctx, directURL)
	if err != nil {
		logger.Debug().Err(err).Int("status", status).Str("url", directURL).Msg("direct page unavailable")
		return Outcome{Kind: NotFound}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return Outcome{Kind: NotFound}
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		logger.Debug().Err(err).Str("url", directURL).Msg("direct page markup unparsable")
		return Outcome{Kind: NotFound}
	}

	if extract.IsDisambiguation(doc) {
		logger.Debug().Str("query", query).Msg("direct page is a disambiguation page")
		return Outcome{Kind: Disambiguation, Doc: Document{
			Title:            query + " (Disambiguation)",
			Content:          extract.Disambiguation(doc, query, maxOptions),
			SourceURL:        directURL,
			IsDisambiguation: true,
		}}
	}

	title := strings.ReplaceAll(query, " ", "_")
	page, err := r.API.Page(ctx, title)
	if err == nil {
		summary, serr := r.API.Summary(ctx, page.Title, sentenceLimit)
		if serr == nil {
			logger.Debug().Str("title", page.Title).Msg("resolved via summary api")
			return Outcome{Kind: Resolved, Doc: Document{
				Title:     page.Title,
				Content:   summary,
				SourceURL: page.URL,
			}}
		}
		err = serr
	}

	var de *wiki.DisambiguationError
	var nf *wiki.NotFoundError
	if errors.As(err, &de) || errors.As(err, &nf) {
		// The page markup is already in hand; scrape it instead.
		content := extract.Content(doc, sentenceLimit)
		if strings.TrimSpace(content) == "" {
			return Outcome{Kind: NotFound}
		}
		logger.Debug().Str("query", query).Msg("summary api refused title; extracted manually")
		return Outcome{Kind: Resolved, Doc: Document{
			Title:     query,
			Content:   content,
			SourceURL: directURL,
		}}
	}

	logger.Debug().Err(err).Str("query", query).Msg("summary api unavailable for direct page")
	return Outcome{Kind: NotFound}
}
