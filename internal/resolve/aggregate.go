package resolve

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/refdex/refdex/internal/extract"
	"github.com/refdex/refdex/internal/wiki"
)

// DefaultTopic substitutes for unusable queries so the pipeline always has
// something to resolve.
const DefaultTopic = "artillery"

// Aggregator is the pipeline entry point: it drives the Resolver and, when
// direct resolution fails, a search fallback, a manual-extraction pass, and
// finally a synthetic placeholder. FetchTopResults never returns an empty
// list and never returns an error.
type Aggregator struct {
	Resolver *Resolver
	API      wiki.API
	// Logger for diagnostic events. Nil means the global logger.
	Logger *zerolog.Logger
}

func (a *Aggregator) log() *zerolog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return &log.Logger
}

// FetchTopResults resolves a query into an ordered list of up to n
// reference documents, each summary bounded to sentenceLimit sentences.
// A direct hit or a direct disambiguation page short-circuits to a
// single-element list. Otherwise up to 2n search candidates are tried in
// rank order; candidates whose title is itself a disambiguation marker are
// skipped, and candidates the summary API reports as ambiguous become
// disambiguation documents without stopping the loop. If everything fails
// the result is a single placeholder document, so the list is never empty.
func (a *Aggregator) FetchTopResults(ctx context.Context, query string, n, sentenceLimit int) []Document {
	if n <= 0 {
		n = 3
	}
	if sentenceLimit <= 0 {
		sentenceLimit = 10
	}
	logger := a.log()

	cleaned := strings.TrimSpace(query)
	switch strings.ToLower(cleaned) {
	case "", "none", "null":
		logger.Warn().Str("query", query).Str("fallback", DefaultTopic).Msg("unusable query, using default topic")
		cleaned = DefaultTopic
	}

	logger.Debug().Str("query", cleaned).Msg("starting resolution")
	if out := a.Resolver.Resolve(ctx, cleaned, sentenceLimit, n); out.Kind != NotFound {
		return []Document{out.Doc}
	}

	docs := a.searchFallback(ctx, cleaned, n, sentenceLimit)
	if len(docs) > 0 {
		return docs
	}

	if doc, ok := a.manualExtract(ctx, cleaned, sentenceLimit); ok {
		return []Document{doc}
	}

	logger.Warn().Str("query", cleaned).Msg("all strategies failed, returning placeholder")
	return []Document{Placeholder(a.Resolver.base(), cleaned)}
}

func (a *Aggregator) searchFallback(ctx context.Context, query string, n, sentenceLimit int) []Document {
	logger := a.log()
	titles, err := a.API.Search(ctx, query, n*2)
	if err != nil {
		logger.Warn().Err(err).Str("query", query).Msg("search failed")
		return nil
	}
	logger.Debug().Strs("titles", titles).Msg("search results")

	valid := make([]string, 0, len(titles))
	for _, t := range titles {
		if strings.Contains(strings.ToLower(t), "(disambiguation)") {
			continue
		}
		valid = append(valid, t)
	}
	if len(valid) > n {
		valid = valid[:n]
	}

	docs := make([]Document, 0, len(valid))
	for _, title := range valid {
		page, err := a.API.Page(ctx, title)
		if err == nil {
			summary, serr := a.API.Summary(ctx, page.Title, sentenceLimit)
			if serr == nil {
				docs = append(docs, Document{
					Title:     page.Title,
					Content:   summary,
					SourceURL: page.URL,
				})
				logger.Debug().Str("title", page.Title).Msg("search result added")
				continue
			}
			err = serr
		}

		var de *wiki.DisambiguationError
		if errors.As(err, &de) {
			// Ambiguous candidates still make the list; resolved and
			// disambiguation entries may coexist here.
			docs = append(docs, Document{
				Title:            title + " (Disambiguation)",
				Content:          extract.FromOptions(query, de.Options),
				SourceURL:        DirectURL(a.Resolver.base(), title),
				IsDisambiguation: true,
			})
			logger.Debug().Str("title", title).Msg("disambiguation result added")
			continue
		}
		logger.Debug().Err(err).Str("title", title).Msg("skipping search candidate")
	}
	return docs
}

// manualExtract is the pre-placeholder tier: one more fetch of the direct
// page address with heuristic extraction of whatever came back.
func (a *Aggregator) manualExtract(ctx context.Context, query string, sentenceLimit int) (Document, bool) {
	directURL := DirectURL(a.Resolver.base(), query)
	body, _, err := a.Resolver.Fetcher.Get(ctx, directURL)
	if err != nil {
		a.log().Debug().Err(err).Str("url", directURL).Msg("manual extraction fetch failed")
		return Document{}, false
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return Document{}, false
	}
	content := extract.Content(doc, sentenceLimit)
	if strings.TrimSpace(content) == "" {
		return Document{}, false
	}
	return Document{Title: query, Content: content, SourceURL: directURL}, true
}

// Placeholder builds the synthetic document returned when every resolution
// strategy has failed. It carries a fixed availability caveat and the
// best-guess direct address so downstream rendering always has something
// well-formed to work with.
func Placeholder(base, query string) Document {
	directURL := DirectURL(base, query)
	content := fmt.Sprintf(`Reference content for '%s' is currently unavailable.

This may be due to:
• Network connectivity issues
• Encyclopedia API limitations
• The page not existing

Please try:
1. Checking your internet connection
2. Using a different search term
3. Trying again later

In the meantime, you can visit the source directly: %s`, query, directURL)

	return Document{
		Title:     query,
		Content:   content,
		SourceURL: directURL,
	}
}
