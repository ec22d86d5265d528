package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/refdex/refdex/internal/fetch"
	"github.com/refdex/refdex/internal/llm"
	"github.com/refdex/refdex/internal/phrase"
	"github.com/refdex/refdex/internal/query"
	"github.com/refdex/refdex/internal/resolve"
	"github.com/refdex/refdex/internal/wiki"
)

// App wires the resolution pipeline to its collaborators: the optional
// phrase-generating model, the encyclopedia API, and the text/PDF renderers.
type App struct {
	cfg    Config
	agg    *resolve.Aggregator
	phrase *phrase.Generator
}

func New(ctx context.Context, cfg Config) (*App, error) {
	if cfg.TopN <= 0 {
		cfg.TopN = 3
	}
	if cfg.SentenceLimit <= 0 {
		cfg.SentenceLimit = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = fetch.DefaultTimeout
	}

	var api wiki.API
	if cfg.WikiFixturePath != "" {
		api = &wiki.FileAPI{Path: cfg.WikiFixturePath}
	} else {
		api = &wiki.Client{
			BaseURL:    cfg.WikiBaseURL,
			UserAgent:  cfg.UserAgent,
			HTTPClient: &http.Client{Timeout: cfg.Timeout},
		}
	}

	resolver := &resolve.Resolver{
		Fetcher: &fetch.Client{UserAgent: cfg.UserAgent, PerRequestTimeout: cfg.Timeout},
		API:     api,
		BaseURL: cfg.WikiBaseURL,
	}
	a := &App{
		cfg: cfg,
		agg: &resolve.Aggregator{Resolver: resolver, API: api},
	}

	if cfg.LLMModel != "" {
		transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
		if cfg.LLMBaseURL != "" {
			transportCfg.BaseURL = cfg.LLMBaseURL
		}
		provider := &llm.OpenAIProvider{Inner: openai.NewClientWithConfig(transportCfg)}
		a.phrase = &phrase.Generator{Client: provider, Model: cfg.LLMModel}

		// Quick connectivity check; best-effort, the pipeline works
		// without the model.
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if models, err := provider.ListModels(pctx); err != nil {
			log.Warn().Err(err).Msg("LLM model list failed; continuing")
		} else if len(models.Models) == 0 {
			log.Warn().Msg("LLM returned zero models")
		}
	}

	return a, nil
}

// Run resolves the configured topic and writes the rendered results.
func (a *App) Run(ctx context.Context) error {
	text := a.cfg.Query
	if text == "" && a.cfg.InputPath != "" {
		b, err := os.ReadFile(a.cfg.InputPath)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		text = string(b)
	}

	raw := text
	if a.phrase != nil {
		if p, err := a.phrase.SearchPhrase(ctx, text); err != nil {
			log.Warn().Err(err).Msg("phrase generation failed; using input text directly")
		} else {
			raw = p
		}
	}
	q := query.Normalize(raw)
	log.Debug().Str("raw", raw).Str("query", q).Msg("normalized query")

	docs := a.agg.FetchTopResults(ctx, q, a.cfg.TopN, a.cfg.SentenceLimit)
	log.Info().Int("count", len(docs)).Str("query", q).Msg("resolved reference documents")

	content := RenderText(docs)
	if a.cfg.OutputPath != "" {
		if err := os.WriteFile(a.cfg.OutputPath, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.Info().Str("out", a.cfg.OutputPath).Msg("wrote output")
	} else {
		fmt.Print(content)
	}

	if a.cfg.OutputPDFPath != "" {
		title := q
		if strings.TrimSpace(title) == "" {
			title = resolve.DefaultTopic
		}
		if err := writeReferencePDF(title, docs, a.cfg.OutputPDFPath, a.cfg.PDFBorder); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", a.cfg.OutputPDFPath).Msg("wrote pdf")
	}
	return nil
}
