package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/refdex/refdex/internal/app"
	"github.com/refdex/refdex/internal/fetch"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		queryText   string
		inputPath   string
		outputPath  string
		outputPDF   string
		topN        int
		sentences   int
		wikiBase    string
		wikiFixture string
		userAgent   string
		timeout     time.Duration
		llmBaseURL  string
		llmModel    string
		llmKey      string
		pdfBorder   bool
		configPath  string
		verbose     bool
	)

	flag.StringVar(&queryText, "query", "", "Topic text to resolve (free text)")
	flag.StringVar(&inputPath, "input", "", "Path to a file containing the topic text")
	flag.StringVar(&outputPath, "output", "", "Path to write the rendered text (default stdout)")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path to also write a PDF")
	flag.IntVar(&topN, "n", 3, "Maximum number of reference documents")
	flag.IntVar(&sentences, "sentences", 10, "Sentence limit per document summary")
	flag.StringVar(&wikiBase, "wiki.base", os.Getenv("WIKI_BASE_URL"), "Encyclopedia base URL (default en.wikipedia.org)")
	flag.StringVar(&wikiFixture, "wiki.file", os.Getenv("WIKI_FILE"), "Path to JSON file for offline article fixtures")
	flag.StringVar(&userAgent, "ua", "", "Custom User-Agent for page and API requests")
	flag.DurationVar(&timeout, "timeout", fetch.DefaultTimeout, "Per-request timeout")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for phrase generation")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for phrase generation (empty disables)")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for OpenAI-compatible server")
	flag.BoolVar(&pdfBorder, "pdf.border", true, "Draw a page border in the PDF output")
	flag.StringVar(&configPath, "config", "", "Path to YAML/JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	// Positional text is accepted as the query for convenience.
	if queryText == "" && flag.NArg() > 0 {
		queryText = flag.Arg(0)
	}

	cfg := app.Config{
		Query:           queryText,
		InputPath:       inputPath,
		OutputPath:      outputPath,
		OutputPDFPath:   outputPDF,
		TopN:            topN,
		SentenceLimit:   sentences,
		WikiBaseURL:     wikiBase,
		WikiFixturePath: wikiFixture,
		UserAgent:       userAgent,
		Timeout:         timeout,
		LLMBaseURL:      llmBaseURL,
		LLMModel:        llmModel,
		LLMAPIKey:       llmKey,
		PDFBorder:       pdfBorder,
		Verbose:         verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	return a.Run(ctx)
}
