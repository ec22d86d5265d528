package app

import "time"

// Config holds runtime configuration for the application.
type Config struct {
	// Query is the raw topic text. InputPath may supply it from a file
	// instead; Query wins when both are set.
	Query     string
	InputPath string

	// OutputPath receives the rendered text; empty means stdout.
	// OutputPDFPath additionally renders a PDF when set.
	OutputPath    string
	OutputPDFPath string

	// TopN bounds the result list; SentenceLimit bounds each summary.
	TopN          int
	SentenceLimit int

	// Encyclopedia source
	WikiBaseURL string
	// WikiFixturePath switches the search/summary API to a local JSON
	// fixture for offline runs.
	WikiFixturePath string
	UserAgent       string
	Timeout         time.Duration

	// LLM phrase generation (optional; raw text is used as the query
	// when unset)
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Rendering
	PDFBorder bool

	Verbose bool
}
