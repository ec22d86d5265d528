package resolve

import (
	"net/url"
	"strings"
)

// Document is one resolved reference: a titled block of text plus its
// provenance URL. Content is never empty for a returned document and
// SourceURL is always an absolute URL, including for synthetic placeholder
// documents. Documents are never mutated after creation.
type Document struct {
	Title            string
	Content          string
	SourceURL        string
	IsDisambiguation bool
}

// Kind tags the result of one resolution attempt.
type Kind int

const (
	// NotFound means no usable page; the caller moves to its next
	// fallback tier.
	NotFound Kind = iota
	// Resolved carries a normal article document.
	Resolved
	// Disambiguation carries a document enumerating candidate topics;
	// the caller is expected to re-run with a refined query.
	Disambiguation
)

// Outcome is the discriminated result of one resolution attempt. Doc is
// meaningful only when Kind is Resolved or Disambiguation.
type Outcome struct {
	Kind Kind
	Doc  Document
}

// DirectURL builds the deterministic article address tried before any
// search call: spaces become underscores and the title is percent-encoded
// as a URL path segment.
func DirectURL(base, query string) string {
	title := strings.ReplaceAll(strings.TrimSpace(query), " ", "_")
	u := url.URL{Path: "/wiki/" + title}
	return strings.TrimRight(base, "/") + u.EscapedPath()
}
