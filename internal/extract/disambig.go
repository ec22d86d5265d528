package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultMaxOptions caps how many candidate topics a disambiguation block
// enumerates.
const DefaultMaxOptions = 8

// refinePrompt trails every disambiguation block so the caller knows a
// narrower query is expected.
const refinePrompt = "Please specify your query for more precise results."

// optionSelectors are tried most-specific first; the first selector that
// yields any accepted candidate wins, candidates are never merged across
// selectors.
var optionSelectors = []string{
	"div.mw-parser-output > ul > li > a",
	"div.mw-parser-output > ul > li",
	"div.mw-parser-output > p > a",
	"div.mw-parser-output > p + ul li a",
}

// IsDisambiguation reports whether page markup looks like a disambiguation
// page. The checks are heuristic and evaluated short-circuit: a known
// disambiguation banner element, or the phrases "may refer to" /
// "disambiguation" anywhere in the page text. False positives are possible
// on articles that discuss disambiguation itself; see the package tests for
// the shapes this is calibrated against.
func IsDisambiguation(doc *goquery.Document) bool {
	if doc.Find("table#disambigbox").Length() > 0 {
		return true
	}
	if doc.Find("table.ambox-disambiguation, div#disambig").Length() > 0 {
		return true
	}
	text := strings.ToLower(doc.Text())
	return strings.Contains(text, "may refer to") || strings.Contains(text, "disambiguation")
}

// Disambiguation extracts candidate topics from disambiguation page markup
// and formats them as a content block: a header line, one bullet per
// deduplicated option capped at maxOptions, and a trailing refinement
// prompt. When no candidate survives filtering it falls back to the first
// paragraph of the page (truncated to 500 characters) or a generic
// description.
func Disambiguation(doc *goquery.Document, query string, maxOptions int) string {
	if maxOptions <= 0 {
		maxOptions = DefaultMaxOptions
	}

	var candidates []string
	for _, sel := range optionSelectors {
		doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := strings.TrimSpace(s.Text())
			href, ok := s.Attr("href")
			if !ok {
				// Bare list items link through their first anchor.
				href, _ = s.Find("a").First().Attr("href")
			}
			if acceptOption(text, href) {
				candidates = append(candidates, text)
			}
			return len(candidates) < maxOptions*2
		})
		if len(candidates) > 0 {
			break
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	unique := make([]string, 0, maxOptions)
	for _, opt := range candidates {
		if _, dup := seen[opt]; dup {
			continue
		}
		seen[opt] = struct{}{}
		unique = append(unique, opt)
		if len(unique) >= maxOptions {
			break
		}
	}

	if len(unique) > 0 {
		return formatOptions(query, unique)
	}

	if text := strings.TrimSpace(doc.Find(contentSelector).First().Find("p").First().Text()); text != "" {
		if len(text) > 500 {
			text = text[:500] + "..."
		}
		return text
	}
	return "This is a disambiguation page listing articles associated with the same title."
}

// FromOptions builds the same content block directly from an option list
// already enumerated by the summary API, capped at DefaultMaxOptions.
func FromOptions(query string, options []string) string {
	if len(options) > DefaultMaxOptions {
		options = options[:DefaultMaxOptions]
	}
	return formatOptions(query, options)
}

// acceptOption keeps a candidate only when it has meaningful visible text
// and links to an internal content page that is not itself a disambiguation
// page.
func acceptOption(text, href string) bool {
	if len(text) <= 2 {
		return false
	}
	if strings.Contains(strings.ToLower(text), "disambiguation") {
		return false
	}
	if !strings.HasPrefix(href, "/wiki/") {
		return false
	}
	if strings.Contains(strings.ToLower(href), "disambiguation") {
		return false
	}
	return true
}

func formatOptions(query string, options []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "'%s' may refer to:\n", query)
	for _, opt := range options {
		b.WriteString("• " + opt + "\n")
	}
	b.WriteString("\n")
	b.WriteString(refinePrompt)
	return b.String()
}
