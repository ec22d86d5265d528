package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// contentSelector is the main article container on MediaWiki page markup.
const contentSelector = "div.mw-parser-output"

// minParagraphChars filters out image captions, coordinates and other
// boilerplate that renders as short paragraphs.
const minParagraphChars = 50

// Content manually extracts readable article text from page markup, used
// when the structured summary API is unavailable. It scans the main content
// container for paragraphs and headings in document order, keeping
// paragraphs longer than minParagraphChars and wrapping headings in blank
// lines, until sentenceLimit lines are collected. At most 2×sentenceLimit
// elements are considered.
//
// If nothing survives the filter it degrades, in order, to the first
// paragraph of the container unfiltered, then to raw visible-text lines of
// the whole document sliced to sentenceLimit. The result is non-empty for
// any document that has visible text at all.
func Content(doc *goquery.Document, sentenceLimit int) string {
	if sentenceLimit <= 0 {
		sentenceLimit = 10
	}

	var lines []string
	container := doc.Find(contentSelector).First()
	if container.Length() > 0 {
		considered := 0
		container.Find("p, h1, h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if considered >= sentenceLimit*2 {
				return false
			}
			considered++
			text := strings.TrimSpace(s.Text())
			if goquery.NodeName(s) == "p" {
				if len(text) > minParagraphChars {
					lines = append(lines, text)
				}
			} else if text != "" {
				// Section marker: keep the heading set off by blank lines.
				lines = append(lines, "\n"+text+"\n")
			}
			return len(lines) < sentenceLimit
		})
	}

	if len(lines) == 0 && container.Length() > 0 {
		if text := strings.TrimSpace(container.Find("p").First().Text()); text != "" {
			lines = append(lines, text)
		}
	}

	if len(lines) == 0 {
		raw := VisibleLines(doc)
		if len(raw) > sentenceLimit {
			raw = raw[:sentenceLimit]
		}
		lines = raw
	}

	if len(lines) > sentenceLimit {
		lines = lines[:sentenceLimit]
	}
	return strings.Join(lines, "\n")
}
