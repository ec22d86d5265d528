package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

const longPara = "Artillery is a class of heavy military ranged weapons that launch munitions far beyond the range of infantry firearms."

func TestContent_KeepsLongParagraphsAndHeadings(t *testing.T) {
	doc := parse(t, `<html><body><div class="mw-parser-output">
		<p>Short caption.</p>
		<p>`+longPara+`</p>
		<h2>History</h2>
		<p>`+longPara+`</p>
	</div></body></html>`)

	got := Content(doc, 10)
	lines := strings.Split(got, "\n")
	if strings.Contains(got, "Short caption.") {
		t.Fatalf("short paragraph kept: %q", got)
	}
	if lines[0] != longPara {
		t.Fatalf("first line: %q", lines[0])
	}
	if !strings.Contains(got, "\nHistory\n") {
		t.Fatalf("heading not wrapped: %q", got)
	}
}

func TestContent_StopsAtSentenceLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<html><body><div class="mw-parser-output">`)
	for i := 0; i < 20; i++ {
		b.WriteString("<p>" + longPara + "</p>")
	}
	b.WriteString(`</div></body></html>`)

	got := Content(parse(t, b.String()), 3)
	if n := len(strings.Split(got, "\n")); n != 3 {
		t.Fatalf("expected 3 lines, got %d", n)
	}
}

func TestContent_FallsBackToFirstParagraphUnfiltered(t *testing.T) {
	doc := parse(t, `<html><body><div class="mw-parser-output">
		<p>All paragraphs here are short.</p>
		<p>Also short.</p>
	</div></body></html>`)

	got := Content(doc, 5)
	if got != "All paragraphs here are short." {
		t.Fatalf("got %q", got)
	}
}

func TestContent_FallsBackToRawTextLines(t *testing.T) {
	doc := parse(t, `<html><body>
		<div>line one of text</div>
		<div>line two of text</div>
		<div>line three of text</div>
	</body></html>`)

	got := Content(doc, 2)
	if got == "" {
		t.Fatalf("expected non-empty raw-text fallback")
	}
	if n := len(strings.Split(got, "\n")); n > 2 {
		t.Fatalf("raw fallback not sliced: %q", got)
	}
}

func TestVisibleLines_SkipsScriptsAndChrome(t *testing.T) {
	doc := parse(t, `<html><body>
		<script>var hidden = 1;</script>
		<nav>menu entry</nav>
		<p>visible text</p>
	</body></html>`)

	lines := VisibleLines(doc)
	joined := strings.Join(lines, "\n")
	if strings.Contains(joined, "hidden") || strings.Contains(joined, "menu entry") {
		t.Fatalf("chrome leaked: %q", joined)
	}
	if !strings.Contains(joined, "visible text") {
		t.Fatalf("visible text missing: %q", joined)
	}
}
