package app

import (
	"fmt"
	"strings"

	"github.com/refdex/refdex/internal/resolve"
)

// RenderText lays out resolved documents as numbered blocks:
//
//	<index>. <title>
//	<source URL>
//	<blank>
//	<content lines>
//
// The PDF writer consumes exactly this structure, so it is part of the
// contract with downstream consumers, not a presentation detail.
func RenderText(docs []resolve.Document) string {
	var b strings.Builder
	for i, d := range docs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, d.Title)
		b.WriteString(d.SourceURL + "\n")
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(d.Content, "\n") + "\n")
	}
	return b.String()
}
