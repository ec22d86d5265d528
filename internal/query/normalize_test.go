package query

import (
	"strings"
	"testing"
)

func TestNormalize_StripsPreambleAndEmphasis(t *testing.T) {
	raw := "Sure, here is the search phrase: **Battle of _Hastings_**"
	got := Normalize(raw)
	if got != "Battle of Hastings" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalize_FirstNonBlankLineWins(t *testing.T) {
	raw := "\n\n  `artillery`  \nsecond line ignored\n"
	got := Normalize(raw)
	if got != "artillery" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalize_PreambleVariants(t *testing.T) {
	for _, raw := range []string{
		"Search phrase: quantum computing",
		"Here's the phrase: quantum computing",
		"Here is the search phrase: quantum computing",
		"search phrase: quantum computing",
	} {
		if got := Normalize(raw); got != "quantum computing" {
			t.Fatalf("input %q: got %q", raw, got)
		}
	}
}

func TestNormalize_EmptyAndBlankInputs(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t\n", "***"} {
		if got := Normalize(raw); got != "" {
			t.Fatalf("input %q: expected empty, got %q", raw, got)
		}
	}
}

func TestNormalize_OutputIsSingleCleanLine(t *testing.T) {
	raw := "Here is the phrase:\n*multi*\n_line_\n`noise`\n"
	got := Normalize(raw)
	if strings.ContainsAny(got, "*_`\n") {
		t.Fatalf("markers survived: %q", got)
	}
	if got != "multi" {
		t.Fatalf("got %q", got)
	}
}
