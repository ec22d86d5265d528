package wiki

import (
	"context"
	"fmt"
	"strings"
)

// Page identifies a resolved encyclopedia article.
type Page struct {
	Title string
	URL   string
}

// API is the minimal search/summary surface the resolution pipeline needs.
// Implementations must return typed errors so callers can distinguish an
// ambiguous title from a missing one: *DisambiguationError when the title
// names a disambiguation page, *NotFoundError when no article exists.
type API interface {
	Search(ctx context.Context, query string, limit int) ([]string, error)
	Page(ctx context.Context, title string) (Page, error)
	Summary(ctx context.Context, title string, sentences int) (string, error)
}

// DisambiguationError reports that a title names a disambiguation page.
// Options carries the candidate topics when the provider could enumerate
// them; it may be empty.
type DisambiguationError struct {
	Title   string
	Options []string
}

func (e *DisambiguationError) Error() string {
	if len(e.Options) == 0 {
		return fmt.Sprintf("%q is a disambiguation page", e.Title)
	}
	return fmt.Sprintf("%q may refer to: %s", e.Title, strings.Join(e.Options, ", "))
}

// NotFoundError reports that no article exists for a title.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("page %q does not exist", e.Title)
}
