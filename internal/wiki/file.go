package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
)

// FileAPI serves canned articles from a local JSON file for offline and
// deterministic use. The file format is an array of objects:
//
//	{"title": "...", "url": "...", "summary": "...", "options": ["..."]}
//
// An entry with a non-empty options list behaves as a disambiguation page.
type FileAPI struct {
	Path string
}

type fileEntry struct {
	Title   string   `json:"title"`
	URL     string   `json:"url"`
	Summary string   `json:"summary"`
	Options []string `json:"options"`
}

func (f *FileAPI) load() ([]fileEntry, error) {
	if strings.TrimSpace(f.Path) == "" {
		return nil, errors.New("file api path is empty")
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	var entries []fileEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (f *FileAPI) Search(_ context.Context, query string, limit int) ([]string, error) {
	entries, err := f.load()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Title == "" {
			continue
		}
		if q == "" || strings.Contains(strings.ToLower(e.Title), q) || strings.Contains(strings.ToLower(e.Summary), q) {
			out = append(out, e.Title)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (f *FileAPI) Page(_ context.Context, title string) (Page, error) {
	entries, err := f.load()
	if err != nil {
		return Page{}, err
	}
	want := normalizeTitle(title)
	for _, e := range entries {
		if normalizeTitle(e.Title) != want {
			continue
		}
		if len(e.Options) > 0 {
			return Page{}, &DisambiguationError{Title: e.Title, Options: e.Options}
		}
		return Page{Title: e.Title, URL: e.URL}, nil
	}
	return Page{}, &NotFoundError{Title: title}
}

func (f *FileAPI) Summary(_ context.Context, title string, sentences int) (string, error) {
	entries, err := f.load()
	if err != nil {
		return "", err
	}
	want := normalizeTitle(title)
	for _, e := range entries {
		if normalizeTitle(e.Title) != want {
			continue
		}
		if len(e.Options) > 0 {
			return "", &DisambiguationError{Title: e.Title, Options: e.Options}
		}
		if strings.TrimSpace(e.Summary) == "" {
			return "", &NotFoundError{Title: title}
		}
		return limitSentences(e.Summary, sentences), nil
	}
	return "", &NotFoundError{Title: title}
}

// normalizeTitle folds case and the space/underscore distinction so direct
// URL titles match article titles.
func normalizeTitle(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", " "))
}

// limitSentences keeps roughly the first n sentences of a plain-text
// summary. Good enough for canned fixtures; the live API limits serverside.
func limitSentences(s string, n int) string {
	if n <= 0 {
		return strings.TrimSpace(s)
	}
	parts := strings.SplitAfter(strings.TrimSpace(s), ". ")
	if len(parts) <= n {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(strings.Join(parts[:n], ""))
}
