package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureJSON = `[
  {"title": "Artillery", "url": "https://en.wikipedia.org/wiki/Artillery", "summary": "Artillery is a class of heavy military ranged weapons."}
]`

// Offline end-to-end: the direct page address 404s, so resolution falls
// through to the search fallback backed by the file fixture.
func TestRun_OfflineFixture(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	fixture := filepath.Join(dir, "articles.json")
	if err := os.WriteFile(fixture, []byte(fixtureJSON), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	out := filepath.Join(dir, "out.txt")

	cfg := Config{
		Query:           "artillery",
		OutputPath:      out,
		WikiBaseURL:     srv.URL,
		WikiFixturePath: fixture,
	}
	a, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got := string(b)
	if !strings.HasPrefix(got, "1. Artillery\n") {
		t.Fatalf("output:\n%s", got)
	}
	if !strings.Contains(got, "https://en.wikipedia.org/wiki/Artillery") {
		t.Fatalf("source url missing:\n%s", got)
	}
}

func TestRun_WritesPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	fixture := filepath.Join(dir, "articles.json")
	if err := os.WriteFile(fixture, []byte(fixtureJSON), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	out := filepath.Join(dir, "out.txt")
	outPDF := filepath.Join(dir, "out.pdf")

	cfg := Config{
		Query:           "artillery",
		OutputPath:      out,
		OutputPDFPath:   outPDF,
		WikiBaseURL:     srv.URL,
		WikiFixturePath: fixture,
		PDFBorder:       true,
	}
	a, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	b, err := os.ReadFile(outPDF)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !strings.HasPrefix(string(b), "%PDF-") {
		t.Fatalf("not a pdf: %q", string(b[:8]))
	}
}
