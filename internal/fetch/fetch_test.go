package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGet_SendsUserAgentAndReturnsBody(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	c := &Client{}
	body, status, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if status != 200 {
		t.Fatalf("status: %d", status)
	}
	if string(body) != "hello" {
		t.Fatalf("body: %q", string(body))
	}
	if gotUA != DefaultUserAgent {
		t.Fatalf("user-agent: %q", gotUA)
	}
}

func TestGet_NonSuccessStatusIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := &Client{}
	_, status, err := c.Get(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("expected error")
	}
	var se *StatusError
	if !errors.As(err, &se) || se.Code != 404 || status != 404 {
		t.Fatalf("expected 404 StatusError, got %v (status %d)", err, status)
	}
}

func TestGet_TimeoutSurfacesAsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := &Client{PerRequestTimeout: 20 * time.Millisecond}
	_, _, err := c.Get(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
}

func TestGet_RejectsNonHTTPScheme(t *testing.T) {
	c := &Client{}
	_, _, err := c.Get(context.Background(), "file:///etc/passwd")
	if err == nil {
		t.Fatalf("expected scheme error")
	}
}
