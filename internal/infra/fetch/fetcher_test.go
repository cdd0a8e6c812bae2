package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domain "github.com/satyacheck-ai/satyacheck/internal/domain/analysis"
)

func newTestServer(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestPageTextJoinsParagraphs(t *testing.T) {
	srv := newTestServer(http.StatusOK, `<html><body><h1>Title</h1><p>A.</p><div><p>B.</p></div></body></html>`)
	defer srv.Close()

	got, err := New(0).PageText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("PageText() error = %v", err)
	}
	if got != "A. B." {
		t.Errorf("PageText() = %q, want %q", got, "A. B.")
	}
}

func TestPageTextNoParagraphs(t *testing.T) {
	srv := newTestServer(http.StatusOK, `<html><body><h1>Only a heading</h1></body></html>`)
	defer srv.Close()

	got, err := New(0).PageText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("PageText() error = %v (an empty page is not an error)", err)
	}
	if got != "" {
		t.Errorf("PageText() = %q, want empty", got)
	}
}

func TestPageTextHTTPError(t *testing.T) {
	srv := newTestServer(http.StatusNotFound, "not found")
	defer srv.Close()

	got, err := New(0).PageText(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("PageText() = %q, want error for 404", got)
	}
	var fe *domain.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
}

func TestPageTextTransportError(t *testing.T) {
	srv := newTestServer(http.StatusOK, "")
	srv.Close() // closed before use

	_, err := New(0).PageText(context.Background(), srv.URL)
	var fe *domain.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
}

func TestPageTextSendsBrowserUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<p>ok</p>"))
	}))
	defer srv.Close()

	if _, err := New(5*time.Second).PageText(context.Background(), srv.URL); err != nil {
		t.Fatalf("PageText() error = %v", err)
	}
	if gotUA != "Mozilla/5.0" {
		t.Errorf("User-Agent = %q, want Mozilla/5.0", gotUA)
	}
}
