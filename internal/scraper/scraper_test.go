package scraper

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func serve(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, html)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExcerpt_PrefersMetaDescription(t *testing.T) {
	srv := serve(t, `<html><head>
		<meta name="description" content="Verstappen cruised to victory in a dominant drive.">
		</head><body><p>`+strings.Repeat("body text ", 20)+`</p></body></html>`)

	got, err := NewExtractor(5 * time.Second).Excerpt(srv.URL)
	if err != nil {
		t.Fatalf("excerpt: %v", err)
	}
	if got != "Verstappen cruised to victory in a dominant drive." {
		t.Errorf("got %q, want the meta description", got)
	}
}

func TestExcerpt_FallsBackToFirstSubstantialParagraph(t *testing.T) {
	long := "The race unfolded over fifty-eight laps of relentless pressure from the chasing pack."
	srv := serve(t, `<html><body>
		<p>Short.</p>
		<p>`+long+`</p>
		</body></html>`)

	got, err := NewExtractor(5 * time.Second).Excerpt(srv.URL)
	if err != nil {
		t.Fatalf("excerpt: %v", err)
	}
	if got != long {
		t.Errorf("got %q, want the first paragraph over 50 characters", got)
	}
}

func TestExcerpt_TruncatesTo500Runes(t *testing.T) {
	srv := serve(t, `<html><head><meta name="description" content="`+strings.Repeat("a", 600)+`"></head></html>`)

	got, err := NewExtractor(5 * time.Second).Excerpt(srv.URL)
	if err != nil {
		t.Fatalf("excerpt: %v", err)
	}
	if n := utf8.RuneCountInString(got); n != 500 {
		t.Errorf("excerpt is %d runes, want 500", n)
	}
}

func TestExcerpt_Failures(t *testing.T) {
	empty := serve(t, `<html><body><p>Too short.</p></body></html>`)
	if _, err := NewExtractor(5 * time.Second).Excerpt(empty.URL); err == nil {
		t.Error("expected error when no usable content exists")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()
	if _, err := NewExtractor(5 * time.Second).Excerpt(srv.URL); err == nil {
		t.Error("expected error for a non-200 page")
	}
}
