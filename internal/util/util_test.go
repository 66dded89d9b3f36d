package util

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"
)

func TestRobotsChecker_CanFetch(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			hits.Add(1)
			_, _ = fmt.Fprint(w, "User-agent: persona\nDisallow: /private\nCrawl-delay: 2\n\nUser-agent: *\nDisallow: /\n")
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	checker := NewRobotsChecker("persona/0.1 (+https://github.com/ppiankov/persona)", 5*time.Second)
	ctx := context.Background()

	allowed, delay, err := checker.CanFetch(ctx, server.URL+"/user/alice/comments.json")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !allowed {
		t.Error("Expected public path to be allowed")
	}
	if delay != 2*time.Second {
		t.Errorf("Expected crawl delay 2s, got %v", delay)
	}

	allowed, _, _ = checker.CanFetch(ctx, server.URL+"/private/data")
	if allowed {
		t.Error("Expected /private to be disallowed")
	}

	if hits.Load() != 1 {
		t.Errorf("Expected robots.txt fetched once, got %d", hits.Load())
	}
}

func TestRobotsChecker_MissingRobotsAllows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	allowed, _, err := NewRobotsChecker("persona", time.Second).CanFetch(context.Background(), server.URL+"/anything")
	if err != nil || !allowed {
		t.Errorf("Expected allowed without robots.txt, got %v (%v)", allowed, err)
	}
}

func TestNormalizeUserAgent(t *testing.T) {
	tests := map[string]string{
		"persona/0.1 (+https://github.com/ppiankov/persona)": "persona",
		"curl":  "curl",
		"":      "",
	}
	for in, want := range tests {
		if got := NormalizeUserAgent(in); got != want {
			t.Errorf("NormalizeUserAgent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewProxyFunc(t *testing.T) {
	proxy := NewProxyFunc("http://proxy:8080", "http://secure-proxy:8443", "internal.example, .local")

	check := func(rawURL, want string) {
		t.Helper()
		u, _ := url.Parse(rawURL)
		got, err := proxy(&http.Request{URL: u})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if want == "" {
			if got != nil {
				t.Errorf("%s: expected direct connection, got %v", rawURL, got)
			}
			return
		}
		if got == nil || got.String() != want {
			t.Errorf("%s: expected %s, got %v", rawURL, want, got)
		}
	}

	check("http://www.reddit.com/user/a", "http://proxy:8080")
	check("https://www.reddit.com/user/a", "http://secure-proxy:8443")
	check("https://api.internal.example/x", "")
	check("http://box.local/x", "")
}
