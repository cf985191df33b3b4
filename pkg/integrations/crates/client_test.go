package crates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/integrations"
)

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	c := NewClient(cache.NewNullCache(), serverURL, integrations.WithBackoff(time.Millisecond))
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

func TestNewClient(t *testing.T) {
	c := NewClient(nil, "")
	if c.Client == nil {
		t.Error("expected client to be initialized")
	}
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %s, want %s", c.baseURL, DefaultBaseURL)
	}
	if c.limiter.Limit() != rate.Every(time.Second) || c.limiter.Burst() != 1 {
		t.Errorf("limiter = %v/%d, want 1/s burst 1", c.limiter.Limit(), c.limiter.Burst())
	}
}

func TestClient_FetchVersions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/crates/serde" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{
			"crate": {"name": "serde", "max_version": "1.0.195"},
			"versions": [
				{"num": "1.0.195", "created_at": "2024-01-01T12:00:00.000000+00:00", "yanked": false},
				{"num": "1.0.194", "created_at": "2023-12-20T12:00:00.000000+00:00", "yanked": true},
				{"num": "1.0.190", "created_at": "2023-10-20T12:00:00.000000+00:00", "yanked": false},
				{"num": "0.9.0", "created_at": "not a time", "yanked": false}
			]
		}`))
	}))
	defer server.Close()

	releases, err := testClient(t, server.URL).FetchVersions(context.Background(), "serde")
	if err != nil {
		t.Fatalf("FetchVersions failed: %v", err)
	}

	if len(releases) != 2 {
		t.Fatalf("expected 2 releases, got %+v", releases)
	}
	if releases[0].Version != "1.0.190" || releases[1].Version != "1.0.195" {
		t.Errorf("unexpected order: %+v", releases)
	}
}

func TestClient_FetchVersions_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).FetchVersions(context.Background(), "nonexistent")
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FetchVersions_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"versions": []}`))
	}))
	defer server.Close()

	c := NewClient(cache.NewNullCache(), server.URL)
	c.limiter = rate.NewLimiter(rate.Every(50*time.Millisecond), 1)

	start := time.Now()
	for _, name := range []string{"a", "b", "c"} {
		if _, err := c.FetchVersions(context.Background(), name); err != nil {
			t.Fatalf("FetchVersions(%s) failed: %v", name, err)
		}
	}
	if elapsed := time.Since(start); elapsed < 90*time.Millisecond {
		t.Errorf("three requests took %v, want at least two intervals", elapsed)
	}
}

func TestClient_FetchVersions_CancelledWhileWaiting(t *testing.T) {
	c := NewClient(cache.NewNullCache(), "http://127.0.0.1:0")
	c.limiter = rate.NewLimiter(rate.Every(time.Hour), 1)
	c.limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.FetchVersions(ctx, "serde"); err == nil {
		t.Error("expected error when context is cancelled")
	}
}
