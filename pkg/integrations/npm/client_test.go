package npm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/integrations"
)

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	return NewClient(cache.NewNullCache(), serverURL, integrations.WithBackoff(time.Millisecond))
}

func TestNewClient(t *testing.T) {
	c := NewClient(nil, "")
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %s, want %s", c.baseURL, DefaultBaseURL)
	}
	if c.Registry() != "npm" {
		t.Errorf("Registry() = %s, want npm", c.Registry())
	}

	c = NewClient(nil, "https://npm.example.com/")
	if c.baseURL != "https://npm.example.com" {
		t.Errorf("trailing slash not trimmed: %s", c.baseURL)
	}
}

func TestClient_FetchVersions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/express" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{
			"name": "express",
			"dist-tags": {"latest": "4.19.0", "next": "5.0.0-beta.1"},
			"versions": {"4.18.0": {}, "4.19.0": {}, "4.9.0": {}, "5.0.0-beta.1": {}, "4.17.0": {}},
			"time": {
				"created": "2010-12-29T19:38:25.450Z",
				"4.9.0": "2014-09-08T00:00:00.000Z",
				"4.18.0": "2022-04-25T00:00:00.000Z",
				"4.19.0": "2024-03-20T00:00:00.000Z",
				"5.0.0-beta.1": "2024-02-14T00:00:00.000Z"
			}
		}`))
	}))
	defer server.Close()

	releases, err := testClient(t, server.URL).FetchVersions(context.Background(), "express")
	if err != nil {
		t.Fatalf("FetchVersions failed: %v", err)
	}

	// 4.17.0 has no time entry, 5.0.0-beta.1 is above latest.
	want := []string{"4.9.0", "4.18.0", "4.19.0"}
	if len(releases) != len(want) {
		t.Fatalf("expected %d releases, got %d: %+v", len(want), len(releases), releases)
	}
	for i, r := range releases {
		if r.Version != want[i] {
			t.Errorf("releases[%d] = %s, want %s", i, r.Version, want[i])
		}
	}
	if !releases[2].ReleasedAt.Equal(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected release time %v", releases[2].ReleasedAt)
	}
}

func TestClient_FetchVersions_DropsCanary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"dist-tags": {"latest": "19.2.1", "canary": "19.3.0-canary-2a1b3c4d-20250101"},
			"versions": {"19.2.1": {}, "19.3.0-canary-2a1b3c4d-20250101": {}},
			"time": {
				"19.2.1": "2024-12-01T00:00:00.000Z",
				"19.3.0-canary-2a1b3c4d-20250101": "2025-01-01T00:00:00.000Z"
			}
		}`))
	}))
	defer server.Close()

	releases, err := testClient(t, server.URL).FetchVersions(context.Background(), "react")
	if err != nil {
		t.Fatalf("FetchVersions failed: %v", err)
	}
	if len(releases) != 1 || releases[0].Version != "19.2.1" {
		t.Errorf("expected only 19.2.1, got %+v", releases)
	}
}

func TestClient_FetchVersions_Scoped(t *testing.T) {
	var rawPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawPath = r.URL.EscapedPath()
		w.Write([]byte(`{"dist-tags": {"latest": "7.0.0"}, "versions": {"7.0.0": {}}, "time": {"7.0.0": "2024-01-01T00:00:00Z"}}`))
	}))
	defer server.Close()

	if _, err := testClient(t, server.URL).FetchVersions(context.Background(), "@babel/core"); err != nil {
		t.Fatalf("FetchVersions failed: %v", err)
	}
	if rawPath != "/@babel%2Fcore" {
		t.Errorf("expected escaped scoped path, got %s", rawPath)
	}
}

func TestClient_FetchVersions_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).FetchVersions(context.Background(), "this-package-does-not-exist")
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FetchVersions_Memoized(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"dist-tags": {"latest": "1.0.0"}, "versions": {"1.0.0": {}}, "time": {"1.0.0": "2024-01-01T00:00:00Z"}}`))
	}))
	defer server.Close()

	c := NewClient(cache.NewMemoryCache(16), server.URL)
	for n := 0; n < 3; n++ {
		if _, err := c.FetchVersions(context.Background(), "left-pad"); err != nil {
			t.Fatalf("FetchVersions failed: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 request, got %d", calls)
	}
}

func TestClient_FetchVersions_InvalidName(t *testing.T) {
	c := NewClient(nil, "http://127.0.0.1:0")
	if _, err := c.FetchVersions(context.Background(), "../secret"); !errors.Is(err, integrations.ErrInvalidPackageName) {
		t.Errorf("expected ErrInvalidPackageName, got %v", err)
	}
}
