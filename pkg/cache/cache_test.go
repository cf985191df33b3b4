package cache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)
	defer c.Close()

	if _, hit, _ := c.Get(ctx, "versions:npm:react"); hit {
		t.Fatal("empty cache should miss")
	}

	if err := c.Set(ctx, "versions:npm:react", []byte(`["18.2.0"]`), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "versions:npm:react")
	if err != nil || !hit {
		t.Fatalf("Get = hit %v, err %v; want hit", hit, err)
	}
	if string(data) != `["18.2.0"]` {
		t.Errorf("Get data = %s", data)
	}

	if err := c.Delete(ctx, "versions:npm:react"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "versions:npm:react"); hit {
		t.Error("Get after Delete should miss")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(8).(*MemoryCache)

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "k", []byte("v"), time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); !hit {
		t.Fatal("fresh entry should hit")
	}

	now = now.Add(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0 after expiry", c.Len())
	}
}

func TestMemoryCacheEviction(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)

	for i := 0; i < 3; i++ {
		_ = c.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), 0)
	}
	if _, hit, _ := c.Get(ctx, "k0"); hit {
		t.Error("oldest entry should have been evicted")
	}
	if _, hit, _ := c.Get(ctx, "k2"); !hit {
		t.Error("newest entry should be present")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	if got := k.HTTPKey("pypi", "requests"); got != "http:pypi:requests" {
		t.Errorf("HTTPKey unexpected: %s", got)
	}
	if got := k.VersionsKey("PyPI", "requests"); got != "versions:pypi:requests" {
		t.Errorf("VersionsKey unexpected: %s", got)
	}
	if k.VersionsKey("npm", "a") == k.VersionsKey("crates.io", "a") {
		t.Error("different registries should produce different keys")
	}
}

func TestRegistryKeyer(t *testing.T) {
	k := NewRegistryKeyer("HTTPS://Mirror.Example/npm/")

	if got := k.VersionsKey("npm", "express"); got != "https://mirror.example/npm|versions:npm:express" {
		t.Errorf("VersionsKey unexpected: %s", got)
	}
	if got := k.HTTPKey("npm", "express"); got != "https://mirror.example/npm|http:npm:express" {
		t.Errorf("HTTPKey unexpected: %s", got)
	}
}

func TestRegistryKeyerSeparatesMirrors(t *testing.T) {
	public := NewRegistryKeyer("https://registry.npmjs.org")
	mirror := NewRegistryKeyer("https://npm.internal.example")
	if public.VersionsKey("npm", "react") == mirror.VersionsKey("npm", "react") {
		t.Error("different base URLs should produce different keys")
	}
	if public.VersionsKey("npm", "react") != NewRegistryKeyer("https://registry.npmjs.org/").VersionsKey("npm", "react") {
		t.Error("trailing slash should not change the key")
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := map[string]string{
		"https://Example.COM/":     "https://example.com",
		" http://host:8080/Path/ ": "http://host:8080/Path",
		"not a url/":               "not a url",
	}
	for in, want := range tests {
		if got := normalizeBaseURL(in); got != want {
			t.Errorf("normalizeBaseURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestKeyType(t *testing.T) {
	tests := map[string]string{
		"versions:npm:react": "versions",
		"http:pypi:django":   "http",
		"bare":               "unknown",
	}
	for key, want := range tests {
		if got := keyType(key); got != want {
			t.Errorf("keyType(%q) = %q, want %q", key, got, want)
		}
	}
}
