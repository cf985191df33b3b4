// Package rubygems provides an HTTP client for the RubyGems.org API.
//
// Versions come from GET /api/v1/versions/<gem>.json, an array of
// {number, platform, created_at} objects. Platform-specific builds
// (x86_64-linux, java, ...) repeat a version already published for the
// "ruby" platform and are dropped, as are yanked entries.
//
//	client := rubygems.NewClient(cache.NewMemoryCache(0), "")
//	releases, err := client.FetchVersions(ctx, "rails")
package rubygems
