// Package goproxy provides an HTTP client for the Go module proxy protocol.
//
// # Overview
//
// Versions are listed in two steps:
//
//	GET /<module>/@v/list          newline-separated tagged versions
//	GET /<module>/@v/<version>.info  {"Version": ..., "Time": ...}
//
// Module paths and versions are escaped with golang.org/x/mod/module, so
// uppercase letters travel as "!" followed by the lowercase letter
// (github.com/Azure/... becomes github.com/!azure/...).
//
// # Usage
//
//	client := goproxy.NewClient(cache.NewMemoryCache(0), "")
//	releases, err := client.FetchVersions(ctx, "github.com/spf13/cobra")
//
// The .info requests for one module run with bounded concurrency. A version
// whose .info cannot be fetched is skipped rather than failing the module.
// An empty list (a module with only pseudo-versions) yields no releases.
package goproxy
