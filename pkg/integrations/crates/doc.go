// Package crates provides an HTTP client for the crates.io API.
//
// # Overview
//
// This package lists crate versions from crates.io (https://crates.io),
// the Rust community's package registry:
//
//	GET /api/v1/crates/<name>   versions[].{num, created_at, yanked}
//
// Yanked versions are dropped.
//
// # Usage
//
//	client := crates.NewClient(cache.NewMemoryCache(0), "")
//	releases, err := client.FetchVersions(ctx, "serde")
//
// # Rate Limiting
//
// The crates.io crawler policy allows one request per second. Every client
// owns a token bucket (golang.org/x/time/rate) with a burst of one, so
// concurrent callers are spaced [MinInterval] apart. Memoized lookups do not
// consume a token.
//
// # User-Agent
//
// crates.io rejects requests without a User-Agent. The shared client always
// sends depup/<version>.
package crates
