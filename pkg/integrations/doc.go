// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// Each registry has its own subpackage that lists the published versions of
// a package together with their release times:
//
//   - [npm]: Node Package Manager
//   - [pypi]: Python Package Index
//   - [crates]: Rust crates.io
//   - [goproxy]: Go Module Proxy
//   - [rubygems]: Ruby gems
//   - [packagist]: PHP Composer packages
//   - [maven]: Java Maven Central
//
// # Client Pattern
//
// All registry clients follow a consistent pattern:
//
//	client := npm.NewClient(cache.NewMemoryCache(0), "")  // "" = public registry
//	releases, err := client.FetchVersions(ctx, "express")
//
// FetchVersions returns [Release] values sorted ascending by
// [version.Compare]. Releases without a parseable timestamp are dropped, as
// are yanked or development releases where the registry reports them.
//
// # Shared Infrastructure
//
// The [Client] type provides shared HTTP functionality used by all registry
// clients:
//
//   - A 30 second request timeout and a "depup/<version>" User-Agent
//   - Up to four attempts with doubling backoff on network errors, timeouts,
//     429 responses and undecodable bodies
//   - Status classification: 404 is [ErrNotFound], other failures are
//     [ErrNetwork], both terminal
//   - A per-run memo through [cache.Cache] so a package listed by several
//     manifests is fetched once
//
// Errors are coded [errors.Error] values wrapping one of the sentinels, so
// both errors.Is(err, integrations.ErrNotFound) and
// errors.Is(err, errors.ErrCodePackageNotFound) work.
//
// # Adding a New Registry
//
//  1. Create a subpackage: pkg/integrations/<registry>/
//  2. Define response structs matching the API schema
//  3. Embed *integrations.Client and implement FetchVersions
//  4. Add a language descriptor in pkg/deps that wires the client
package integrations
