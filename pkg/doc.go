// Package pkg provides the core libraries of depup, a dependency updater for
// polyglot repositories.
//
// # Overview
//
// depup reads the manifests of a project, asks each ecosystem's registry for
// the published versions of every declared dependency, and rewrites the
// version literals in place. The pkg directory is organized into four areas:
//
//  1. [deps] and [version] - Manifests, constraints and their rewriting
//  2. [integrations] - Registry clients (npm, PyPI, crates.io, Go proxy,
//     RubyGems, Packagist, Maven Central)
//  3. [update] - The decision for each dependency: update or skip, and why
//  4. [pipeline] - Orchestration (detect → parse → fetch → write)
//
// # Architecture
//
// The data flow of a run:
//
//	Project directory
//	         ↓
//	    [deps] package (detect manifests, parse dependencies)
//	         ↓
//	    [integrations] package (fetch published versions, concurrently)
//	         ↓
//	    [update] package (filter, judge against the current constraint)
//	         ↓
//	    [deps] package (rewrite version literals, atomic file replace)
//
// # Quick Start
//
// Update every manifest under a directory:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/depup/pkg/cache"
//	    "github.com/matzehuels/depup/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(0), nil)
//	res, err := runner.Execute(context.Background(), pipeline.Options{Dir: "."})
//	if err != nil {
//	    return err
//	}
//	for _, m := range res.Summary.Manifests {
//	    for _, u := range m.Updates() {
//	        fmt.Println(u)
//	    }
//	}
//
// # Main Packages
//
// [deps] - The Language descriptor, Dependency, the ManifestParser interface
// and manifest detection. Each ecosystem has its own subpackage (javascript,
// python, rust, golang, ruby, php, java); [deps/languages] lists them all.
//
// [version] - Constraint parsing per ecosystem, the version comparator and
// prerelease detection.
//
// [integrations] - The shared HTTP client (retries, rate limits, memo) and one
// adapter per registry.
//
// [update] - Filters (--only, --exclude, pinned, --age), the judge that picks
// the newest eligible release, and run summaries.
//
// [pipeline] - The complete update run used by the CLI.
//
// [install] - Runs the project's package manager after an update.
//
// ## Infrastructure
//
// [cache] - In-run memo of registry responses.
//
// [config] - The depup.toml settings file.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for metrics and tracing.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/deps/...               # Specific package
//	go test -tags integration ./pkg/...  # Include live registry tests
//
// [deps]: https://pkg.go.dev/github.com/matzehuels/depup/pkg/deps
// [deps/languages]: https://pkg.go.dev/github.com/matzehuels/depup/pkg/deps/languages
// [version]: https://pkg.go.dev/github.com/matzehuels/depup/pkg/version
// [integrations]: https://pkg.go.dev/github.com/matzehuels/depup/pkg/integrations
// [update]: https://pkg.go.dev/github.com/matzehuels/depup/pkg/update
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/depup/pkg/pipeline
// [install]: https://pkg.go.dev/github.com/matzehuels/depup/pkg/install
// [cache]: https://pkg.go.dev/github.com/matzehuels/depup/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/depup/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/depup/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/depup/pkg/observability
package pkg
