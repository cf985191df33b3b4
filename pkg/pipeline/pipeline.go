// Package pipeline runs a complete dependency update over a project
// directory.
//
// A run has four stages:
//
//  1. Detect: find the manifests of every enabled language
//  2. Parse: read each manifest's declared dependencies
//  3. Fetch: look up published versions concurrently and judge each
//     dependency
//  4. Write: apply the updates to each manifest and replace it atomically
//
// Failures are contained: an unreadable manifest, an unreachable registry or
// a rejected rewrite is recorded as a [RunError] and the run carries on with
// everything else.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(0), logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Dir:    ".",
//	    Filter: update.NewFilter(nil, nil, nil, false, 14*24*time.Hour),
//	    DryRun: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Summary.TotalUpdates(), "updates")
package pipeline

import (
	"time"

	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/deps/languages"
	"github.com/matzehuels/depup/pkg/errors"
	"github.com/matzehuels/depup/pkg/update"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultConcurrency bounds registry lookups across all languages that
	// do not declare their own limit.
	DefaultConcurrency = 10

	// DefaultDir is the directory searched when none is given.
	DefaultDir = "."
)

// =============================================================================
// Options
// =============================================================================

// Options configures a run.
type Options struct {
	// Dir is the project root. Only the root and the locations a language
	// knows about (workspace members, src-tauri) are searched.
	Dir string

	// Languages are the ecosystems to detect. Defaults to languages.All.
	Languages []*deps.Language

	// Filter decides which dependencies are looked up at all.
	Filter update.Filter

	// DryRun computes every change without touching the files.
	DryRun bool

	// Concurrency bounds lookups for languages without a FetchLimit.
	Concurrency int

	// Registries overrides the registry base URL per language name.
	Registries map[string]string

	// Now fixes the clock of the age filter. Zero means time.Now at the start
	// of the run.
	Now time.Time

	// Progress, if set, is called after each dependency is judged. It may be
	// called from several goroutines.
	Progress func(done, total int)

	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Dir == "" {
		o.Dir = DefaultDir
	}
	if len(o.Languages) == 0 {
		o.Languages = languages.All
	}
	switch {
	case o.Concurrency == 0:
		o.Concurrency = DefaultConcurrency
	case o.Concurrency < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "concurrency must be positive, got %d", o.Concurrency)
	}
	for name := range o.Registries {
		if !hasLanguage(o.Languages, name) {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown language %q in registries", name)
		}
	}
	o.validated = true
	return nil
}

func hasLanguage(langs []*deps.Language, name string) bool {
	for _, l := range langs {
		if l.Name == name {
			return true
		}
	}
	return false
}

// =============================================================================
// Results
// =============================================================================

// Result is the outcome of a run.
type Result struct {
	// Summary holds one entry per parsed manifest, in detection order.
	Summary update.Summary

	// Changes holds the before and after text of every manifest that had
	// updates to apply. In a dry run nothing was written.
	Changes []FileChange

	// Errors are the failures that did not stop the run.
	Errors []RunError

	Stats Stats
}

// HasErrors reports whether any error was recorded.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// FileChange describes the rewrite of one manifest.
type FileChange struct {
	Path    string
	Before  string
	After   string
	Applied int
	Failed  int
	Written bool
}

// Stats contains run statistics.
type Stats struct {
	Manifests    int
	Dependencies int
	Fetched      int
	DetectTime   time.Duration
	FetchTime    time.Duration
	WriteTime    time.Duration
}
