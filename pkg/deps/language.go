package deps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/integrations"
	"github.com/matzehuels/depup/pkg/version"
)

// Language describes one ecosystem: which files hold its manifests, how its
// constraints are written and where its packages are published.
type Language struct {
	Name          string   // Identifier used in flags, config and JSON ("node")
	DisplayName   string   // Human-readable name ("Node.js")
	ManifestFiles []string // Manifest filenames looked for at the project root
	LockFiles     []string // Lock files that identify the package manager

	// DefaultRegistry is the registry display name ("npm", "crates.io").
	DefaultRegistry string

	// ExactIsPinned reports whether an Exact constraint means "do not touch".
	// Go and Gradle write every requirement as an exact version, so for them
	// only an explicit marker pins a dependency.
	ExactIsPinned bool

	// FetchLimit caps concurrent registry requests for this language on top
	// of the global limit. Zero means no extra limit.
	FetchLimit int

	ParseSpec  version.Parser
	Manifests  []ManifestParser
	NewFetcher func(backend cache.Cache, baseURL string, opts ...integrations.Option) Fetcher

	// Discover replaces the default root-only manifest lookup when set.
	Discover func(dir string, lang *Language) ([]Manifest, error)
}

// Manifest returns the parser for a manifest filename.
func (l *Language) Manifest(filename string) (ManifestParser, bool) {
	p, err := DetectManifest(filename, l.Manifests...)
	return p, err == nil
}

// HasManifests reports whether the language can read any manifest.
func (l *Language) HasManifests() bool {
	return len(l.Manifests) > 0
}

// Fetcher returns a registry client for the language. An empty baseURL
// selects the public registry.
func (l *Language) Fetcher(backend cache.Cache, baseURL string, opts ...integrations.Option) (Fetcher, error) {
	if l.NewFetcher == nil {
		return nil, fmt.Errorf("no registry for language %q", l.Name)
	}
	return l.NewFetcher(backend, baseURL, opts...), nil
}

// IsPinned reports whether dep must be left alone unless pinned
// dependencies were requested.
func (l *Language) IsPinned(dep Dependency) bool {
	if dep.Pinned || dep.Spec.Kind == version.GoPinned {
		return true
	}
	return l.ExactIsPinned && dep.Spec.Kind == version.Exact
}

// HasLockFile reports whether dir contains one of the language's lock files
// and returns the first one found.
func (l *Language) HasLockFile(dir string) (string, bool) {
	for _, name := range l.LockFiles {
		if fileExists(filepath.Join(dir, name)) {
			return name, true
		}
	}
	return "", false
}

func (l *Language) String() string {
	return l.DisplayName
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
