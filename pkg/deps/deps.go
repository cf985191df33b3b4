package deps

import (
	"context"

	"github.com/matzehuels/depup/pkg/errors"
	"github.com/matzehuels/depup/pkg/integrations"
	"github.com/matzehuels/depup/pkg/version"
)

// Dependency is one declared dependency of a manifest.
type Dependency struct {
	Name     string       // Package name as the registry knows it ("serde", "org.slf4j:slf4j-api")
	Spec     version.Spec // Declared constraint
	Dev      bool         // Development, test or build-only dependency
	Language string       // Language name ("rust")
	Variable string       // Gradle variable holding the version, if any
	Pinned   bool         // Explicitly pinned in the manifest (go.mod "// pinned")
}

// Version returns the numeric body of the declared constraint.
func (d Dependency) Version() string {
	return d.Spec.Version
}

// ManifestParser reads dependencies from manifest text and rewrites versions
// in place. Path arguments only label error messages.
type ManifestParser interface {
	// Type returns the manifest file type ("package.json", "Cargo.toml").
	Type() string

	// Supports reports whether this parser handles the given filename.
	Supports(filename string) bool

	// Parse returns the dependencies declared in content, in declaration
	// order. Entries whose constraint is not recognised are left out.
	Parse(path, content string) ([]Dependency, error)

	// Update returns content with the version of pkg replaced by newVersion.
	// Only the bytes of the version literal change. It fails with
	// INVALID_VERSION_SPEC when pkg is not found or its constraint is not
	// recognised.
	Update(path, content, pkg, newVersion string) (string, error)
}

// Fetcher lists the published versions of a package.
type Fetcher interface {
	// FetchVersions returns the releases of pkg sorted ascending.
	FetchVersions(ctx context.Context, pkg string) ([]integrations.Release, error)

	// Registry returns the registry display name.
	Registry() string
}

// Manifest is a manifest file found by [Detect].
type Manifest struct {
	Path          string
	Language      *Language
	WorkspaceRoot bool // root package.json of a pnpm workspace
	Tauri         bool // src-tauri/Cargo.toml of a Tauri app
}

// ErrNotUpdated is the error every writer returns when pkg cannot be
// rewritten in file.
func ErrNotUpdated(file, pkg string) error {
	return errors.New(errors.ErrCodeInvalidVersionSpec,
		"invalid version specification '%s' in %s: package not found or version could not be updated", pkg, file)
}

// ParseError wraps a syntax error of a manifest. format is "JSON", "TOML" or
// "go.mod".
func ParseError(format, file string, err error) error {
	return errors.New(errors.ErrCodeManifestParse, "failed to parse %s in %s: %v", format, file, err)
}

// FormatVersion renders newVersion in the shape of spec. Ranges and
// wildcards have no single operator to keep, so they become the bare version.
func FormatVersion(spec version.Spec, newVersion string) string {
	switch spec.Kind {
	case version.Range, version.Wildcard, version.Any:
		return newVersion
	}
	return spec.FormatUpdated(newVersion)
}
