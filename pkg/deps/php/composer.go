package php

import (
	"strings"

	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/version"
)

var sections = []string{"require", "require-dev"}

// ComposerJSON reads and rewrites composer.json files.
type ComposerJSON struct{}

func (c *ComposerJSON) Type() string              { return "composer.json" }
func (c *ComposerJSON) Supports(name string) bool { return strings.EqualFold(name, "composer.json") }

// Parse returns the packages of require and require-dev in file order.
// Platform requirements are skipped.
func (c *ComposerJSON) Parse(path, content string) ([]deps.Dependency, error) {
	entries, err := deps.ScanJSONSections(content, sections...)
	if err != nil {
		return nil, deps.ParseError("JSON", path, err)
	}

	var out []deps.Dependency
	for _, e := range entries {
		if isPlatform(e.Name) {
			continue
		}
		spec, ok := version.ParsePHP(e.Value)
		if !ok {
			continue
		}
		out = append(out, deps.Dependency{
			Name:     e.Name,
			Spec:     spec,
			Dev:      e.Section == "require-dev",
			Language: languageName,
		})
	}
	return out, nil
}

// isPlatform reports whether name refers to the PHP runtime, an extension,
// a system library or Composer itself rather than a Packagist package.
func isPlatform(name string) bool {
	name = strings.ToLower(name)
	switch name {
	case "php", "composer", "composer-plugin-api", "composer-runtime-api":
		return true
	}
	for _, prefix := range []string{"php-", "ext-", "lib-"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Update rewrites the first declaration of pkg with a recognised constraint.
func (c *ComposerJSON) Update(path, content, pkg, newVersion string) (string, error) {
	if isPlatform(pkg) {
		return "", deps.ErrNotUpdated(path, pkg)
	}
	return deps.UpdateJSON(path, content, pkg, newVersion, version.ParsePHP, sections...)
}
