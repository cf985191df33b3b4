package rust

import (
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/version"
)

// CargoToml reads and rewrites Cargo.toml files.
type CargoToml struct{}

func (c *CargoToml) Type() string              { return "Cargo.toml" }
func (c *CargoToml) Supports(name string) bool { return strings.EqualFold(name, "cargo.toml") }

// dependency tables and whether they hold dev dependencies.
var tables = []struct {
	key string
	dev bool
}{
	{"dependencies", false},
	{"dev-dependencies", true},
	{"build-dependencies", true},
}

// Parse reads [dependencies], [dev-dependencies], [build-dependencies], the
// per-target variants and [workspace.dependencies]. Entries without a
// version (path, git or workspace = true) are skipped.
func (c *CargoToml) Parse(path, content string) ([]deps.Dependency, error) {
	var doc map[string]any
	md, err := toml.Decode(content, &doc)
	if err != nil {
		return nil, deps.ParseError("TOML", path, err)
	}

	var out []deps.Dependency
	read := func(dev bool, keys ...string) {
		table := lookup(doc, keys...)
		for _, name := range deps.TOMLKeys(md, keys...) {
			if d, ok := parseEntry(name, table[name], dev); ok {
				out = append(out, d)
			}
		}
	}

	for _, t := range tables {
		read(t.dev, t.key)
	}
	for _, target := range deps.TOMLKeys(md, "target") {
		read(false, "target", target, "dependencies")
		read(true, "target", target, "dev-dependencies")
	}
	read(false, "workspace", "dependencies")
	return out, nil
}

func lookup(doc map[string]any, keys ...string) map[string]any {
	cur := doc
	for _, k := range keys {
		next, ok := cur[k].(map[string]any)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

func parseEntry(name string, v any, dev bool) (deps.Dependency, bool) {
	var raw string
	switch v := v.(type) {
	case string:
		raw = v
	case map[string]any:
		raw, _ = v["version"].(string)
	}
	spec, ok := version.ParseRust(raw)
	if !ok {
		return deps.Dependency{}, false
	}
	return deps.Dependency{Name: name, Spec: spec, Dev: dev, Language: languageName}, true
}

// Update rewrites the version of pkg in the first of three textual forms
// that matches, in priority order:
//
//	serde = "1.0"
//	serde = { version = "1.0", features = ["derive"] }
//	[dependencies.serde]
//	version = "1.0"
//
// Only the first occurrence is edited, so the same crate declared again in
// another table (often pinned) keeps its version.
func (c *CargoToml) Update(path, content, pkg, newVersion string) (string, error) {
	name := regexp.QuoteMeta(pkg)
	rewrite := deps.SpecRewriter(version.ParseRust, newVersion)

	for _, re := range []*regexp.Regexp{
		regexp.MustCompile(`(?m)^[ \t]*` + name + `[ \t]*=[ \t]*"([^"]+)"`),
		regexp.MustCompile(`(?m)^[ \t]*` + name + `[ \t]*=[ \t]*\{[^}\n]*?\bversion[ \t]*=[ \t]*"([^"]+)"`),
		regexp.MustCompile(`(?m)^[ \t]*\[(?:workspace\.|target\.[^\]\n]+\.)?(?:dependencies|dev-dependencies|build-dependencies)\.` +
			name + `\][^\n]*\n(?:[ \t]*(?:[^\[ \t\n][^\n]*)?\n)*?[ \t]*version[ \t]*=[ \t]*"([^"]+)"`),
	} {
		if out, ok := deps.EditFirst(content, re, 1, rewrite); ok {
			return out, nil
		}
	}
	return "", deps.ErrNotUpdated(path, pkg)
}
