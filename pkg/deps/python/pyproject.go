package python

import (
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/version"
)

// pep508Name splits a PEP 508 requirement into its name and the rest.
var pep508Name = regexp.MustCompile(`^([a-zA-Z0-9][-a-zA-Z0-9._]*)\s*(.*)$`)

// Pyproject reads and rewrites pyproject.toml files. It understands PEP 621
// (project.dependencies, project.optional-dependencies) and Poetry
// (tool.poetry.dependencies, dev-dependencies, group.*.dependencies).
type Pyproject struct{}

func (p *Pyproject) Type() string              { return "pyproject.toml" }
func (p *Pyproject) Supports(name string) bool { return name == "pyproject.toml" }

type pyprojectFile struct {
	Project struct {
		Dependencies         []any            `toml:"dependencies"`
		OptionalDependencies map[string][]any `toml:"optional-dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies    map[string]any `toml:"dependencies"`
			DevDependencies map[string]any `toml:"dev-dependencies"`
			Group           map[string]struct {
				Dependencies map[string]any `toml:"dependencies"`
			} `toml:"group"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// Parse returns PEP 621 requirements first, then Poetry tables, each in
// declaration order. Optional dependency groups count as production; Poetry
// groups named "dev" or "test" count as dev.
func (p *Pyproject) Parse(path, content string) ([]deps.Dependency, error) {
	var f pyprojectFile
	md, err := toml.Decode(content, &f)
	if err != nil {
		return nil, deps.ParseError("TOML", path, err)
	}

	var out []deps.Dependency
	addRequirement := func(v any) {
		if s, ok := v.(string); ok {
			if d, ok := parseRequirement(s); ok {
				out = append(out, d)
			}
		}
	}
	addPoetry := func(table map[string]any, dev bool, path ...string) {
		for _, name := range deps.TOMLKeys(md, path...) {
			if name == "python" {
				continue
			}
			if d, ok := parsePoetry(name, table[name], dev); ok {
				out = append(out, d)
			}
		}
	}

	for _, v := range f.Project.Dependencies {
		addRequirement(v)
	}
	for _, group := range deps.TOMLKeys(md, "project", "optional-dependencies") {
		for _, v := range f.Project.OptionalDependencies[group] {
			addRequirement(v)
		}
	}

	poetry := f.Tool.Poetry
	addPoetry(poetry.Dependencies, false, "tool", "poetry", "dependencies")
	addPoetry(poetry.DevDependencies, true, "tool", "poetry", "dev-dependencies")
	for _, group := range deps.TOMLKeys(md, "tool", "poetry", "group") {
		dev := group == "dev" || group == "test"
		addPoetry(poetry.Group[group].Dependencies, dev, "tool", "poetry", "group", group, "dependencies")
	}
	return out, nil
}

// parseRequirement reads a PEP 508 string such as
// "uvicorn[standard]>=0.30; python_version >= '3.9'". Extras and markers are
// dropped; requirements without a version are skipped.
func parseRequirement(s string) (deps.Dependency, bool) {
	m := pep508Name.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return deps.Dependency{}, false
	}
	rest := strings.TrimSpace(m[2])
	if strings.HasPrefix(rest, "[") {
		if i := strings.Index(rest, "]"); i >= 0 {
			rest = strings.TrimSpace(rest[i+1:])
		}
	}
	rest, _, _ = strings.Cut(rest, ";")
	spec, ok := version.ParsePython(strings.TrimSpace(rest))
	if !ok {
		return deps.Dependency{}, false
	}
	return deps.Dependency{Name: m[1], Spec: spec, Language: languageName}, true
}

func parsePoetry(name string, v any, dev bool) (deps.Dependency, bool) {
	var raw string
	switch v := v.(type) {
	case string:
		raw = v
	case map[string]any:
		raw, _ = v["version"].(string)
	}
	spec, ok := version.ParsePython(raw)
	if !ok {
		return deps.Dependency{}, false
	}
	return deps.Dependency{Name: name, Spec: spec, Dev: dev, Language: languageName}, true
}

type edit struct {
	re      *regexp.Regexp
	rewrite deps.Rewriter
}

// Update rewrites the first declaration of pkg with a recognised
// constraint. Forms are tried in order: the Poetry string, the Poetry inline
// table, then PEP 508 requirement strings in double and single quotes. Later
// declarations of the same package, such as a pinned copy in another group,
// are left alone.
func (p *Pyproject) Update(path, content, pkg, newVersion string) (string, error) {
	name := regexp.QuoteMeta(pkg)
	poetry := deps.SpecRewriter(version.ParsePython, newVersion)
	requirement := requirementRewriter(newVersion)

	edits := []edit{
		{regexp.MustCompile(`(?m)^[ \t]*` + name + `[ \t]*=[ \t]*"([^"]+)"`), poetry},
		{regexp.MustCompile(`(?m)^[ \t]*` + name + `[ \t]*=[ \t]*\{[^}\n]*?\bversion[ \t]*=[ \t]*"([^"]+)"`), poetry},
	}
	for _, q := range []string{`"`, `'`} {
		re := regexp.MustCompile(q + name + `(?:[ \t]*\[[^\]` + q + `]*\])?[ \t]*([<>=!~^][^;` + q + `]*?)[ \t]*(?:;[^` + q + `]*)?` + q)
		edits = append(edits, edit{re, requirement})
	}

	for _, e := range edits {
		if out, ok := deps.EditFirst(content, e.re, 1, e.rewrite); ok {
			return out, nil
		}
	}
	return "", deps.ErrNotUpdated(path, pkg)
}

// requirementRewriter keeps the operator of a PEP 508 constraint. Compound
// constraints collapse to a lower bound on the new version.
func requirementRewriter(newVersion string) deps.Rewriter {
	return func(old string) (string, bool) {
		spec, ok := version.ParsePython(old)
		if !ok {
			return "", false
		}
		if spec.Kind == version.Range {
			return ">=" + newVersion, true
		}
		return deps.FormatVersion(spec, newVersion), true
	}
}
