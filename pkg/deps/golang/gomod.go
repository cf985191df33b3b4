package golang

import (
	"regexp"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/version"
)

var pinnedComment = regexp.MustCompile(`^//\s*pinned\b`)

// GoModParser reads and rewrites go.mod files. Only require directives are
// considered; replace and exclude directives are left alone.
type GoModParser struct{}

func (p *GoModParser) Type() string              { return "go.mod" }
func (p *GoModParser) Supports(name string) bool { return name == "go.mod" }

// Parse returns one dependency per require line. "// indirect" marks a dev
// dependency and "// pinned" a pinned one.
func (p *GoModParser) Parse(path, content string) ([]deps.Dependency, error) {
	f, err := modfile.Parse(path, []byte(content), nil)
	if err != nil {
		return nil, deps.ParseError("go.mod", path, err)
	}

	out := make([]deps.Dependency, 0, len(f.Require))
	for _, r := range f.Require {
		spec, ok := version.ParseGo(r.Mod.Version)
		if !ok {
			continue
		}
		d := deps.Dependency{
			Name:     r.Mod.Path,
			Spec:     spec,
			Dev:      r.Indirect,
			Language: languageName,
			Pinned:   isPinned(r.Syntax),
		}
		if d.Pinned {
			d.Spec.Kind = version.GoPinned
		}
		out = append(out, d)
	}
	return out, nil
}

func isPinned(line *modfile.Line) bool {
	if line == nil {
		return false
	}
	for _, c := range line.Suffix {
		if pinnedComment.MatchString(strings.TrimSpace(c.Token)) {
			return true
		}
	}
	return false
}

// Update rewrites the version on the require line of pkg. newVersion may be
// given with or without its "v"; the result always has one. Indentation and
// trailing comments are kept.
func (p *GoModParser) Update(path, content, pkg, newVersion string) (string, error) {
	f, err := modfile.Parse(path, []byte(content), nil)
	if err != nil {
		return "", deps.ParseError("go.mod", path, err)
	}

	newVersion = "v" + strings.TrimPrefix(newVersion, "v")
	re := regexp.MustCompile(`^([ \t]*(?:require[ \t]+)?` + regexp.QuoteMeta(pkg) + `[ \t]+)(v[^\s/]+)`)

	for _, r := range f.Require {
		if r.Mod.Path != pkg || r.Syntax == nil {
			continue
		}
		start, end := lineBounds(content, r.Syntax.Start.Line)
		m := re.FindStringSubmatchIndex(content[start:end])
		if m == nil {
			continue
		}
		if _, ok := version.ParseGo(content[start+m[4] : start+m[5]]); !ok {
			continue
		}
		return content[:start+m[4]] + newVersion + content[start+m[5]:], nil
	}
	return "", deps.ErrNotUpdated(path, pkg)
}

// lineBounds returns the byte range of the 1-based line n, without its
// newline.
func lineBounds(content string, n int) (int, int) {
	start := 0
	for i := 1; i < n; i++ {
		j := strings.IndexByte(content[start:], '\n')
		if j < 0 {
			return len(content), len(content)
		}
		start += j + 1
	}
	end := strings.IndexByte(content[start:], '\n')
	if end < 0 {
		return start, len(content)
	}
	return start, start + end
}
