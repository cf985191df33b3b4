package ruby

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/version"
)

// Gemfile reads and rewrites Bundler Gemfiles. The file is Ruby, so only
// the common declarative forms are understood.
type Gemfile struct{}

func (g *Gemfile) Type() string              { return "Gemfile" }
func (g *Gemfile) Supports(name string) bool { return name == "Gemfile" }

var (
	gemPattern     = regexp.MustCompile(`^\s*gem[\s(]+['"]([^'"]+)['"](.*)$`)
	gemVersion     = regexp.MustCompile(`^\s*,\s*['"]([^'"]*)['"]`)
	groupPattern   = regexp.MustCompile(`^\s*group\s*\(?([^)]*?)\)?\s+do\b`)
	blockOpen      = regexp.MustCompile(`\bdo\s*(\|[^|]*\|)?\s*$`)
	controlOpen    = regexp.MustCompile(`^\s*(?:if|unless|case|while|until|begin)\b`)
	blockEnd       = regexp.MustCompile(`^\s*end\b`)
	inlineDevGroup = regexp.MustCompile(`\bgroups?\s*(?::|=>)\s*\[?[^\]]*:(?:development|test)\b`)
	devGroup       = regexp.MustCompile(`:(?:development|test)\b`)
)

// maxConstraints is how many version arguments a gem line may carry.
const maxConstraints = 3

// Parse returns every gem declared with at least one version constraint.
// Gems inside a development or test group block, or declared with such a
// group: option, are dev dependencies.
func (g *Gemfile) Parse(path, content string) ([]deps.Dependency, error) {
	var (
		out    []deps.Dependency
		blocks []bool
	)
	inDev := func() bool {
		for _, dev := range blocks {
			if dev {
				return true
			}
		}
		return false
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := stripComment(scanner.Text())
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := groupPattern.FindStringSubmatch(line); m != nil {
			blocks = append(blocks, devGroup.MatchString(m[1]))
			continue
		}
		if blockEnd.MatchString(line) {
			if len(blocks) > 0 {
				blocks = blocks[:len(blocks)-1]
			}
			continue
		}

		if m := gemPattern.FindStringSubmatch(line); m != nil {
			if d, ok := parseGem(m[1], m[2]); ok {
				d.Dev = inDev() || inlineDevGroup.MatchString(m[2])
				out = append(out, d)
			}
		}
		if blockOpen.MatchString(line) || controlOpen.MatchString(line) {
			blocks = append(blocks, false)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, deps.ParseError("Gemfile", path, err)
	}
	return out, nil
}

func parseGem(name, rest string) (deps.Dependency, bool) {
	var constraints []string
	for len(constraints) < maxConstraints {
		m := gemVersion.FindStringSubmatchIndex(rest)
		if m == nil {
			break
		}
		constraints = append(constraints, rest[m[2]:m[3]])
		rest = rest[m[1]:]
	}
	if len(constraints) == 0 {
		return deps.Dependency{}, false
	}

	spec, ok := version.ParseRuby(strings.Join(constraints, ", "))
	if !ok {
		first, ok := version.ParseRuby(constraints[0])
		if !ok {
			return deps.Dependency{}, false
		}
		spec = version.New(version.Range, strings.Join(constraints, ", "), first.Version)
	}
	return deps.Dependency{Name: name, Spec: spec, Language: languageName}, true
}

// stripComment drops a trailing "#" comment that is not inside a string.
func stripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '#':
			return line[:i]
		}
	}
	return line
}

// Update rewrites the first version literal after the gem name on its first
// declaration. Later requirements on the line are kept, so the update is
// refused when one of them would exclude newVersion ("< 2.0", "!= 2.1.0").
func (g *Gemfile) Update(path, content, pkg, newVersion string) (string, error) {
	re := regexp.MustCompile(`(?m)^[ \t]*gem[ \t(]+['"]` + regexp.QuoteMeta(pkg) + `['"][ \t]*,[ \t]*['"]([^'"\n]+)['"]([^\n]*)`)
	rewrite := deps.SpecRewriter(version.ParseRuby, newVersion)
	for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
		repl, ok := rewrite(content[m[2]:m[3]])
		if !ok {
			continue
		}
		if !admits(content[m[4]:m[5]], newVersion) {
			break
		}
		return content[:m[2]] + repl + content[m[3]:], nil
	}
	return "", deps.ErrNotUpdated(path, pkg)
}

// admits reports whether the requirements trailing the first one on a gem
// line allow v.
func admits(rest, v string) bool {
	for i := 1; i < maxConstraints; i++ {
		m := gemVersion.FindStringSubmatchIndex(rest)
		if m == nil {
			break
		}
		req := strings.TrimSpace(rest[m[2]:m[3]])
		rest = rest[m[1]:]

		var op string
		for _, prefix := range []string{"<=", "<", "!="} {
			if strings.HasPrefix(req, prefix) {
				op = prefix
				break
			}
		}
		if op == "" {
			continue
		}
		c := version.Compare(trimZeros(v), trimZeros(strings.TrimSpace(req[len(op):])))
		if op == "<=" && c > 0 || op == "<" && c >= 0 || op == "!=" && c == 0 {
			return false
		}
	}
	return true
}

// trimZeros drops trailing ".0" segments; RubyGems treats 2.0 and 2.0.0 as
// equal.
func trimZeros(v string) string {
	for strings.HasSuffix(v, ".0") {
		v = strings.TrimSuffix(v, ".0")
	}
	return v
}
