package version

import (
	"regexp"
	"strings"
)

// operator binds a constraint pattern to the kind and prefix it produces.
// The pattern's last capture group is the version body. When the pattern has
// two groups the first one is used as the prefix verbatim (Ruby keeps the
// space after "~>").
type operator struct {
	re     *regexp.Regexp
	kind   Kind
	prefix string
}

func op(pattern string, kind Kind, prefix string) operator {
	return operator{re: regexp.MustCompile(pattern), kind: kind, prefix: prefix}
}

func matchOperators(raw string, ops []operator) (Spec, bool) {
	for _, o := range ops {
		m := o.re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		prefix := o.prefix
		if len(m) == 3 {
			prefix = m[1]
		}
		return New(o.kind, raw, m[len(m)-1]).WithPrefix(prefix), true
	}
	return Spec{}, false
}

var leadingVersion = regexp.MustCompile(`\d+(?:\.\d+)*`)

// firstVersion returns the first dotted number in s. Range specs use it as
// their representative version.
func firstVersion(s string) string {
	return leadingVersion.FindString(s)
}

// ParserFor returns the constraint parser for a language identifier
// ("node", "python", "rust", "go", "ruby", "php", "java").
func ParserFor(lang string) (Parser, bool) {
	p, ok := parsers[strings.ToLower(lang)]
	return p, ok
}

var parsers = map[string]Parser{
	"node":   ParseNode,
	"python": ParsePython,
	"rust":   ParseRust,
	"go":     ParseGo,
	"ruby":   ParseRuby,
	"php":    ParsePHP,
	"java":   ParseJava,
}
