package deps

import (
	"regexp"

	"github.com/matzehuels/depup/pkg/version"
)

// Rewriter maps the old version literal to its replacement. It returns false
// when the literal is not a constraint it understands.
type Rewriter func(old string) (string, bool)

// SpecRewriter returns a Rewriter that classifies the old literal with parse
// and renders newVersion in the same shape.
func SpecRewriter(parse version.Parser, newVersion string) Rewriter {
	return func(old string) (string, bool) {
		spec, ok := parse(old)
		if !ok {
			return "", false
		}
		return FormatVersion(spec, newVersion), true
	}
}

// EditFirst replaces capture group of the first match of re whose text
// rewrite accepts. Nothing outside that group changes.
func EditFirst(content string, re *regexp.Regexp, group int, rewrite Rewriter) (string, bool) {
	for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
		start, end := m[2*group], m[2*group+1]
		if start < 0 {
			continue
		}
		if repl, ok := rewrite(content[start:end]); ok {
			return content[:start] + repl + content[end:], true
		}
	}
	return content, false
}
