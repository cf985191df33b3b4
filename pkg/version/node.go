package version

import (
	"regexp"
	"strings"
)

const nodeVer = `(\d+\.\d+\.\d+(?:-[\w.]+)?)`

var nodeOperators = []operator{
	op(`^\^`+nodeVer+`$`, Caret, "^"),
	op(`^~`+nodeVer+`$`, Tilde, "~"),
	op(`^>=`+nodeVer+`$`, GreaterOrEqual, ">="),
	op(`^>`+nodeVer+`$`, Greater, ">"),
	op(`^<=`+nodeVer+`$`, LessOrEqual, "<="),
	op(`^<`+nodeVer+`$`, Less, "<"),
}

var (
	nodeRange    = regexp.MustCompile(`^[<>=]+\d+\.\d+\.\d+\s+[<>=]+\d+\.\d+\.\d+$|^\d+\.\d+\.\d+\s*-\s*\d+\.\d+\.\d+$`)
	nodeWildcard = regexp.MustCompile(`^(\d+(?:\.\d+)?\.)?[x*]$|^\*$`)
	nodeExact    = regexp.MustCompile(`^` + nodeVer + `$`)
)

// ParseNode classifies an npm semver constraint.
func ParseNode(raw string) (Spec, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Spec{}, false
	}
	if s, ok := matchOperators(raw, nodeOperators); ok {
		return s, true
	}
	if nodeRange.MatchString(raw) {
		first := strings.Fields(raw)[0]
		first = strings.TrimLeftFunc(first, func(r rune) bool { return r < '0' || r > '9' })
		return New(Range, raw, first), true
	}
	if nodeWildcard.MatchString(raw) {
		return New(Wildcard, raw, raw), true
	}
	if m := nodeExact.FindStringSubmatch(raw); m != nil {
		return New(Exact, raw, m[1]), true
	}
	return Spec{}, false
}
