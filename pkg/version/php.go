package version

import (
	"regexp"
	"strings"
)

const phpVer = `(\d+(?:\.\d+)*(?:-[\w.]+)?)`

var phpOperators = []operator{
	op(`^\^`+phpVer+`$`, Caret, "^"),
	op(`^~`+phpVer+`$`, Tilde, "~"),
	op(`^>=`+phpVer+`$`, GreaterOrEqual, ">="),
	op(`^>`+phpVer+`$`, Greater, ">"),
	op(`^<=`+phpVer+`$`, LessOrEqual, "<="),
	op(`^<`+phpVer+`$`, Less, "<"),
	op(`^v?`+phpVer+`$`, Exact, ""),
}

var (
	phpWildcard = regexp.MustCompile(`^\*$|^\d+(?:\.\d+)*\.\*$`)
	phpRange    = regexp.MustCompile(`^\S+(?:\s*\|\|?\s*|\s+)\S.*$`)
)

// ParsePHP classifies a Composer constraint. Compound constraints
// ("^1.0 || ^2.0", ">=1.0 <2.0") are Ranges represented by their first
// version.
func ParsePHP(raw string) (Spec, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Spec{}, false
	}
	if s, ok := matchOperators(raw, phpOperators); ok {
		if strings.HasPrefix(raw, "v") {
			s.Prefix = "v"
		}
		return s, true
	}
	if phpWildcard.MatchString(raw) {
		return New(Wildcard, raw, raw), true
	}
	if phpRange.MatchString(raw) {
		if v := firstVersion(raw); v != "" {
			return New(Range, raw, v), true
		}
	}
	return Spec{}, false
}
