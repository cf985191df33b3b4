package version

import (
	"regexp"
	"strings"
)

const rustVer = `(\d+(?:\.\d+)*(?:-[\w.]+)?)`

var rustOperators = []operator{
	op(`^=`+rustVer+`$`, Exact, "="),
	op(`^\^`+rustVer+`$`, Caret, "^"),
	op(`^~`+rustVer+`$`, Tilde, "~"),
	op(`^>=`+rustVer+`$`, GreaterOrEqual, ">="),
	op(`^>`+rustVer+`$`, Greater, ">"),
	op(`^<=`+rustVer+`$`, LessOrEqual, "<="),
	op(`^<`+rustVer+`$`, Less, "<"),
}

var (
	rustRange    = regexp.MustCompile(`^[<>=]+\d+(?:\.\d+)*,\s*[<>=]+\d+(?:\.\d+)*$`)
	rustWildcard = regexp.MustCompile(`^\*$|^\d+(?:\.\d+)*\.\*$`)
	rustBare     = regexp.MustCompile(`^` + rustVer + `$`)
)

// ParseRust classifies a Cargo constraint. A bare version is Cargo's default
// caret requirement and keeps an empty prefix.
func ParseRust(raw string) (Spec, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Spec{}, false
	}
	if s, ok := matchOperators(raw, rustOperators); ok {
		return s, true
	}
	if rustRange.MatchString(raw) {
		first, _, _ := strings.Cut(raw, ",")
		return New(Range, raw, firstVersion(first)), true
	}
	if rustWildcard.MatchString(raw) {
		return New(Wildcard, raw, raw), true
	}
	if m := rustBare.FindStringSubmatch(raw); m != nil {
		return New(Caret, raw, m[1]), true
	}
	return Spec{}, false
}
