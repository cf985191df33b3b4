package version

import (
	"regexp"
	"strings"
)

const pyVer = `(\d+(?:\.\d+)*(?:[a-zA-Z]\d+)?)`

var pythonOperators = []operator{
	op(`^==`+pyVer+`$`, Exact, "=="),
	op(`^\^`+pyVer+`$`, Caret, "^"),
	op(`^~`+pyVer+`$`, Tilde, "~"),
	op(`^~=`+pyVer+`$`, Tilde, "~="),
	op(`^>=`+pyVer+`$`, GreaterOrEqual, ">="),
	op(`^>`+pyVer+`$`, Greater, ">"),
	op(`^<=`+pyVer+`$`, LessOrEqual, "<="),
	op(`^<`+pyVer+`$`, Less, "<"),
}

var (
	pythonRange    = regexp.MustCompile(`^[<>=!]+\d+(?:\.\d+)*,\s*[<>=!]+\d+(?:\.\d+)*$`)
	pythonWildcard = regexp.MustCompile(`^\*$|^\d+(?:\.\d+)*\.\*$`)
	pythonBare     = regexp.MustCompile(`^` + pyVer + `$`)
)

// ParsePython classifies a PEP 440 or Poetry constraint.
//
// A bare version ("2.31.0") is how Poetry spells an exact requirement and is
// classified as Exact without a prefix.
func ParsePython(raw string) (Spec, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Spec{}, false
	}
	if s, ok := matchOperators(raw, pythonOperators); ok {
		return s, true
	}
	if pythonRange.MatchString(raw) {
		first, _, _ := strings.Cut(raw, ",")
		return New(Range, raw, firstVersion(first)), true
	}
	if pythonWildcard.MatchString(raw) {
		return New(Wildcard, raw, raw), true
	}
	if m := pythonBare.FindStringSubmatch(raw); m != nil {
		return New(Exact, raw, m[1]), true
	}
	return Spec{}, false
}
