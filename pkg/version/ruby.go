package version

import (
	"regexp"
	"strings"
)

const rubyVer = `(\d+(?:\.\d+)*(?:[.-][0-9A-Za-z]+)*)`

var rubyOperators = []operator{
	op(`^(~>\s*)`+rubyVer+`$`, Tilde, ""),
	op(`^(>=\s*)`+rubyVer+`$`, GreaterOrEqual, ""),
	op(`^(>\s*)`+rubyVer+`$`, Greater, ""),
	op(`^(<=\s*)`+rubyVer+`$`, LessOrEqual, ""),
	op(`^(<\s*)`+rubyVer+`$`, Less, ""),
	op(`^(=\s*)`+rubyVer+`$`, Exact, ""),
	op(`^()`+rubyVer+`$`, Exact, ""),
}

var rubyRange = regexp.MustCompile(`^[<>=~!]+\s*\d+(?:\.\d+)*\S*\s*,\s*[<>=~!]+\s*\d+(?:\.\d+)*\S*$`)

// ParseRuby classifies a Gemfile requirement. The operator and any spaces
// after it are kept as the prefix, so "~> 7.1" round-trips exactly.
// Multiple requirements joined with ", " form a Range.
func ParseRuby(raw string) (Spec, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Spec{}, false
	}
	if s, ok := matchOperators(raw, rubyOperators); ok {
		return s, true
	}
	if rubyRange.MatchString(raw) {
		return New(Range, raw, firstVersion(raw)), true
	}
	return Spec{}, false
}
