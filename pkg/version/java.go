package version

import (
	"regexp"
	"strings"
)

var (
	javaVersion  = regexp.MustCompile(`^(\d+(?:\.\d+)*(?:[.-][A-Za-z0-9]+)*)$`)
	javaDynamic  = regexp.MustCompile(`^(?:\d+(?:\.\d+)*\.)?\+$|^latest\.(?:release|integration)$`)
	javaInterval = regexp.MustCompile(`^[\[(]\s*[^,\[\]()]*\s*,\s*[^,\[\]()]*\s*[\])]$`)
)

// ParseJava classifies a Gradle/Maven version. Plain versions, including
// qualifiers such as 1.2.3.RELEASE or 31.1-jre, are Exact. Dynamic versions
// (1.2.+, latest.release) are Wildcards and Maven intervals are Ranges.
func ParseJava(raw string) (Spec, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Spec{}, false
	}
	if m := javaVersion.FindStringSubmatch(raw); m != nil {
		return New(Exact, raw, m[1]), true
	}
	if javaDynamic.MatchString(raw) {
		return New(Wildcard, raw, raw), true
	}
	if javaInterval.MatchString(raw) {
		return New(Range, raw, firstVersion(raw)), true
	}
	return Spec{}, false
}
