package version

import (
	"regexp"
	"strings"
)

var prereleaseTags = []string{"alpha", "beta", "rc", "dev", "canary", "pre", "nightly", "snapshot"}

// pep440Pre matches PEP 440 style markers glued to a number: 5.0a1, 2.1rc2, 1.0b3.
var pep440Pre = regexp.MustCompile(`^v?\d+(?:\.\d+)*(?:a|b|c|rc|alpha|beta|pre|dev)\d*$`)

// IsPrerelease reports whether v is a prerelease.
//
// A version is a prerelease when a segment following "-" starts with one of
// alpha, beta, rc, dev, canary, pre, nightly or snapshot (case-insensitive).
// The same identifiers introduced by "." (1.0.0.RC1, 7.0.0.beta2) and PEP 440
// suffixes (5.0a1, 2.1rc2) are recognised too.
func IsPrerelease(v string) bool {
	lower := strings.ToLower(v)
	for _, sep := range []string{"-", "."} {
		segs := strings.Split(lower, sep)
		for _, seg := range segs[1:] {
			if hasPrereleaseTag(seg) {
				return true
			}
		}
	}
	return pep440Pre.MatchString(lower)
}

func hasPrereleaseTag(seg string) bool {
	for _, tag := range prereleaseTags {
		if strings.HasPrefix(seg, tag) {
			return true
		}
	}
	return false
}
