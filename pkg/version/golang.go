package version

import (
	"regexp"
	"strings"
)

var (
	goPseudo       = regexp.MustCompile(`^v(\d+\.\d+\.\d+-\d{14}-[a-f0-9]{12})$`)
	goIncompatible = regexp.MustCompile(`^v(\d+\.\d+\.\d+(?:-[\w.]+)?)\+incompatible$`)
	goSemver       = regexp.MustCompile(`^v(\d+\.\d+\.\d+(?:-[\w.]+)?)$`)
)

// ParseGo classifies a go.mod requirement version. Every recognised form is
// Exact with a "v" prefix; "+incompatible" is kept as the suffix.
func ParseGo(raw string) (Spec, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Spec{}, false
	}
	if m := goPseudo.FindStringSubmatch(raw); m != nil {
		return New(Exact, raw, m[1]).WithPrefix("v"), true
	}
	if m := goIncompatible.FindStringSubmatch(raw); m != nil {
		return New(Exact, raw, m[1]).WithPrefix("v").WithSuffix("+incompatible"), true
	}
	if m := goSemver.FindStringSubmatch(raw); m != nil {
		return New(Exact, raw, m[1]).WithPrefix("v"), true
	}
	return Spec{}, false
}
