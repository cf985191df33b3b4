package version

import (
	"strconv"
	"strings"
)

// Compare orders two version strings by their numeric segments.
//
// A leading "v" and any "+build" metadata are ignored, the rest is split on
// "." and "-", and only segments that parse as non-negative integers are kept.
// The integer vectors are compared lexicographically; when one is a prefix of
// the other the longer one is greater. Non-numeric identifiers never affect
// the order, so "1.0.0-alpha" and "1.0.0-beta" compare equal.
//
// Returns -1, 0 or +1.
func Compare(a, b string) int {
	pa, pb := numericParts(a), numericParts(b)
	for i := 0; i < min(len(pa), len(pb)); i++ {
		switch {
		case pa[i] < pb[i]:
			return -1
		case pa[i] > pb[i]:
			return 1
		}
	}
	switch {
	case len(pa) < len(pb):
		return -1
	case len(pa) > len(pb):
		return 1
	}
	return 0
}

func numericParts(v string) []uint64 {
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexByte(v, '+'); i >= 0 {
		v = v[:i]
	}
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == '.' || r == '-' })
	parts := make([]uint64, 0, len(fields))
	for _, f := range fields {
		if n, err := strconv.ParseUint(f, 10, 64); err == nil {
			parts = append(parts, n)
		}
	}
	return parts
}
