package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/depup/pkg/errors"
)

const day = 24 * time.Hour

// ParseAge parses a minimum release age: a whole number followed by d
// (days), w (weeks) or m (months of 30 days).
//
//	ParseAge("2w") // 336h0m0s
func ParseAge(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	invalid := errors.New(errors.ErrCodeInvalidDuration,
		"invalid duration format '%s': expected format like '2w', '10d', '1m'", s)
	if len(s) < 2 {
		return 0, invalid
	}

	var unit time.Duration
	switch s[len(s)-1] {
	case 'd':
		unit = day
	case 'w':
		unit = 7 * day
	case 'm':
		unit = 30 * day
	default:
		return 0, invalid
	}

	n, err := strconv.ParseUint(s[:len(s)-1], 10, 32)
	if err != nil {
		return 0, invalid
	}
	return time.Duration(n) * unit, nil
}

// FormatAge renders d in the largest whole unit ParseAge accepts.
func FormatAge(d time.Duration) string {
	switch {
	case d <= 0:
		return "0d"
	case d%(30*day) == 0:
		return strconv.FormatInt(int64(d/(30*day)), 10) + "m"
	case d%(7*day) == 0:
		return strconv.FormatInt(int64(d/(7*day)), 10) + "w"
	case d%day == 0:
		return strconv.FormatInt(int64(d/day), 10) + "d"
	}
	return d.String()
}
