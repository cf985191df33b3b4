package integrations

import (
	"strings"
	"unicode"

	"github.com/matzehuels/depup/pkg/errors"
)

const maxNameLength = 256

// forbidden sequences would change the meaning of the request path once
// the name is interpolated into a registry URL.
var forbidden = []string{"..", "//", "\\"}

// ValidateName checks that name is safe to put in a registry URL. It does
// not check registry-specific shape (Maven's group:artifact, Go module
// paths); clients do that themselves. The returned error wraps
// [ErrInvalidPackageName].
func ValidateName(name string) error {
	switch {
	case name == "":
		return invalidName("package name cannot be empty")
	case len(name) > maxNameLength:
		return invalidName("package name too long (max %d characters)", maxNameLength)
	}
	if i := strings.IndexFunc(name, func(r rune) bool { return unicode.IsControl(r) || unicode.IsSpace(r) }); i >= 0 {
		return invalidName("package name %q contains whitespace or control characters", name)
	}
	for _, seq := range forbidden {
		if strings.Contains(name, seq) {
			return invalidName("package name %q contains invalid sequence %q", name, seq)
		}
	}
	return nil
}

func invalidName(format string, args ...any) error {
	return errors.Wrap(errors.ErrCodeInvalidPackageName, ErrInvalidPackageName, format, args...)
}
