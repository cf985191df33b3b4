package pipeline

import (
	"fmt"

	"github.com/matzehuels/depup/pkg/errors"
)

// ErrorKind is the stage a RunError comes from.
type ErrorKind string

const (
	KindDetect   ErrorKind = "detect"
	KindParse    ErrorKind = "parse"
	KindRegistry ErrorKind = "registry"
	KindWrite    ErrorKind = "write"
)

// RunError is a failure that affected part of a run. Subject is the manifest
// path, or the package name for registry errors.
type RunError struct {
	Kind    ErrorKind
	Subject string
	Err     error
}

func (e RunError) Error() string {
	msg := errors.UserMessage(e.Err)
	switch e.Kind {
	case KindDetect:
		return fmt.Sprintf("Failed to detect manifests in %s: %s", e.Subject, msg)
	case KindParse:
		return fmt.Sprintf("Failed to parse %s: %s", e.Subject, msg)
	case KindRegistry:
		return fmt.Sprintf("Failed to fetch %s: %s", e.Subject, msg)
	default:
		return fmt.Sprintf("Failed to write %s: %s", e.Subject, msg)
	}
}

func (e RunError) Unwrap() error { return e.Err }

// Strings renders errs one per element.
func Strings(errs []RunError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}
