// Package errors provides structured error types for depup.
//
// Every failure that reaches the user carries a machine-readable [Code]. Codes
// are grouped into four categories that mirror where a run can go wrong:
//
//   - manifest: reading, parsing or rewriting a manifest file
//   - registry: talking to a package registry
//   - config: invalid flags, durations or config files
//   - io: the target directory itself
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDuration, "invalid duration %q", s)
//	if errors.Is(err, errors.ErrCodeInvalidDuration) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeManifestRead, origErr, "failed to read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Manifest errors.
const (
	ErrCodeManifestNotFound   Code = "MANIFEST_NOT_FOUND"
	ErrCodeManifestRead       Code = "MANIFEST_READ"
	ErrCodeManifestWrite      Code = "MANIFEST_WRITE"
	ErrCodeManifestParse      Code = "MANIFEST_PARSE"
	ErrCodeInvalidVersionSpec Code = "INVALID_VERSION_SPEC"
	ErrCodeUnsupportedFormat  Code = "UNSUPPORTED_FORMAT"
)

// Registry errors.
const (
	ErrCodePackageNotFound    Code = "PACKAGE_NOT_FOUND"
	ErrCodeNetwork            Code = "NETWORK_ERROR"
	ErrCodeRateLimited        Code = "RATE_LIMITED"
	ErrCodeInvalidResponse    Code = "INVALID_RESPONSE"
	ErrCodeTimeout            Code = "TIMEOUT"
	ErrCodeInvalidPackageName Code = "INVALID_PACKAGE_NAME"
)

// Configuration errors.
const (
	ErrCodeInvalidDuration    Code = "INVALID_DURATION"
	ErrCodeConflictingOptions Code = "CONFLICTING_OPTIONS"
	ErrCodeInvalidConfig      Code = "INVALID_CONFIG"
)

// Filesystem errors.
const (
	ErrCodeDirectoryNotFound Code = "DIRECTORY_NOT_FOUND"
	ErrCodePermissionDenied  Code = "PERMISSION_DENIED"
	ErrCodeIO                Code = "IO_ERROR"
)

// ErrCodeInternal marks unexpected failures.
const ErrCodeInternal Code = "INTERNAL_ERROR"

// Category groups codes for reporting.
type Category string

const (
	CategoryManifest Category = "manifest"
	CategoryRegistry Category = "registry"
	CategoryConfig   Category = "config"
	CategoryIO       Category = "io"
	CategoryInternal Category = "internal"
)

var categories = map[Code]Category{
	ErrCodeManifestNotFound:   CategoryManifest,
	ErrCodeManifestRead:       CategoryManifest,
	ErrCodeManifestWrite:      CategoryManifest,
	ErrCodeManifestParse:      CategoryManifest,
	ErrCodeInvalidVersionSpec: CategoryManifest,
	ErrCodeUnsupportedFormat:  CategoryManifest,

	ErrCodePackageNotFound:    CategoryRegistry,
	ErrCodeNetwork:            CategoryRegistry,
	ErrCodeRateLimited:        CategoryRegistry,
	ErrCodeInvalidResponse:    CategoryRegistry,
	ErrCodeTimeout:            CategoryRegistry,
	ErrCodeInvalidPackageName: CategoryRegistry,

	ErrCodeInvalidDuration:    CategoryConfig,
	ErrCodeConflictingOptions: CategoryConfig,
	ErrCodeInvalidConfig:      CategoryConfig,

	ErrCodeDirectoryNotFound: CategoryIO,
	ErrCodePermissionDenied:  CategoryIO,
	ErrCodeIO:                CategoryIO,
}

// CategoryOf returns the category of code, or CategoryInternal for unknown codes.
func CategoryOf(code Code) Category {
	if c, ok := categories[code]; ok {
		return c
	}
	return CategoryInternal
}

// Error is a failure tagged with a [Code]. Message is what the user sees;
// Cause, when present, is kept for errors.Is and errors.As.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error renders "CODE: message" followed by the cause, if any.
func (e *Error) Error() string {
	s := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// Category is shorthand for CategoryOf(e.Code).
func (e *Error) Category() Category { return CategoryOf(e.Code) }

// New returns an *Error without a cause.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns an *Error whose Cause is cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// as finds the outermost *Error in err's chain.
func as(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	e, ok := as(err)
	return ok && e.Code == code
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := as(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix, or err.Error()
// for errors that carry no code.
func UserMessage(err error) string {
	if e, ok := as(err); ok {
		return e.Message
	}
	return err.Error()
}
