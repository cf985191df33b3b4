// Package version classifies dependency constraints and orders version
// strings.
//
// A [Spec] records how a constraint was written so that an updated version can
// be emitted in exactly the same shape:
//
//	spec, _ := version.ParseNode("~4.18.0")
//	spec.FormatUpdated("4.19.0") // "~4.19.0"
//
// Parsers never fail loudly: an unrecognised constraint yields ok == false.
package version

// Kind is the shape of a version constraint.
type Kind int

const (
	Exact Kind = iota
	Caret
	Tilde
	Greater
	GreaterOrEqual
	Less
	LessOrEqual
	Wildcard
	Range
	GoPinned
	Any
)

var kindNames = [...]string{
	Exact:          "exact",
	Caret:          "caret",
	Tilde:          "tilde",
	Greater:        "greater",
	GreaterOrEqual: "greater_or_equal",
	Less:           "less",
	LessOrEqual:    "less_or_equal",
	Wildcard:       "wildcard",
	Range:          "range",
	GoPinned:       "go_pinned",
	Any:            "any",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsPinned reports whether the kind admits exactly one version.
func (k Kind) IsPinned() bool {
	return k == Exact || k == GoPinned
}

// Spec is a classified version constraint.
//
// For simple shapes Prefix + Version + Suffix == Raw. Range and Wildcard
// specs carry a representative Version and no prefix or suffix.
type Spec struct {
	Kind    Kind
	Raw     string // constraint as written in the manifest
	Version string // numeric body, e.g. "1.2.3" for "^1.2.3"
	Prefix  string // operator text re-emitted on update, e.g. "^" or "~> "
	Suffix  string // trailing text re-emitted on update, e.g. "+incompatible"
}

// New returns a Spec without prefix or suffix.
func New(kind Kind, raw, version string) Spec {
	return Spec{Kind: kind, Raw: raw, Version: version}
}

// WithPrefix returns a copy of s with the given prefix.
func (s Spec) WithPrefix(p string) Spec {
	s.Prefix = p
	return s
}

// WithSuffix returns a copy of s with the given suffix.
func (s Spec) WithSuffix(suf string) Spec {
	s.Suffix = suf
	return s
}

// IsPinned reports whether the constraint admits exactly one version.
func (s Spec) IsPinned() bool {
	return s.Kind.IsPinned()
}

// FormatUpdated renders the constraint with newVersion in place of Version.
func (s Spec) FormatUpdated(newVersion string) string {
	return s.Prefix + newVersion + s.Suffix
}

// String returns the raw constraint.
func (s Spec) String() string {
	return s.Raw
}

// Parser classifies a raw constraint for one ecosystem.
type Parser func(raw string) (Spec, bool)
