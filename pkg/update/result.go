package update

import (
	"time"

	"github.com/matzehuels/depup/pkg/deps"
)

// ReasonKind enumerates why a dependency was not updated.
type ReasonKind int

const (
	ReasonPinned ReasonKind = iota
	ReasonAlreadyLatest
	ReasonExcluded
	ReasonNotInOnlyList
	ReasonFetchFailed
	ReasonNoSuitableVersion
	ReasonParseError
	ReasonLanguageFiltered
	ReasonWriteFailed
)

var reasonText = [...]string{
	ReasonPinned:            "pinned version",
	ReasonAlreadyLatest:     "already at latest",
	ReasonExcluded:          "excluded by --exclude",
	ReasonNotInOnlyList:     "not in --only list",
	ReasonFetchFailed:       "fetch failed",
	ReasonNoSuitableVersion: "no suitable version",
	ReasonParseError:        "parse error",
	ReasonLanguageFiltered:  "language filtered",
	ReasonWriteFailed:       "write failed",
}

var reasonKeys = [...]string{
	ReasonPinned:            "pinned",
	ReasonAlreadyLatest:     "already_latest",
	ReasonExcluded:          "excluded",
	ReasonNotInOnlyList:     "not_in_only_list",
	ReasonFetchFailed:       "fetch_failed",
	ReasonNoSuitableVersion: "no_suitable_version",
	ReasonParseError:        "parse_error",
	ReasonLanguageFiltered:  "language_filtered",
	ReasonWriteFailed:       "write_failed",
}

// Key returns the snake_case identifier of the kind.
func (k ReasonKind) Key() string {
	if k >= 0 && int(k) < len(reasonKeys) {
		return reasonKeys[k]
	}
	return "unknown"
}

// Reason is a skip reason. Message is set for FetchFailed, ParseError and
// WriteFailed.
type Reason struct {
	Kind    ReasonKind
	Message string
}

func Pinned() Reason            { return Reason{Kind: ReasonPinned} }
func AlreadyLatest() Reason     { return Reason{Kind: ReasonAlreadyLatest} }
func Excluded() Reason          { return Reason{Kind: ReasonExcluded} }
func NotInOnlyList() Reason     { return Reason{Kind: ReasonNotInOnlyList} }
func NoSuitableVersion() Reason { return Reason{Kind: ReasonNoSuitableVersion} }
func LanguageFiltered() Reason  { return Reason{Kind: ReasonLanguageFiltered} }

func FetchFailed(msg string) Reason { return Reason{Kind: ReasonFetchFailed, Message: msg} }
func ParseError(msg string) Reason  { return Reason{Kind: ReasonParseError, Message: msg} }
func WriteFailed(msg string) Reason { return Reason{Kind: ReasonWriteFailed, Message: msg} }

// String renders the reason for people, e.g. "fetch failed: timeout".
func (r Reason) String() string {
	text := "unknown"
	if r.Kind >= 0 && int(r.Kind) < len(reasonText) {
		text = reasonText[r.Kind]
	}
	if r.Message != "" {
		return text + ": " + r.Message
	}
	return text
}

// MarshalText renders the reason as its String form.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Result is the decision for one dependency: either an update to NewVersion
// or a skip for Reason.
type Result struct {
	Dependency deps.Dependency
	Updated    bool
	NewVersion string
	ReleasedAt time.Time
	Reason     Reason
}

// Update returns a Result that moves dep to newVersion.
func Update(dep deps.Dependency, newVersion string, releasedAt time.Time) Result {
	return Result{Dependency: dep, Updated: true, NewVersion: newVersion, ReleasedAt: releasedAt}
}

// Skip returns a Result that leaves dep alone.
func Skip(dep deps.Dependency, reason Reason) Result {
	return Result{Dependency: dep, Reason: reason}
}

// IsUpdate reports whether r proposes a new version.
func (r Result) IsUpdate() bool { return r.Updated }

// IsSkip reports whether r leaves the dependency unchanged.
func (r Result) IsSkip() bool { return !r.Updated }

// Name returns the dependency name.
func (r Result) Name() string { return r.Dependency.Name }

func (r Result) String() string {
	if r.Updated {
		return r.Dependency.Name + ": " + r.Dependency.Version() + " -> " + r.NewVersion
	}
	return r.Dependency.Name + ": skipped (" + r.Reason.String() + ")"
}
