package update

import (
	"time"

	"github.com/matzehuels/depup/pkg/deps"
)

// Filter selects which dependencies are considered for an update.
// Empty sets mean no restriction.
type Filter struct {
	Languages     map[string]bool
	Exclude       map[string]bool
	Only          map[string]bool
	IncludePinned bool
	MinAge        time.Duration // zero disables the age filter
}

// NewFilter builds a Filter from name lists.
func NewFilter(languages, exclude, only []string, includePinned bool, minAge time.Duration) Filter {
	return Filter{
		Languages:     set(languages),
		Exclude:       set(exclude),
		Only:          set(only),
		IncludePinned: includePinned,
		MinAge:        minAge,
	}
}

func set(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// AllowsLanguage reports whether dependencies of the named language pass
// the language filter.
func (f Filter) AllowsLanguage(name string) bool {
	return len(f.Languages) == 0 || f.Languages[name]
}

// ShouldSkip reports whether dep is ruled out before fetching, and why.
// A non-empty only list replaces the exclude list.
func (f Filter) ShouldSkip(lang *deps.Language, dep deps.Dependency) (Reason, bool) {
	switch {
	case !f.AllowsLanguage(dep.Language):
		return LanguageFiltered(), true
	case len(f.Only) > 0 && !f.Only[dep.Name]:
		return NotInOnlyList(), true
	case len(f.Only) == 0 && f.Exclude[dep.Name]:
		return Excluded(), true
	case !f.IncludePinned && isPinned(lang, dep):
		return Pinned(), true
	}
	return Reason{}, false
}

func isPinned(lang *deps.Language, dep deps.Dependency) bool {
	if lang == nil {
		return dep.Pinned || dep.Spec.IsPinned()
	}
	return lang.IsPinned(dep)
}
