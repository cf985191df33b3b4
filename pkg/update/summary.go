package update

import "github.com/matzehuels/depup/pkg/deps"

// ManifestResult holds the decisions for one manifest in declaration order.
type ManifestResult struct {
	Path     string
	Language *deps.Language
	Results  []Result
}

// Add appends r.
func (m *ManifestResult) Add(r Result) {
	m.Results = append(m.Results, r)
}

// Modified reports whether any result is an update.
func (m ManifestResult) Modified() bool {
	return m.UpdateCount() > 0
}

// Updates returns the update results.
func (m ManifestResult) Updates() []Result {
	return m.filter(true)
}

// Skips returns the skip results.
func (m ManifestResult) Skips() []Result {
	return m.filter(false)
}

func (m ManifestResult) filter(updated bool) []Result {
	var out []Result
	for _, r := range m.Results {
		if r.Updated == updated {
			out = append(out, r)
		}
	}
	return out
}

func (m ManifestResult) UpdateCount() int { return len(m.Updates()) }
func (m ManifestResult) SkipCount() int   { return len(m.Skips()) }

// LanguageName returns the language identifier, or "" when unset.
func (m ManifestResult) LanguageName() string {
	if m.Language == nil {
		return ""
	}
	return m.Language.Name
}

// Summary is the outcome of a run.
type Summary struct {
	Manifests []ManifestResult
	DryRun    bool
}

// LanguageCount is the per-language breakdown of a Summary.
type LanguageCount struct {
	Language string `json:"language"`
	Updates  int    `json:"updates"`
	Skips    int    `json:"skips"`
}

func (s Summary) TotalUpdates() int {
	n := 0
	for _, m := range s.Manifests {
		n += m.UpdateCount()
	}
	return n
}

func (s Summary) TotalSkips() int {
	n := 0
	for _, m := range s.Manifests {
		n += m.SkipCount()
	}
	return n
}

// FilesModified counts manifests with at least one update.
func (s Summary) FilesModified() int {
	n := 0
	for _, m := range s.Manifests {
		if m.Modified() {
			n++
		}
	}
	return n
}

// HasChanges reports whether any manifest has an update.
func (s Summary) HasChanges() bool {
	return s.FilesModified() > 0
}

// ByLanguage aggregates counts per language in order of first appearance.
func (s Summary) ByLanguage() []LanguageCount {
	var out []LanguageCount
	index := make(map[string]int)
	for _, m := range s.Manifests {
		name := m.LanguageName()
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, LanguageCount{Language: name})
		}
		out[i].Updates += m.UpdateCount()
		out[i].Skips += m.SkipCount()
	}
	return out
}

// UpdatedLanguages returns the languages that have at least one update, in
// order of first appearance.
func (s Summary) UpdatedLanguages() []*deps.Language {
	var out []*deps.Language
	seen := make(map[*deps.Language]bool)
	for _, m := range s.Manifests {
		if m.Language != nil && m.Modified() && !seen[m.Language] {
			seen[m.Language] = true
			out = append(out, m.Language)
		}
	}
	return out
}
