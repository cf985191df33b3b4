package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/depup/pkg/pipeline"
	"github.com/matzehuels/depup/pkg/update"
)

// verbosity selects how much the text format prints.
type verbosity int

const (
	verbosityNormal verbosity = iota
	verbosityQuiet
	verbosityVerbose
)

func verbosityOf(f *flags) verbosity {
	switch {
	case f.quiet:
		return verbosityQuiet
	case f.verbose:
		return verbosityVerbose
	}
	return verbosityNormal
}

func dryRunPrefix(dryRun bool) string {
	if dryRun {
		return "(dry-run) "
	}
	return ""
}

// =============================================================================
// Text
// =============================================================================

// writeText prints one block per manifest, the errors and a summary.
func writeText(w io.Writer, res *pipeline.Result, v verbosity) error {
	prefix := dryRunPrefix(res.Summary.DryRun)
	if v == verbosityQuiet {
		return writeTextSummary(w, res.Summary, v)
	}

	for _, m := range res.Summary.Manifests {
		fmt.Fprintln(w, prefix+styleManifest.Render(m.Path))
		for _, r := range m.Updates() {
			fmt.Fprintln(w, updateLine(r))
		}
		if v == verbosityVerbose {
			for _, r := range m.Skips() {
				fmt.Fprintln(w, skipLine(r))
			}
		}
	}

	if len(res.Errors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styleFail.Render("Errors:"))
		for _, e := range res.Errors {
			fmt.Fprintf(w, "  - %s\n", e.Error())
		}
	}

	fmt.Fprintln(w)
	return writeTextSummary(w, res.Summary, v)
}

func writeTextSummary(w io.Writer, s update.Summary, v verbosity) error {
	prefix := dryRunPrefix(s.DryRun)
	updates := s.TotalUpdates()

	if v == verbosityQuiet {
		var err error
		if updates > 0 {
			_, err = fmt.Fprintf(w, "%s%d updated\n", prefix, updates)
		} else {
			_, err = fmt.Fprintf(w, "%sNo updates\n", prefix)
		}
		return err
	}

	fmt.Fprintf(w, "%sSummary:\n", prefix)
	fmt.Fprintf(w, "  %d package(s) updated\n", updates)
	_, err := fmt.Fprintf(w, "  %d package(s) skipped\n", s.TotalSkips())

	if v == verbosityVerbose {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "By language:")
		for _, l := range s.ByLanguage() {
			_, err = fmt.Fprintf(w, "  %s: %d updated, %d skipped\n", displayName(l.Language), l.Updates, l.Skips)
		}
	}
	return err
}

// =============================================================================
// JSON
// =============================================================================

type jsonOutput struct {
	DryRun    bool           `json:"dry_run"`
	Summary   jsonSummary    `json:"summary"`
	Manifests []jsonManifest `json:"manifests"`
	Errors    []string       `json:"errors,omitempty"`
}

type jsonSummary struct {
	Updates    int                    `json:"updates"`
	Skips      int                    `json:"skips"`
	ByLanguage []update.LanguageCount `json:"by_language,omitempty"`
}

type jsonManifest struct {
	Path     string       `json:"path"`
	Language string       `json:"language"`
	Updates  []jsonUpdate `json:"updates"`
	Skips    []jsonSkip   `json:"skips,omitempty"`
}

type jsonUpdate struct {
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
	Dev  bool   `json:"dev"`
}

type jsonSkip struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Reason  string `json:"reason"`
}

// skipReason renders r as its snake_case key, with the message if any:
// "fetch_failed: timeout".
func skipReason(r update.Reason) string {
	if r.Message != "" {
		return r.Kind.Key() + ": " + r.Message
	}
	return r.Kind.Key()
}

// writeJSON prints res as indented JSON. Skips and the per-language
// breakdown are included only when verbose.
func writeJSON(w io.Writer, res *pipeline.Result, verbose bool) error {
	out := jsonOutput{
		DryRun: res.Summary.DryRun,
		Summary: jsonSummary{
			Updates: res.Summary.TotalUpdates(),
			Skips:   res.Summary.TotalSkips(),
		},
		Manifests: make([]jsonManifest, 0, len(res.Summary.Manifests)),
		Errors:    pipeline.Strings(res.Errors),
	}
	if verbose {
		out.Summary.ByLanguage = res.Summary.ByLanguage()
	}

	for _, m := range res.Summary.Manifests {
		jm := jsonManifest{
			Path:     m.Path,
			Language: m.LanguageName(),
			Updates:  []jsonUpdate{},
		}
		for _, r := range m.Updates() {
			jm.Updates = append(jm.Updates, jsonUpdate{
				Name: r.Name(),
				From: r.Dependency.Version(),
				To:   r.NewVersion,
				Dev:  r.Dependency.Dev,
			})
		}
		if verbose {
			for _, r := range m.Skips() {
				jm.Skips = append(jm.Skips, jsonSkip{
					Name:    r.Name(),
					Version: r.Dependency.Version(),
					Reason:  skipReason(r.Reason),
				})
			}
		}
		out.Manifests = append(out.Manifests, jm)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
