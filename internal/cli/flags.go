package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/depup/pkg/deps/languages"
	"github.com/matzehuels/depup/pkg/errors"
)

// flags are the command-line settings of one invocation.
type flags struct {
	dryRun        bool
	verbose       bool
	quiet         bool
	languages     map[string]*bool
	exclude       []string
	only          []string
	includePinned bool
	age           string
	json          bool
	diff          bool
	install       bool
	configPath    string
	concurrency   int
	noColor       bool
}

func newFlags() *flags {
	return &flags{languages: make(map[string]*bool)}
}

func (f *flags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "show what would change without writing files")
	fs.BoolVar(&f.verbose, "verbose", false, "show skipped packages, a per-language breakdown and debug logs")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "print only the summary")

	for _, l := range languages.All {
		f.languages[l.Name] = fs.Bool(l.Name, false, "update "+l.DisplayName+" dependencies only (combinable)")
	}

	fs.StringArrayVar(&f.exclude, "exclude", nil, "never update this package (repeatable)")
	fs.StringArrayVar(&f.only, "only", nil, "update only this package (repeatable, overrides --exclude)")
	fs.BoolVar(&f.includePinned, "include-pinned", false, "also update exact and // pinned versions")
	fs.StringVar(&f.age, "age", "", "minimum release age, e.g. 10d, 2w, 1m")
	fs.BoolVar(&f.json, "json", false, "print the result as JSON")
	fs.BoolVar(&f.diff, "diff", false, "print the changes as a unified diff")
	fs.BoolVar(&f.install, "install", false, "run the package manager of each updated ecosystem")
	fs.StringVar(&f.configPath, "config", "", "settings file (default: depup.toml in the target directory)")
	fs.IntVar(&f.concurrency, "concurrency", 0, "parallel registry requests (default 10)")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
}

// validate rejects flag combinations that cannot be honored.
func (f *flags) validate() error {
	switch {
	case f.json && f.diff:
		return errors.New(errors.ErrCodeConflictingOptions, "--json and --diff cannot be used together")
	case f.quiet && f.verbose:
		return errors.New(errors.ErrCodeConflictingOptions, "--quiet and --verbose cannot be used together")
	case f.concurrency < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "--concurrency must be positive, got %d", f.concurrency)
	}
	return nil
}

// selectedLanguages returns the names of the language flags that were set,
// in canonical order.
func (f *flags) selectedLanguages() []string {
	var out []string
	for _, l := range languages.All {
		if p := f.languages[l.Name]; p != nil && *p {
			out = append(out, l.Name)
		}
	}
	return out
}
