// Package cli implements the depup command-line interface.
//
// depup has a single command that updates the dependency manifests found in
// a directory:
//
//	depup [dir] [flags]
//
// Settings come from flags, then from depup.toml in the target directory,
// then from built-in defaults. Results are printed as text, JSON (--json) or
// a unified diff (--diff) on stdout. Logs and progress go to stderr.
//
// # Logging
//
// Logs use charmbracelet/log. --verbose enables debug output and --quiet
// limits logging to warnings. Every line of a run carries the same run id.
//
// # Exit codes
//
// Execute returns an [*ExitError] when the process should exit with a code
// other than 0 or 1:
//
//	0  success, with or without updates
//	1  invalid arguments or configuration, or a failed --install
//	2  the run finished but recorded errors
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depup/pkg/buildinfo"
	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/deps/languages"
	"github.com/matzehuels/depup/pkg/install"
	"github.com/matzehuels/depup/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used in help and log output.
const appName = "depup"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
	Stdout io.Writer
	Stderr io.Writer

	// Fetchers overrides the registry client per language name.
	Fetchers map[string]deps.Fetcher

	// Installer runs package managers for --install.
	Installer install.Runner

	// Now fixes the clock of the age filter. Zero means time.Now.
	Now time.Time
}

// New creates a CLI writing results to stdout and logs to stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:    newLogger(stderr, level),
		Stdout:    stdout,
		Stderr:    stderr,
		Installer: install.NewSystem(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the depup command.
func (c *CLI) RootCommand() *cobra.Command {
	f := newFlags()

	root := &cobra.Command{
		Use:   appName + " [dir]",
		Short: "Update dependency versions across ecosystems",
		Long: `depup updates the dependency versions declared in package.json, pyproject.toml,
Cargo.toml, go.mod, Gemfile, composer.json and build.gradle to the newest
stable releases, keeping each constraint's operator and the file's formatting.`,
		Example: `  depup                      update the current directory
  depup -n ./service         show what would change
  depup --rust --age 2w      only Rust, releases at least two weeks old
  depup --only react --diff  print a diff for one package`,
		Version:       buildinfo.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := pipeline.DefaultDir
			if len(args) == 1 {
				dir = args[0]
			}
			return c.run(cmd, dir, f)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)
	f.register(root)
	registerCompletions(root)

	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Exit Codes
// =============================================================================

// ExitError asks main to exit with Code. Err, if set, was already reported.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// =============================================================================
// Helpers
// =============================================================================

// displayName returns the display name of the language called name.
func displayName(name string) string {
	if l := languages.Find(name); l != nil {
		return l.DisplayName
	}
	return name
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
