package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depup/pkg/buildinfo"
	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/observability"
	"github.com/matzehuels/depup/pkg/pipeline"
)

func (c *CLI) run(cmd *cobra.Command, dir string, f *flags) error {
	if err := f.validate(); err != nil {
		return err
	}
	c.SetLogLevel(levelFor(f.verbose, f.quiet, c.Logger.GetLevel()))
	if f.noColor {
		disableColor()
	}

	ctx, logger := startRun(cmd.Context(), c.Logger)
	if f.verbose {
		hooks := observability.NewLogHooks(logger)
		defer observability.SetHTTPHooks(hooks)()
		defer observability.SetCacheHooks(hooks)()
	}
	logger.Debug("starting", "version", buildinfo.Version, "dir", dir, "dry_run", f.dryRun)

	opts, err := buildOptions(ctx, cmd, dir, f)
	if err != nil {
		return err
	}
	opts.Now = c.Now

	runner := pipeline.NewRunner(cache.NewMemoryCache(0), logger)
	runner.Fetchers = c.Fetchers

	var spin *spinner
	if !f.quiet && !f.json && isTerminal(c.Stderr) {
		spin = startSpinner(ctx, c.Stderr, "Checking registries")
		opts.Progress = spin.progress
	}

	elapsed := startTimer(logger)
	res, err := runner.Execute(ctx, opts)
	if spin != nil {
		spin.stop()
	}
	if err != nil {
		return err
	}
	elapsed.done("Checked %d dependencies in %d manifests", res.Stats.Dependencies, res.Stats.Manifests)

	if err := c.output(f, dir, res); err != nil {
		return err
	}

	if f.install && !f.dryRun {
		if failed := c.installAll(ctx, dir, res, f.verbose); failed {
			return &ExitError{Code: 1}
		}
	}

	if res.HasErrors() {
		return &ExitError{Code: 2}
	}
	return nil
}

// output writes res to stdout in the format selected by f.
func (c *CLI) output(f *flags, dir string, res *pipeline.Result) error {
	switch {
	case f.json:
		return writeJSON(c.Stdout, res, f.verbose)
	case f.diff:
		return writeDiff(c.Stdout, dir, res)
	default:
		return writeText(c.Stdout, res, verbosityOf(f))
	}
}

// installAll runs the package manager of each language that was updated and
// reports whether any of them failed.
func (c *CLI) installAll(ctx context.Context, dir string, res *pipeline.Result, verbose bool) bool {
	langs := res.Summary.UpdatedLanguages()
	if len(langs) == 0 || c.Installer == nil {
		return false
	}
	logger := loggerFromContext(ctx)
	if verbose {
		printStatus(c.Stderr, statusInfo, "Running package manager install...")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	failed := false
	for _, l := range langs {
		r, ok := c.Installer.Install(ctx, l.Name, abs)
		if !ok {
			logger.Debug("no package manager found", "language", l.Name)
			continue
		}
		if r.Success {
			if verbose {
				printStatus(c.Stderr, statusOK, "%s install completed: %s", l.DisplayName, r.Command)
			}
			continue
		}
		failed = true
		printStatus(c.Stderr, statusFailed, "%s install failed: %s", l.DisplayName, r.Command)
		if r.Stderr != "" {
			printDetail(c.Stderr, "%s", r.Stderr)
		}
	}
	return failed
}
