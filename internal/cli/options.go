package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depup/pkg/config"
	"github.com/matzehuels/depup/pkg/deps/javascript"
	"github.com/matzehuels/depup/pkg/deps/languages"
	"github.com/matzehuels/depup/pkg/errors"
	"github.com/matzehuels/depup/pkg/pipeline"
	"github.com/matzehuels/depup/pkg/update"
)

// buildOptions merges flags, the settings file of dir and the defaults into
// pipeline options. Flags win over the file; list settings are combined.
func buildOptions(ctx context.Context, cmd *cobra.Command, dir string, f *flags) (pipeline.Options, error) {
	logger := loggerFromContext(ctx)

	file, err := loadConfig(dir, f.configPath)
	if err != nil {
		return pipeline.Options{}, err
	}
	if file.Path != "" {
		logger.Debug("loaded settings", "path", file.Path)
	}

	langs, err := languageNames(union(f.selectedLanguages(), file.Languages))
	if err != nil {
		return pipeline.Options{}, err
	}

	includePinned := f.includePinned
	if !cmd.Flags().Changed("include-pinned") && file.IncludePinned != nil {
		includePinned = *file.IncludePinned
	}

	minAge, err := resolveAge(ctx, dir, f.age, file)
	if err != nil {
		return pipeline.Options{}, err
	}

	registries, err := registryOverrides(file.Registries)
	if err != nil {
		return pipeline.Options{}, err
	}

	return pipeline.Options{
		Dir:         dir,
		Filter:      update.NewFilter(langs, union(file.Exclude, f.exclude), union(file.Only, f.only), includePinned, minAge),
		DryRun:      f.dryRun,
		Concurrency: f.concurrency,
		Registries:  registries,
	}, nil
}

func loadConfig(dir, path string) (*config.File, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(dir)
}

// resolveAge picks the minimum release age: --age, then the settings file,
// then pnpm's minimumReleaseAge for pnpm projects.
func resolveAge(ctx context.Context, dir, flag string, file *config.File) (time.Duration, error) {
	if flag != "" {
		return config.ParseAge(flag)
	}
	if age, ok, err := file.MinAge(); err != nil || ok {
		return age, err
	}
	if javascript.UsesPnpm(dir) {
		if s, ok := javascript.ReadPnpmSettings(dir); ok {
			loggerFromContext(ctx).Debug("using pnpm minimumReleaseAge", "age", s.MinimumReleaseAge, "source", s.Source)
			return s.MinimumReleaseAge, nil
		}
	}
	return 0, nil
}

// languageNames canonicalizes names and aliases ("js", "cargo").
func languageNames(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, n := range names {
		l := languages.Find(n)
		if l == nil {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown language %q", n)
		}
		out = append(out, l.Name)
	}
	return out, nil
}

// registryOverrides keys base URLs by language name. The settings file may
// use a registry name instead ("npm", "pypi").
func registryOverrides(in map[string]string) (map[string]string, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(in))
	for k, url := range in {
		l := languages.Find(k)
		if l == nil {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown registry %q", k)
		}
		out[l.Name] = url
	}
	return out, nil
}

// union returns the distinct elements of a followed by those of b.
func union(a, b []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}
