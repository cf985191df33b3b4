package pipeline

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/matzehuels/depup/pkg/cache"
	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/errors"
	"github.com/matzehuels/depup/pkg/integrations"
	"github.com/matzehuels/depup/pkg/observability"
	"github.com/matzehuels/depup/pkg/update"
)

// Runner executes update runs. The cache deduplicates registry lookups
// within and across runs of the same Runner.
//
// Multiple goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger

	// Fetchers overrides the registry client per language name.
	Fetchers map[string]deps.Fetcher

	clientOpts []integrations.Option
	mu         sync.Mutex
	clients    map[string]deps.Fetcher
}

// NewRunner creates a runner with the given cache and logger. Client options
// apply to every registry client the runner builds.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger, opts ...integrations.Option) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:      c,
		Logger:     logger,
		clientOpts: opts,
		clients:    make(map[string]deps.Fetcher),
	}
}

// fetcher returns the registry client of lang, building it on first use.
func (r *Runner) fetcher(lang *deps.Language, baseURL string) (deps.Fetcher, error) {
	if f, ok := r.Fetchers[lang.Name]; ok {
		return f, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := lang.Name + "|" + baseURL
	if f, ok := r.clients[key]; ok {
		return f, nil
	}
	f, err := lang.Fetcher(r.Cache, baseURL, r.clientOpts...)
	if err != nil {
		return nil, err
	}
	r.clients[key] = f
	return f, nil
}

// parsed is a manifest whose dependencies are known.
type parsed struct {
	manifest deps.Manifest
	parser   deps.ManifestParser
	content  string
	result   update.ManifestResult
	errs     []error // per dependency, registry failures only
}

// Execute runs detect, parse, fetch and write. It returns an error only when
// the run could not start (invalid options, missing directory) or ctx was
// cancelled; everything else is reported in Result.Errors.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	judge := update.NewJudge(opts.Filter, update.WithNow(now))
	res := &Result{Summary: update.Summary{DryRun: opts.DryRun}}

	// Stage 1: Detect
	start := time.Now()
	manifests, err := r.detect(ctx, opts, res)
	if err != nil {
		return nil, err
	}
	res.Stats.DetectTime = time.Since(start)
	res.Stats.Manifests = len(manifests)
	r.Logger.Info("detected manifests", "count", len(manifests), "duration", res.Stats.DetectTime)

	// Stage 2: Parse
	var work []*parsed
	for _, m := range manifests {
		if p := r.parse(m, res); p != nil {
			work = append(work, p)
		}
	}

	// Stage 3: Fetch and judge
	start = time.Now()
	if err := r.fetchAll(ctx, opts, judge, work, res); err != nil {
		return nil, err
	}
	res.Stats.FetchTime = time.Since(start)
	r.Logger.Debug("fetched versions", "packages", res.Stats.Fetched, "duration", res.Stats.FetchTime)

	for _, p := range work {
		for i, err := range p.errs {
			if err != nil {
				res.Errors = append(res.Errors, RunError{Kind: KindRegistry, Subject: p.result.Results[i].Name(), Err: err})
			}
		}
	}

	// Stage 4: Write. Updates the writer rejects become WriteFailed skips,
	// so the summary is assembled afterwards.
	start = time.Now()
	for _, p := range work {
		if p.result.Modified() {
			r.write(ctx, p, opts.DryRun, res)
		}
		res.Summary.Manifests = append(res.Summary.Manifests, p.result)
	}
	res.Stats.WriteTime = time.Since(start)

	return res, nil
}

func (r *Runner) detect(ctx context.Context, opts Options, res *Result) ([]deps.Manifest, error) {
	// Stat the root once so a missing directory fails the run.
	if _, err := deps.Detect(opts.Dir, nil); err != nil {
		return nil, err
	}

	var out []deps.Manifest
	for _, lang := range opts.Languages {
		if !opts.Filter.AllowsLanguage(lang.Name) {
			continue
		}
		found, err := deps.Detect(opts.Dir, []*deps.Language{lang})
		if err != nil {
			r.Logger.Warn("detection failed", "language", lang.Name, "err", err)
			res.Errors = append(res.Errors, RunError{Kind: KindDetect, Subject: opts.Dir, Err: err})
			continue
		}
		out = append(out, found...)
	}
	observability.Update().OnDetect(ctx, opts.Dir, len(out))
	return out, nil
}

func (r *Runner) parse(m deps.Manifest, res *Result) *parsed {
	fail := func(err error) *parsed {
		r.Logger.Warn("parse failed", "path", m.Path, "err", err)
		res.Errors = append(res.Errors, RunError{Kind: KindParse, Subject: m.Path, Err: err})
		return nil
	}

	parser, ok := m.Language.Manifest(filepath.Base(m.Path))
	if !ok {
		return fail(errors.New(errors.ErrCodeUnsupportedFormat, "unsupported manifest: %s", filepath.Base(m.Path)))
	}
	content, err := deps.ReadManifest(m.Path)
	if err != nil {
		return fail(err)
	}
	list, err := parser.Parse(m.Path, content)
	if err != nil {
		return fail(err)
	}

	r.Logger.Debug("parsed manifest", "path", m.Path, "deps", len(list))
	res.Stats.Dependencies += len(list)
	p := &parsed{
		manifest: m,
		parser:   parser,
		content:  content,
		result: update.ManifestResult{
			Path:     m.Path,
			Language: m.Language,
			Results:  make([]update.Result, len(list)),
		},
		errs: make([]error, len(list)),
	}
	for i, d := range list {
		p.result.Results[i] = update.Result{Dependency: d}
	}
	return p
}

// fetchAll judges every dependency. Pre-filtered dependencies are decided
// immediately; the rest are looked up concurrently, bounded by the general
// semaphore or by the language's own FetchLimit. Results land in their
// declaration slot, so ordering does not depend on scheduling.
func (r *Runner) fetchAll(ctx context.Context, opts Options, judge *update.Judge, work []*parsed, res *Result) error {
	general := semaphore.NewWeighted(int64(opts.Concurrency))
	limited := make(map[string]*semaphore.Weighted)
	semFor := func(lang *deps.Language) *semaphore.Weighted {
		if lang.FetchLimit <= 0 {
			return general
		}
		if s, ok := limited[lang.Name]; ok {
			return s
		}
		s := semaphore.NewWeighted(int64(lang.FetchLimit))
		limited[lang.Name] = s
		return s
	}

	total := 0
	for _, p := range work {
		total += len(p.result.Results)
	}
	var done, fetched atomic.Int64
	progress := func() {
		n := done.Add(1)
		if opts.Progress != nil {
			opts.Progress(int(n), total)
		}
	}

	var g errgroup.Group
	for _, p := range work {
		lang := p.manifest.Language
		for i := range p.result.Results {
			dep := p.result.Results[i].Dependency
			if reason, skip := judge.ShouldSkip(lang, dep); skip {
				p.result.Results[i] = update.Skip(dep, reason)
				progress()
				continue
			}

			f, err := r.fetcher(lang, opts.Registries[lang.Name])
			if err != nil {
				p.result.Results[i] = update.Skip(dep, update.FetchFailed(errors.UserMessage(err)))
				p.errs[i] = err
				progress()
				continue
			}

			sem := semFor(lang)
			p, i := p, i
			g.Go(func() error {
				defer progress()
				if err := sem.Acquire(ctx, 1); err != nil {
					p.result.Results[i] = update.Skip(dep, update.FetchFailed(err.Error()))
					return nil
				}
				defer sem.Release(1)

				p.result.Results[i], p.errs[i] = r.fetchOne(ctx, f, judge, dep)
				fetched.Add(1)
				return nil
			})
		}
	}
	_ = g.Wait()
	res.Stats.Fetched = int(fetched.Load())
	return ctx.Err()
}

func (r *Runner) fetchOne(ctx context.Context, f deps.Fetcher, judge *update.Judge, dep deps.Dependency) (update.Result, error) {
	registry := f.Registry()
	observability.Update().OnFetchStart(ctx, registry, dep.Name)
	start := time.Now()
	releases, err := f.FetchVersions(ctx, dep.Name)
	observability.Update().OnFetchComplete(ctx, registry, dep.Name, len(releases), time.Since(start), err)

	if err != nil {
		code := errors.GetCode(err)
		r.Logger.Warn("fetch failed", "name", dep.Name, "registry", registry,
			"code", code, "category", errors.CategoryOf(code), "err", errors.UserMessage(err))
		return update.Skip(dep, update.FetchFailed(errors.UserMessage(err))), err
	}
	res := judge.Judge(dep, releases)
	r.Logger.Debug("judged", "name", dep.Name, "versions", len(releases), "result", res.String(), "duration", time.Since(start))
	return res, nil
}
