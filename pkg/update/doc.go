// Package update decides, per dependency, whether and to what a manifest
// should be updated.
//
// A [Judge] applies a [Filter] before any registry lookup ([Judge.ShouldSkip])
// and picks the target version from the fetched releases afterwards
// ([Judge.Judge]):
//
//	j := update.NewJudge(update.Filter{MinAge: 14 * 24 * time.Hour})
//	if reason, skip := j.ShouldSkip(lang, dep); skip {
//	    return update.Skip(dep, reason)
//	}
//	releases, _ := fetcher.FetchVersions(ctx, dep.Name)
//	res := j.Judge(dep, releases)
//
// The judge never proposes a version that orders at or below the current
// one, never moves a stable dependency to a prerelease, and honours the
// minimum release age against a clock captured once per run.
//
// Results are collected per manifest in [ManifestResult] and per run in
// [Summary].
package update
