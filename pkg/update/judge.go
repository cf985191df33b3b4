package update

import (
	"time"

	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/integrations"
	"github.com/matzehuels/depup/pkg/version"
)

// Judge turns fetched releases into update decisions. It is safe for
// concurrent use.
type Judge struct {
	filter Filter
	now    time.Time
}

// Option configures a Judge.
type Option func(*Judge)

// WithNow fixes the clock the age filter measures against.
func WithNow(now time.Time) Option {
	return func(j *Judge) { j.now = now }
}

// NewJudge returns a Judge for filter. The current time is captured once so
// every dependency of a run is judged against the same instant.
func NewJudge(filter Filter, opts ...Option) *Judge {
	j := &Judge{filter: filter, now: time.Now()}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Filter returns the filter the judge applies.
func (j *Judge) Filter() Filter { return j.filter }

// ShouldSkip applies the filter to dep before any registry lookup.
func (j *Judge) ShouldSkip(lang *deps.Language, dep deps.Dependency) (Reason, bool) {
	return j.filter.ShouldSkip(lang, dep)
}

// Judge picks the newest acceptable release for dep.
//
// Prereleases are dropped unless dep is itself on a prerelease. With a
// minimum age, releases newer than now minus that age are dropped. The
// newest remaining release is proposed only if it orders above the current
// version.
func (j *Judge) Judge(dep deps.Dependency, releases []integrations.Release) Result {
	if len(releases) == 0 {
		return Skip(dep, FetchFailed("no versions available"))
	}

	current := dep.Version()
	allowPre := version.IsPrerelease(current)
	cutoff := j.now.Add(-j.filter.MinAge)

	var latest *integrations.Release
	for i := range releases {
		r := &releases[i]
		if !allowPre && version.IsPrerelease(r.Version) {
			continue
		}
		if j.filter.MinAge > 0 && r.ReleasedAt.After(cutoff) {
			continue
		}
		if latest == nil || version.Compare(r.Version, latest.Version) > 0 {
			latest = r
		}
	}

	switch {
	case latest == nil:
		return Skip(dep, NoSuitableVersion())
	case version.Compare(current, latest.Version) >= 0:
		return Skip(dep, AlreadyLatest())
	}
	return Update(dep, latest.Version, latest.ReleasedAt)
}
