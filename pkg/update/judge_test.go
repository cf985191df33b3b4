package update

import (
	"testing"
	"time"

	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/deps/golang"
	"github.com/matzehuels/depup/pkg/deps/rust"
	"github.com/matzehuels/depup/pkg/integrations"
	"github.com/matzehuels/depup/pkg/version"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time { return now.AddDate(0, 0, -n) }

func rustDep(name, raw string) deps.Dependency {
	spec, ok := version.ParseRust(raw)
	if !ok {
		panic("bad rust spec " + raw)
	}
	return deps.Dependency{Name: name, Spec: spec, Language: "rust"}
}

func releases(vs ...string) []integrations.Release {
	out := make([]integrations.Release, len(vs))
	for i, v := range vs {
		out[i] = integrations.Release{Version: v, ReleasedAt: daysAgo(100 - i)}
	}
	return out
}

func TestJudge(t *testing.T) {
	tests := []struct {
		name     string
		dep      deps.Dependency
		releases []integrations.Release
		filter   Filter
		want     string
		reason   ReasonKind
	}{
		{
			name:     "caret update",
			dep:      rustDep("serde", "1.0.190"),
			releases: releases("1.0.190", "1.0.195"),
			want:     "1.0.195",
		},
		{
			name:     "downgrade prevented",
			dep:      rustDep("mockall", "0.13.0"),
			releases: releases("0.9.1", "0.10.0", "0.11.0", "0.12.0", "0.13.0"),
			reason:   ReasonAlreadyLatest,
		},
		{
			name:     "numeric ordering",
			dep:      rustDep("x", "1.9.0"),
			releases: releases("1.9.0", "1.10.0", "1.2.0"),
			want:     "1.10.0",
		},
		{
			name:     "stable skips prerelease",
			dep:      rustDep("x", "1.0.0"),
			releases: releases("1.0.0", "1.1.0", "2.0.0-beta.1"),
			want:     "1.1.0",
		},
		{
			name:     "only prereleases",
			dep:      rustDep("x", "1.0.0"),
			releases: releases("2.0.0-rc.1", "2.0.0-rc.2"),
			reason:   ReasonNoSuitableVersion,
		},
		{
			name:     "prerelease may move to prerelease",
			dep:      rustDep("x", "2.0.0-alpha.1"),
			releases: releases("2.0.0-alpha.1", "2.0.1-beta.1"),
			want:     "2.0.1-beta.1",
		},
		{
			name:     "empty list",
			dep:      rustDep("x", "1.0.0"),
			releases: nil,
			reason:   ReasonFetchFailed,
		},
		{
			name: "age filter",
			dep:  rustDep("x", "1.0.0"),
			releases: []integrations.Release{
				{Version: "1.0.0", ReleasedAt: daysAgo(60)},
				{Version: "1.1.0", ReleasedAt: daysAgo(20)},
				{Version: "1.2.0", ReleasedAt: daysAgo(3)},
			},
			filter: Filter{MinAge: 14 * 24 * time.Hour},
			want:   "1.1.0",
		},
		{
			name: "age filter leaves nothing",
			dep:  rustDep("x", "1.0.0"),
			releases: []integrations.Release{
				{Version: "1.1.0", ReleasedAt: daysAgo(1)},
			},
			filter: Filter{MinAge: 7 * 24 * time.Hour},
			reason: ReasonNoSuitableVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewJudge(tt.filter, WithNow(now)).Judge(tt.dep, tt.releases)
			if tt.want != "" {
				if !got.IsUpdate() || got.NewVersion != tt.want {
					t.Errorf("expected update to %s, got %s", tt.want, got)
				}
				return
			}
			if got.IsUpdate() || got.Reason.Kind != tt.reason {
				t.Errorf("expected skip %s, got %s", tt.reason.Key(), got)
			}
		})
	}
}

func TestJudge_EmptyListMessage(t *testing.T) {
	got := NewJudge(Filter{}).Judge(rustDep("x", "1.0.0"), nil)
	if got.Reason.String() != "fetch failed: no versions available" {
		t.Errorf("unexpected reason %q", got.Reason)
	}
}

func TestJudge_ReleasedAt(t *testing.T) {
	rs := releases("1.0.0", "1.1.0")
	got := NewJudge(Filter{}, WithNow(now)).Judge(rustDep("x", "1.0.0"), rs)
	if !got.ReleasedAt.Equal(rs[1].ReleasedAt) {
		t.Errorf("expected release time %v, got %v", rs[1].ReleasedAt, got.ReleasedAt)
	}
}

func TestShouldSkip(t *testing.T) {
	goPinned := deps.Dependency{
		Name:     "github.com/critical/lib",
		Spec:     version.Spec{Kind: version.GoPinned, Raw: "v1.0.0", Version: "1.0.0", Prefix: "v"},
		Language: "go",
		Pinned:   true,
	}
	goPlain := deps.Dependency{
		Name:     "github.com/spf13/cobra",
		Spec:     version.Spec{Kind: version.Exact, Raw: "v1.8.0", Version: "1.8.0", Prefix: "v"},
		Language: "go",
	}
	rustExact := rustDep("anyhow", "=1.0.80")
	serde := rustDep("serde", "1.0.190")

	tests := []struct {
		name   string
		lang   *deps.Language
		dep    deps.Dependency
		filter Filter
		skip   bool
		reason ReasonKind
	}{
		{"no filter", rust.Language, serde, Filter{}, false, 0},
		{"language filtered", rust.Language, serde, NewFilter([]string{"node"}, nil, nil, false, 0), true, ReasonLanguageFiltered},
		{"language allowed", rust.Language, serde, NewFilter([]string{"rust"}, nil, nil, false, 0), false, 0},
		{"not in only", rust.Language, serde, NewFilter(nil, nil, []string{"tokio"}, false, 0), true, ReasonNotInOnlyList},
		{"only wins over exclude", rust.Language, serde, NewFilter(nil, []string{"serde"}, []string{"serde"}, false, 0), false, 0},
		{"only beats exclude for others", rust.Language, serde, NewFilter(nil, []string{"serde"}, []string{"tokio"}, false, 0), true, ReasonNotInOnlyList},
		{"excluded", rust.Language, serde, NewFilter(nil, []string{"serde"}, nil, false, 0), true, ReasonExcluded},
		{"exact pinned", rust.Language, rustExact, Filter{}, true, ReasonPinned},
		{"include pinned", rust.Language, rustExact, Filter{IncludePinned: true}, false, 0},
		{"go pinned comment", golang.Language, goPinned, Filter{}, true, ReasonPinned},
		{"go plain exact", golang.Language, goPlain, Filter{}, false, 0},
		{"no language", nil, rustExact, Filter{}, true, ReasonPinned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, skip := NewJudge(tt.filter).ShouldSkip(tt.lang, tt.dep)
			if skip != tt.skip {
				t.Fatalf("expected skip=%v, got %v (%s)", tt.skip, skip, reason)
			}
			if skip && reason.Kind != tt.reason {
				t.Errorf("expected reason %s, got %s", tt.reason.Key(), reason.Kind.Key())
			}
		})
	}
}

func TestJudge_NoDowngradeProperty(t *testing.T) {
	versions := []string{"0.1.0", "1.0.0", "1.2.0", "1.10.0", "2.0.0-rc.1", "2.0.0", "10.0.0"}
	j := NewJudge(Filter{}, WithNow(now))
	for _, current := range versions {
		got := j.Judge(rustDep("x", "^"+current), releases(versions...))
		if got.IsUpdate() && version.Compare(current, got.NewVersion) >= 0 {
			t.Errorf("%s: proposed non-upgrade %s", current, got.NewVersion)
		}
		if got.IsUpdate() && !version.IsPrerelease(current) && version.IsPrerelease(got.NewVersion) {
			t.Errorf("%s: proposed prerelease %s", current, got.NewVersion)
		}
	}
}
