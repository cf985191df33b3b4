package version

import "testing"

type parseCase struct {
	raw     string
	kind    Kind
	version string
	prefix  string
	suffix  string
}

func runParseCases(t *testing.T, name string, parse Parser, cases []parseCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(name+"/"+tc.raw, func(t *testing.T) {
			got, ok := parse(tc.raw)
			if !ok {
				t.Fatalf("%s(%q) not recognised", name, tc.raw)
			}
			if got.Kind != tc.kind {
				t.Errorf("Kind = %v, want %v", got.Kind, tc.kind)
			}
			if got.Version != tc.version {
				t.Errorf("Version = %q, want %q", got.Version, tc.version)
			}
			if got.Prefix != tc.prefix {
				t.Errorf("Prefix = %q, want %q", got.Prefix, tc.prefix)
			}
			if got.Suffix != tc.suffix {
				t.Errorf("Suffix = %q, want %q", got.Suffix, tc.suffix)
			}
			if got.Raw != tc.raw {
				t.Errorf("Raw = %q, want %q", got.Raw, tc.raw)
			}
		})
	}
}

func TestParseNode(t *testing.T) {
	runParseCases(t, "ParseNode", ParseNode, []parseCase{
		{"1.2.3", Exact, "1.2.3", "", ""},
		{"1.2.3-beta.1", Exact, "1.2.3-beta.1", "", ""},
		{"^1.2.3", Caret, "1.2.3", "^", ""},
		{"~4.18.0", Tilde, "4.18.0", "~", ""},
		{">=1.0.0", GreaterOrEqual, "1.0.0", ">=", ""},
		{">1.0.0", Greater, "1.0.0", ">", ""},
		{"<=2.0.0", LessOrEqual, "2.0.0", "<=", ""},
		{"<2.0.0", Less, "2.0.0", "<", ""},
		{"*", Wildcard, "*", "", ""},
		{"1.x", Wildcard, "1.x", "", ""},
		{"1.2.*", Wildcard, "1.2.*", "", ""},
		{">=1.0.0 <2.0.0", Range, "1.0.0", "", ""},
		{"1.0.0 - 2.0.0", Range, "1.0.0", "", ""},
	})
}

func TestParseNodeUnrecognised(t *testing.T) {
	for _, raw := range []string{"", "latest", "workspace:*", "git+https://github.com/a/b.git", "npm:foo@1.0.0", "1.2"} {
		if s, ok := ParseNode(raw); ok {
			t.Errorf("ParseNode(%q) = %+v, want unrecognised", raw, s)
		}
	}
}

func TestParsePython(t *testing.T) {
	runParseCases(t, "ParsePython", ParsePython, []parseCase{
		{"==1.2.3", Exact, "1.2.3", "==", ""},
		{"==1.2.3a1", Exact, "1.2.3a1", "==", ""},
		{"^1.2", Caret, "1.2", "^", ""},
		{"~1.2.3", Tilde, "1.2.3", "~", ""},
		{"~=1.4", Tilde, "1.4", "~=", ""},
		{">=2.0", GreaterOrEqual, "2.0", ">=", ""},
		{">2.0", Greater, "2.0", ">", ""},
		{"<=2.0", LessOrEqual, "2.0", "<=", ""},
		{"<3", Less, "3", "<", ""},
		{"*", Wildcard, "*", "", ""},
		{"1.*", Wildcard, "1.*", "", ""},
		{">=1.0,<2.0", Range, "1.0", "", ""},
		{">=1.0, <2.0", Range, "1.0", "", ""},
		{"2.31.0", Exact, "2.31.0", "", ""},
	})
}

func TestParseRust(t *testing.T) {
	runParseCases(t, "ParseRust", ParseRust, []parseCase{
		{"1.0.190", Caret, "1.0.190", "", ""},
		{"1.0", Caret, "1.0", "", ""},
		{"^1.28.0", Caret, "1.28.0", "^", ""},
		{"=1.0.0", Exact, "1.0.0", "=", ""},
		{"~0.5", Tilde, "0.5", "~", ""},
		{">=0.3", GreaterOrEqual, "0.3", ">=", ""},
		{"<2", Less, "2", "<", ""},
		{"*", Wildcard, "*", "", ""},
		{"0.*", Wildcard, "0.*", "", ""},
		{">=1.0, <2.0", Range, "1.0", "", ""},
		{"1.0.0-alpha.1", Caret, "1.0.0-alpha.1", "", ""},
	})
}

func TestParseGo(t *testing.T) {
	runParseCases(t, "ParseGo", ParseGo, []parseCase{
		{"v1.2.3", Exact, "1.2.3", "v", ""},
		{"v1.2.3-rc.1", Exact, "1.2.3-rc.1", "v", ""},
		{"v0.0.0-20230101120000-abcdef123456", Exact, "0.0.0-20230101120000-abcdef123456", "v", ""},
		{"v2.0.0+incompatible", Exact, "2.0.0", "v", "+incompatible"},
	})
	for _, raw := range []string{"1.2.3", "latest", "v1.2"} {
		if _, ok := ParseGo(raw); ok {
			t.Errorf("ParseGo(%q) recognised, want unrecognised", raw)
		}
	}
}

func TestParseRuby(t *testing.T) {
	runParseCases(t, "ParseRuby", ParseRuby, []parseCase{
		{"7.1.0", Exact, "7.1.0", "", ""},
		{"= 1.2.3", Exact, "1.2.3", "= ", ""},
		{"~> 7.1", Tilde, "7.1", "~> ", ""},
		{"~>2.0", Tilde, "2.0", "~>", ""},
		{">= 1.0", GreaterOrEqual, "1.0", ">= ", ""},
		{"> 1.0", Greater, "1.0", "> ", ""},
		{"<= 3", LessOrEqual, "3", "<= ", ""},
		{"< 3.0", Less, "3.0", "< ", ""},
		{"1.0.0.pre", Exact, "1.0.0.pre", "", ""},
		{">= 6.0, < 8", Range, "6.0", "", ""},
	})
}

func TestParsePHP(t *testing.T) {
	runParseCases(t, "ParsePHP", ParsePHP, []parseCase{
		{"1.2.3", Exact, "1.2.3", "", ""},
		{"v1.2.3", Exact, "1.2.3", "v", ""},
		{"^10.0", Caret, "10.0", "^", ""},
		{"~6.4", Tilde, "6.4", "~", ""},
		{">=8.1", GreaterOrEqual, "8.1", ">=", ""},
		{"<2.0", Less, "2.0", "<", ""},
		{"1.2.*", Wildcard, "1.2.*", "", ""},
		{"^1.0 || ^2.0", Range, "1.0", "", ""},
		{">=1.0 <2.0", Range, "1.0", "", ""},
	})
}

func TestParseJava(t *testing.T) {
	runParseCases(t, "ParseJava", ParseJava, []parseCase{
		{"1.2.3", Exact, "1.2.3", "", ""},
		{"5.3.20.RELEASE", Exact, "5.3.20.RELEASE", "", ""},
		{"31.1-jre", Exact, "31.1-jre", "", ""},
		{"1.2.+", Wildcard, "1.2.+", "", ""},
		{"latest.release", Wildcard, "latest.release", "", ""},
		{"latest.integration", Wildcard, "latest.integration", "", ""},
		{"[1.0,2.0]", Range, "1.0", "", ""},
		{"(1.0,2.0)", Range, "1.0", "", ""},
		{"[1.0,)", Range, "1.0", "", ""},
		{"(,2.0]", Range, "2.0", "", ""},
	})
}

func TestRoundTrip(t *testing.T) {
	inputs := map[string][]string{
		"node":   {"1.2.3", "^1.2.3", "~1.2.3", ">=1.0.0", ">1.0.0", "<=1.0.0", "<1.0.0", "*", "1.x"},
		"python": {"==1.2.3", "^1.2", "~1.2", "~=1.2", ">=1.2", ">1", "<=2", "<2", "1.*", "2.0"},
		"rust":   {"1.0", "=1.0.0", "^1.0", "~1.0", ">=1", "*"},
		"go":     {"v1.2.3", "v2.0.0+incompatible", "v0.0.0-20230101120000-abcdef123456"},
		"ruby":   {"1.0", "= 1.0", "~> 1.0", ">= 1.0", "<2"},
		"php":    {"1.0", "v1.0", "^1.0", "~1.0", ">=1.0", "1.0.*"},
		"java":   {"1.0", "5.3.20.RELEASE", "1.2.+"},
	}
	for lang, raws := range inputs {
		parse, ok := ParserFor(lang)
		if !ok {
			t.Fatalf("ParserFor(%q) missing", lang)
		}
		for _, raw := range raws {
			s, ok := parse(raw)
			if !ok {
				t.Errorf("%s: %q not recognised", lang, raw)
				continue
			}
			if got := s.FormatUpdated(s.Version); got != raw {
				t.Errorf("%s: FormatUpdated(%q) = %q, want %q", lang, s.Version, got, raw)
			}
		}
	}
}

func TestFormatUpdated(t *testing.T) {
	s, _ := ParseNode("~4.18.0")
	if got := s.FormatUpdated("4.19.0"); got != "~4.19.0" {
		t.Errorf("FormatUpdated = %q, want ~4.19.0", got)
	}
	g, _ := ParseGo("v2.0.0+incompatible")
	if got := g.FormatUpdated("2.1.0"); got != "v2.1.0+incompatible" {
		t.Errorf("FormatUpdated = %q, want v2.1.0+incompatible", got)
	}
}

func TestIsPinned(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{Exact, true},
		{GoPinned, true},
		{Caret, false},
		{Tilde, false},
		{GreaterOrEqual, false},
		{Range, false},
		{Wildcard, false},
		{Any, false},
	}
	for _, tt := range tests {
		if got := (Spec{Kind: tt.kind}).IsPinned(); got != tt.want {
			t.Errorf("%v.IsPinned() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
