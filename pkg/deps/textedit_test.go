package deps

import (
	"regexp"
	"testing"

	"github.com/matzehuels/depup/pkg/version"
)

func TestEditFirst(t *testing.T) {
	re := regexp.MustCompile(`(?m)^serde\s*=\s*"([^"]+)"`)
	content := "serde = \"git\"\nserde = \"1.0.190\" # keep\n"

	got, ok := EditFirst(content, re, 1, SpecRewriter(version.ParseRust, "1.0.195"))
	if !ok {
		t.Fatal("expected an edit")
	}
	if want := "serde = \"git\"\nserde = \"1.0.195\" # keep\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if _, ok := EditFirst("tokio = \"1\"", re, 1, SpecRewriter(version.ParseRust, "2")); ok {
		t.Error("expected no edit without a match")
	}
}
