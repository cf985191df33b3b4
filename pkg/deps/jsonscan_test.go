package deps

import (
	"strings"
	"testing"

	"github.com/matzehuels/depup/pkg/errors"
	"github.com/matzehuels/depup/pkg/version"
)

const packageJSON = `{
  "name": "app",
  "version": "1.0.0",
  "scripts": {"build": "tsc"},
  "dependencies": {
    "express": "~4.18.0",
    "lodash": "^4.17.21",
    "local": "file:../local"
  },
  "devDependencies": {
    "typescript":"5.3.3",
    "express": "^4.0.0"
  }
}
`

func TestScanJSONSections(t *testing.T) {
	entries, err := ScanJSONSections(packageJSON, "dependencies", "devDependencies")
	if err != nil {
		t.Fatalf("ScanJSONSections failed: %v", err)
	}

	want := []JSONEntry{
		{Section: "dependencies", Name: "express", Value: "~4.18.0"},
		{Section: "dependencies", Name: "lodash", Value: "^4.17.21"},
		{Section: "dependencies", Name: "local", Value: "file:../local"},
		{Section: "devDependencies", Name: "typescript", Value: "5.3.3"},
		{Section: "devDependencies", Name: "express", Value: "^4.0.0"},
	}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d: %+v", len(want), len(entries), entries)
	}
	for i, e := range entries {
		if e.Section != want[i].Section || e.Name != want[i].Name || e.Value != want[i].Value {
			t.Errorf("entries[%d] = %+v, want %+v", i, e, want[i])
		}
		if got := packageJSON[e.Start:e.End]; got != `"`+e.Value+`"` {
			t.Errorf("entries[%d] range covers %q", i, got)
		}
	}
}

func TestScanJSONSections_SkipsNonObjects(t *testing.T) {
	entries, err := ScanJSONSections(`{"dependencies": ["a"], "require": {"x": 1, "y": "2.0"}}`, "dependencies", "require")
	if err != nil {
		t.Fatalf("ScanJSONSections failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "y" {
		t.Errorf("expected only y, got %+v", entries)
	}
}

func TestScanJSONSections_Invalid(t *testing.T) {
	for _, in := range []string{`{"dependencies": {`, `[]`, ``} {
		if _, err := ScanJSONSections(in, "dependencies"); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestUpdateJSON(t *testing.T) {
	got, err := UpdateJSON("package.json", packageJSON, "express", "4.19.0", version.ParseNode, "dependencies", "devDependencies")
	if err != nil {
		t.Fatalf("UpdateJSON failed: %v", err)
	}
	want := strings.Replace(packageJSON, `"express": "~4.18.0"`, `"express": "~4.19.0"`, 1)
	if got != want {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestUpdateJSON_SkipsUnrecognised(t *testing.T) {
	content := `{"dependencies": {"a": "github:x/a"}, "devDependencies": {"a": "1.0.0"}}`
	got, err := UpdateJSON("package.json", content, "a", "2.0.0", version.ParseNode, "dependencies", "devDependencies")
	if err != nil {
		t.Fatalf("UpdateJSON failed: %v", err)
	}
	if got != `{"dependencies": {"a": "github:x/a"}, "devDependencies": {"a": "2.0.0"}}` {
		t.Errorf("unexpected output %s", got)
	}
}

func TestUpdateJSON_Errors(t *testing.T) {
	_, err := UpdateJSON("package.json", packageJSON, "missing", "1.0.0", version.ParseNode, "dependencies")
	if !errors.Is(err, errors.ErrCodeInvalidVersionSpec) {
		t.Errorf("expected INVALID_VERSION_SPEC, got %v", err)
	}
	want := "invalid version specification 'missing' in package.json: package not found or version could not be updated"
	if got := errors.UserMessage(err); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	_, err = UpdateJSON("package.json", "{", "x", "1.0.0", version.ParseNode, "dependencies")
	if !errors.Is(err, errors.ErrCodeManifestParse) {
		t.Errorf("expected MANIFEST_PARSE, got %v", err)
	}
	if !strings.HasPrefix(errors.UserMessage(err), "failed to parse JSON in package.json: ") {
		t.Errorf("unexpected message %q", errors.UserMessage(err))
	}
}
