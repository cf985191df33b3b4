package deps

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/depup/pkg/errors"
)

type mockManifestParser struct {
	typeName string
	files    []string
}

func (m *mockManifestParser) Type() string { return m.typeName }
func (m *mockManifestParser) Supports(filename string) bool {
	for _, f := range m.files {
		if f == filename {
			return true
		}
	}
	return false
}
func (m *mockManifestParser) Parse(path, content string) ([]Dependency, error) { return nil, nil }
func (m *mockManifestParser) Update(path, content, pkg, newVersion string) (string, error) {
	return content, nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDetectManifest(t *testing.T) {
	gradle := &mockManifestParser{typeName: "build.gradle", files: []string{"build.gradle", "build.gradle.kts"}}
	cargo := &mockManifestParser{typeName: "Cargo.toml", files: []string{"Cargo.toml"}}

	tests := []struct {
		name     string
		path     string
		wantType string
		wantErr  bool
	}{
		{"kotlin dsl", "/repo/build.gradle.kts", "build.gradle", false},
		{"cargo", "/repo/src-tauri/Cargo.toml", "Cargo.toml", false},
		{"unknown", "/repo/setup.py", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DetectManifest(tt.path, gradle, cargo)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DetectManifest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && p.Type() != tt.wantType {
				t.Errorf("expected %s, got %s", tt.wantType, p.Type())
			}
		})
	}
}

func TestDetect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Cargo.toml"), "[package]\n")
	writeFile(t, filepath.Join(dir, "build.gradle.kts"), "")
	writeFile(t, filepath.Join(dir, "nested", "package.json"), "{}")

	node := &Language{Name: "node", ManifestFiles: []string{"package.json"}}
	rust := &Language{Name: "rust", ManifestFiles: []string{"Cargo.toml"}}
	java := &Language{Name: "java", ManifestFiles: []string{"build.gradle", "build.gradle.kts"}}

	got, err := Detect(dir, []*Language{node, rust, java})
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 manifests, got %d: %+v", len(got), got)
	}
	if got[0].Language != rust || got[0].Path != filepath.Join(dir, "Cargo.toml") {
		t.Errorf("unexpected first manifest %+v", got[0])
	}
	if got[1].Language != java || filepath.Base(got[1].Path) != "build.gradle.kts" {
		t.Errorf("unexpected second manifest %+v", got[1])
	}
}

func TestDetect_Discover(t *testing.T) {
	dir := t.TempDir()
	called := false
	lang := &Language{
		Name:          "custom",
		ManifestFiles: []string{"custom.txt"},
		Discover: func(d string, l *Language) ([]Manifest, error) {
			called = true
			return []Manifest{{Path: filepath.Join(d, "x"), Language: l, WorkspaceRoot: true}}, nil
		},
	}

	got, err := Detect(dir, []*Language{lang})
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if !called || len(got) != 1 || !got[0].WorkspaceRoot {
		t.Errorf("Discover not used: %+v", got)
	}
}

func TestDetect_MissingDirectory(t *testing.T) {
	_, err := Detect(filepath.Join(t.TempDir(), "missing"), nil)
	if !errors.Is(err, errors.ErrCodeDirectoryNotFound) {
		t.Fatalf("expected DIRECTORY_NOT_FOUND, got %v", err)
	}
	if got := errors.UserMessage(err); !strings.HasPrefix(got, "directory not found: ") {
		t.Errorf("unexpected message %q", got)
	}
}

func TestDetect_FileInsteadOfDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	writeFile(t, path, "")
	if _, err := Detect(path, nil); !errors.Is(err, errors.ErrCodeDirectoryNotFound) {
		t.Errorf("expected DIRECTORY_NOT_FOUND, got %v", err)
	}
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "go.mod")
	writeFile(t, path, "module x\n")

	got, err := ReadManifest(path)
	if err != nil {
		t.Fatalf("ReadManifest failed: %v", err)
	}
	if got != "module x\n" {
		t.Errorf("unexpected content %q", got)
	}

	if _, err := ReadManifest(filepath.Join(dir, "missing")); !errors.Is(err, errors.ErrCodeManifestNotFound) {
		t.Errorf("expected MANIFEST_NOT_FOUND, got %v", err)
	}
}
