package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/depup/pkg/errors"
)

func TestParseAge(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"1d", 24 * time.Hour, false},
		{"10d", 240 * time.Hour, false},
		{"2w", 14 * 24 * time.Hour, false},
		{"1m", 30 * 24 * time.Hour, false},
		{" 3d ", 72 * time.Hour, false},
		{"0d", 0, false},
		{"", 0, true},
		{"10", 0, true},
		{"abc", 0, true},
		{"10x", 0, true},
		{"-1d", 0, true},
		{"d", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAge(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAge(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidDuration) {
					t.Errorf("expected INVALID_DURATION, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseAge(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAge_Message(t *testing.T) {
	_, err := ParseAge("3x")
	want := "invalid duration format '3x': expected format like '2w', '10d', '1m'"
	if got := errors.UserMessage(err); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatAge(t *testing.T) {
	tests := map[time.Duration]string{
		0:                   "0d",
		24 * time.Hour:      "1d",
		14 * 24 * time.Hour: "2w",
		60 * 24 * time.Hour: "2m",
		90 * time.Minute:    "1h30m0s",
	}
	for in, want := range tests {
		if got := FormatAge(in); got != want {
			t.Errorf("FormatAge(%v) = %s, want %s", in, got, want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := `exclude = ["typescript"]
include_pinned = true
age = "2w"
languages = ["node", "rust"]

[registries]
npm = "https://npm.example.com"
`
	if err := os.WriteFile(filepath.Join(dir, ".depup.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f.Path != filepath.Join(dir, ".depup.toml") {
		t.Errorf("unexpected path %s", f.Path)
	}
	if len(f.Exclude) != 1 || f.Exclude[0] != "typescript" {
		t.Errorf("unexpected exclude %v", f.Exclude)
	}
	if f.IncludePinned == nil || !*f.IncludePinned {
		t.Error("expected include_pinned = true")
	}
	if len(f.Languages) != 2 {
		t.Errorf("unexpected languages %v", f.Languages)
	}
	if f.Registries["npm"] != "https://npm.example.com" {
		t.Errorf("unexpected registries %v", f.Registries)
	}
	age, ok, err := f.MinAge()
	if err != nil || !ok || age != 14*24*time.Hour {
		t.Errorf("MinAge() = %v, %v, %v", age, ok, err)
	}
}

func TestLoad_Missing(t *testing.T) {
	f, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f.Path != "" || f.IncludePinned != nil {
		t.Errorf("expected empty file, got %+v", f)
	}
	if _, ok, _ := f.MinAge(); ok {
		t.Error("expected no age")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"syntax", "exclude = [", errors.ErrCodeInvalidConfig},
		{"unknown key", "exculde = [\"x\"]\n", errors.ErrCodeInvalidConfig},
		{"bad age", "age = \"soon\"\n", errors.ErrCodeInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "depup.toml"), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(dir)
			if !errors.Is(err, tt.code) {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
		})
	}
}
