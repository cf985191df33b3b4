// Package install runs a project's package manager after its manifests were
// updated, so lock files and vendored modules follow the new versions.
//
// The tool is chosen from the files present in the project directory:
//
//	node    pnpm-lock.yaml → pnpm, yarn.lock → yarn, bun.lockb → bun, else npm
//	python  uv.lock → uv, poetry.lock → poetry, rye.lock → rye,
//	        Pipfile.lock → pipenv, else pip
//	rust    cargo build
//	go      go mod download
//	ruby    bundle install
//	php     composer install
//	java    ./gradlew dependencies, else gradle dependencies
package install

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Command is a package-manager invocation.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result is the outcome of one install.
type Result struct {
	Language string  `json:"language"`
	Command  Command `json:"-"`
	Success  bool    `json:"success"`
	Stdout   string  `json:"stdout,omitempty"`
	Stderr   string  `json:"stderr,omitempty"`
	Err      error   `json:"-"`
}

// Runner installs the dependencies of one language in a directory. ok is
// false when no package manager could be determined for the language.
type Runner interface {
	Install(ctx context.Context, language, dir string) (res Result, ok bool)
}

// ExecFunc runs name with args in dir and returns its output.
type ExecFunc func(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, err error)

// System runs package managers as subprocesses.
type System struct {
	// Exec replaces process execution, for tests.
	Exec ExecFunc
}

// NewSystem returns a Runner backed by os/exec.
func NewSystem() *System {
	return &System{Exec: execCommand}
}

// Install detects and runs the package manager of language in dir.
func (s *System) Install(ctx context.Context, language, dir string) (Result, bool) {
	cmd, ok := Detect(language, dir)
	if !ok {
		return Result{}, false
	}
	run := s.Exec
	if run == nil {
		run = execCommand
	}

	stdout, stderr, err := run(ctx, dir, cmd.Name, cmd.Args...)
	return Result{
		Language: language,
		Command:  cmd,
		Success:  err == nil,
		Stdout:   stdout,
		Stderr:   stderr,
		Err:      err,
	}, true
}

func execCommand(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// lockRule maps a lock file to the command it implies.
type lockRule struct {
	file string
	cmd  Command
}

var (
	nodeRules = []lockRule{
		{"pnpm-lock.yaml", Command{"pnpm", []string{"install"}}},
		{"yarn.lock", Command{"yarn", []string{"install"}}},
		{"bun.lockb", Command{"bun", []string{"install"}}},
		{"package-lock.json", Command{"npm", []string{"install"}}},
		{"package.json", Command{"npm", []string{"install"}}},
	}
	pythonRules = []lockRule{
		{"uv.lock", Command{"uv", []string{"sync"}}},
		{"poetry.lock", Command{"poetry", []string{"install"}}},
		{"rye.lock", Command{"rye", []string{"sync"}}},
		{"Pipfile.lock", Command{"pipenv", []string{"install"}}},
	}
	fixed = map[string]Command{
		"rust": {"cargo", []string{"build"}},
		"go":   {"go", []string{"mod", "download"}},
		"ruby": {"bundle", []string{"install"}},
		"php":  {"composer", []string{"install"}},
	}
)

// Detect returns the install command for language in dir.
func Detect(language, dir string) (Command, bool) {
	switch language {
	case "node":
		return firstMatch(dir, nodeRules)
	case "python":
		if cmd, ok := firstMatch(dir, pythonRules); ok {
			return cmd, true
		}
		return Command{"pip", []string{"install", "-e", "."}}, true
	case "java":
		if exists(filepath.Join(dir, "gradlew")) {
			return Command{"./gradlew", []string{"dependencies"}}, true
		}
		return Command{"gradle", []string{"dependencies"}}, true
	}
	cmd, ok := fixed[language]
	return cmd, ok
}

func firstMatch(dir string, rules []lockRule) (Command, bool) {
	for _, r := range rules {
		if exists(filepath.Join(dir, r.file)) {
			return r.cmd, true
		}
	}
	return Command{}, false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
