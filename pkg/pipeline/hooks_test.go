package pipeline

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/depup/pkg/deps"
	"github.com/matzehuels/depup/pkg/deps/rust"
	"github.com/matzehuels/depup/pkg/observability"
)

type recordingHooks struct {
	observability.NoopUpdateHooks
	mu       sync.Mutex
	detected int
	started  []string
	writes   map[string]int
}

func (h *recordingHooks) OnDetect(_ context.Context, _ string, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detected = n
}

func (h *recordingHooks) OnFetchStart(_ context.Context, _, pkg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started = append(h.started, pkg)
}

func (h *recordingHooks) OnFetchComplete(context.Context, string, string, int, time.Duration, error) {
}

func (h *recordingHooks) OnWrite(_ context.Context, path string, updates int, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.writes[path] = updates
}

func TestExecute_Hooks(t *testing.T) {
	hooks := &recordingHooks{writes: make(map[string]int)}
	observability.SetUpdateHooks(hooks)
	defer observability.Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "Cargo.toml")
	writeFile(t, path, "[dependencies]\nserde = \"1.0.190\"\npinned = \"=2.0.0\"\n")

	fetch := &fakeFetcher{versions: map[string][]string{"serde": {"1.0.195"}}}
	run(t, newTestRunner(map[string]deps.Fetcher{"rust": fetch}), Options{
		Dir:       dir,
		Languages: []*deps.Language{rust.Language},
	})

	if hooks.detected != 1 {
		t.Errorf("expected 1 detected manifest, got %d", hooks.detected)
	}
	if len(hooks.started) != 1 || hooks.started[0] != "serde" {
		t.Errorf("expected a single fetch for serde, got %v", hooks.started)
	}
	if hooks.writes[path] != 1 {
		t.Errorf("expected one update written to %s, got %v", path, hooks.writes)
	}
}
