package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner animates a one-line "label done/total" status on a terminal while
// registries are queried. It stops on stop() or when its context ends, and
// leaves the line blank.
type spinner struct {
	w     io.Writer
	label string

	done, total atomic.Int64

	cancel  context.CancelFunc
	exited  chan struct{}
	once    sync.Once
	drawn   int
	drawnMu sync.Mutex
}

// startSpinner begins drawing on w immediately.
func startSpinner(ctx context.Context, w io.Writer, label string) *spinner {
	ctx, cancel := context.WithCancel(ctx)
	s := &spinner{w: w, label: label, cancel: cancel, exited: make(chan struct{})}
	go s.loop(ctx)
	return s
}

// progress records how many lookups have finished. Safe for concurrent use.
func (s *spinner) progress(done, total int) {
	s.done.Store(int64(done))
	s.total.Store(int64(total))
}

func (s *spinner) text() string {
	if total := s.total.Load(); total > 0 {
		return fmt.Sprintf("%s %d/%d", s.label, s.done.Load(), total)
	}
	return s.label
}

func (s *spinner) loop(ctx context.Context) {
	defer close(s.exited)
	defer s.clear()

	t := time.NewTicker(spinnerInterval)
	defer t.Stop()
	for i := 0; ; i++ {
		s.draw(spinnerFrames[i%len(spinnerFrames)])
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

func (s *spinner) draw(frame string) {
	msg := s.text()
	s.drawnMu.Lock()
	defer s.drawnMu.Unlock()
	s.drawn = max(s.drawn, len(msg)+2)
	fmt.Fprintf(s.w, "\r%s %s", styleSpinner.Render(frame), styleMuted.Render(msg))
}

func (s *spinner) clear() {
	s.drawnMu.Lock()
	defer s.drawnMu.Unlock()
	if s.drawn > 0 {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.drawn))
	}
}

// stop ends the animation and waits for the line to be cleared. Calling it
// more than once is harmless.
func (s *spinner) stop() {
	s.once.Do(s.cancel)
	<-s.exited
}
