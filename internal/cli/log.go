package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// newLogger returns the diagnostics logger. It always writes to stderr in
// practice so stdout stays clean for --json and --diff.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// levelFor maps the verbosity flags onto a log level, keeping fallback when
// neither is set.
func levelFor(verbose, quiet bool, fallback log.Level) log.Level {
	switch {
	case verbose:
		return log.DebugLevel
	case quiet:
		return log.WarnLevel
	}
	return fallback
}

// runID returns a short identifier that tags every line logged by one
// invocation.
func runID() string {
	return uuid.NewString()[:8]
}

// startRun derives the logger for a single run and attaches it to ctx.
func startRun(ctx context.Context, base *log.Logger) (context.Context, *log.Logger) {
	l := base.With("run", runID())
	return withLogger(ctx, l), l
}

// timer reports how long a run took once it finishes.
type timer struct {
	logger *log.Logger
	start  time.Time
}

func startTimer(l *log.Logger) *timer {
	return &timer{logger: l, start: time.Now()}
}

// done logs e.g. "Checked 42 dependencies in 3 manifests (1.234s)".
func (t *timer) done(format string, args ...any) {
	t.logger.Infof("%s (%s)", fmt.Sprintf(format, args...), time.Since(t.start).Round(time.Millisecond))
}

type ctxKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext falls back to log.Default() so helpers called outside a
// run still have somewhere to log.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
