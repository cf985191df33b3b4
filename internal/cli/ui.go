package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/matzehuels/depup/pkg/update"
)

var (
	colorAccent = lipgloss.Color("36")
	colorNew    = lipgloss.Color("35")
	colorFail   = lipgloss.Color("167")
	colorMuted  = lipgloss.Color("240")
)

var (
	styleManifest = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleMuted    = lipgloss.NewStyle().Foreground(colorMuted)
	styleNew      = lipgloss.NewStyle().Foreground(colorNew)
	styleFail     = lipgloss.NewStyle().Foreground(colorFail)
	styleSpinner  = lipgloss.NewStyle().Foreground(colorAccent)
)

const arrow = "->"

// disableColor renders every style as plain text. Used for --no-color and
// in tests.
func disableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// updateLine renders "  serde 1.0.190 -> 1.0.195".
func updateLine(r update.Result) string {
	return fmt.Sprintf("  %s %s %s %s", r.Name(), r.Dependency.Version(), styleMuted.Render(arrow), styleNew.Render(r.NewVersion))
}

// skipLine renders "  tokio (skipped: already at latest version)".
func skipLine(r update.Result) string {
	return fmt.Sprintf("  %s %s", r.Name(), styleMuted.Render("(skipped: "+r.Reason.String()+")"))
}

// status is the outcome marker printed before install progress lines.
type status int

const (
	statusInfo status = iota
	statusOK
	statusFailed
)

func (s status) icon() string {
	switch s {
	case statusOK:
		return styleNew.Render("✓")
	case statusFailed:
		return styleFail.Render("✗")
	}
	return styleMuted.Render("›")
}

func printStatus(w io.Writer, s status, format string, args ...any) {
	fmt.Fprintln(w, s.icon()+" "+fmt.Sprintf(format, args...))
}

// printDetail prints indented, muted context under a status line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "    "+styleMuted.Render(fmt.Sprintf(format, args...)))
}
