// Package output prints styled status lines for the commands that touch the
// filesystem (gen, init). Word lists and table dumps never go through here:
// data output must stay byte-exact, so it is written to stdout unstyled.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	styled = true
)

// SetStyled toggles lipgloss rendering. Commands switch it off when the
// --color flag resolves to off.
func SetStyled(on bool) {
	styled = on
}

func render(style lipgloss.Style, msg string) string {
	if !styled {
		return msg
	}
	return style.Render(msg)
}

// Success prints a completed-operation message in green.
func Success(w io.Writer, msg string) {
	fmt.Fprintln(w, render(successStyle, msg))
}

// Error prints a failure message in red. The process error itself still
// travels through the normal error return; this is for per-item reporting.
func Error(w io.Writer, msg string) {
	fmt.Fprintln(w, render(errorStyle, msg))
}

// Info prints a status note in cyan.
func Info(w io.Writer, msg string) {
	fmt.Fprintln(w, render(infoStyle, msg))
}

// Step prints an indented sub-item in gray.
func Step(w io.Writer, msg string) {
	fmt.Fprintln(w, render(stepStyle, "   "+msg))
}
