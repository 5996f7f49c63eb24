// Package printer provides styled console output for the pyver CLI, with
// color automatically disabled in pipelines, CI environments, and when the
// NO_COLOR convention asks for it.
package printer

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// noColor disables all styling when true. Machine-read output never goes
// through this package, so flipping it only affects human-facing text.
var noColor bool

// Style definitions for consistent console output across the application.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
)

// SetNoColor enables or disables styled output.
func SetNoColor(v bool) {
	noColor = v
}

func render(style lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return style.Render(text)
}

// Faint returns text with faint styling.
func Faint(text string) string {
	return render(faintStyle, text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return render(errorStyle, text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return render(warningStyle, text)
}

// Warnf prints a formatted warning line to the error stream.
func Warnf(format string, a ...any) {
	fmt.Fprintln(os.Stderr, Warning(fmt.Sprintf(format, a...)))
}

// Errorf prints a formatted error line to the error stream.
func Errorf(format string, a ...any) {
	fmt.Fprintln(os.Stderr, Error(fmt.Sprintf(format, a...)))
}
