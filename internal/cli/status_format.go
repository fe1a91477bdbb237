package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	colorGreen  = "2"
	colorRed    = "1"
	colorYellow = "3"
)

// colorEnabled reports whether stdout is a terminal that accepts colour.
var colorEnabled = func() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func colorize(text, color string) string {
	if !colorEnabled() {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(text)
}

func formatOK(text string) string {
	return colorize(text, colorGreen)
}

func formatFailure(text string) string {
	return colorize(text, colorRed)
}

func formatWarning(text string) string {
	return colorize(text, colorYellow)
}
