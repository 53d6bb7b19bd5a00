package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func Heading(s string) string { return headingStyle.Render(s) }

func Muted(s string) string { return mutedStyle.Render(s) }

func OK(s string) string { return okStyle.Render("✓ " + s) }

func Warn(s string) string { return warnStyle.Render("⚠ " + s) }

// Check renders a checkbox.
func Check(done bool) string {
	if done {
		return okStyle.Render("[x]")
	}
	return "[ ]"
}

// ShortID trims an id for listings. Commands accept any unique prefix.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Bar draws a text progress bar for percent in 0-100.
func Bar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// Ml formats a millilitre amount without trailing zeros.
func Ml(v float64) string {
	return fmt.Sprintf("%g ml", v)
}
