package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifeos/internal/models"
)

type styles struct {
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	heading     lipgloss.Style
	muted       lipgloss.Style
	ok          lipgloss.Style
	danger      lipgloss.Style
	warning     lipgloss.Style
	keypad      lipgloss.Style
	doc         lipgloss.Style
}

type palette struct {
	accent, subtle, surface, good, bad, warn string
}

var palettes = map[models.Theme]palette{
	models.ThemeDark:  {accent: "205", subtle: "240", surface: "236", good: "42", bad: "196", warn: "214"},
	models.ThemeLight: {accent: "125", subtle: "245", surface: "254", good: "28", bad: "160", warn: "130"},
}

func newStyles(theme models.Theme) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[models.ThemeDark]
	}
	return styles{
		activeTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.accent)).
			Background(lipgloss.Color(p.surface)).
			Padding(0, 1).
			Bold(true),
		inactiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)).
			Padding(0, 1),
		heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.accent)).
			Bold(true),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color(p.subtle)),
		ok:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.good)),
		danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.bad)).
			Bold(true),
		warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warn)).
			Italic(true),
		keypad: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.accent)).
			Padding(1, 3),
		doc: lipgloss.NewStyle().Padding(1, 2),
	}
}
