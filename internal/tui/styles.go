// ABOUTME: Lipgloss styles for the light and dark themes.
// ABOUTME: The theme setting picks which palette every surface renders with.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/fittrack/internal/models"
)

type palette struct {
	fg, muted, accent, good, warn, bg lipgloss.Color
}

var palettes = map[string]palette{
	models.ThemeLight: {
		fg: "#1f2937", muted: "#6b7280", accent: "#4f46e5", good: "#059669", warn: "#dc2626", bg: "#f3f4f6",
	},
	models.ThemeDark: {
		fg: "#e5e7eb", muted: "#9ca3af", accent: "#818cf8", good: "#34d399", warn: "#f87171", bg: "#1f2937",
	},
}

type styles struct {
	title    lipgloss.Style
	tab      lipgloss.Style
	tabOn    lipgloss.Style
	muted    lipgloss.Style
	accent   lipgloss.Style
	good     lipgloss.Style
	warn     lipgloss.Style
	box      lipgloss.Style
	selected lipgloss.Style
	toast    lipgloss.Style
	modal    lipgloss.Style
}

func newStyles(theme string) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[models.ThemeLight]
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		tab:      lipgloss.NewStyle().Padding(0, 1).Foreground(p.muted),
		tabOn:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(p.bg).Background(p.accent),
		muted:    lipgloss.NewStyle().Foreground(p.muted),
		accent:   lipgloss.NewStyle().Foreground(p.accent),
		good:     lipgloss.NewStyle().Foreground(p.good),
		warn:     lipgloss.NewStyle().Foreground(p.warn),
		box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.muted).Padding(0, 1).Foreground(p.fg),
		selected: lipgloss.NewStyle().Bold(true).Foreground(p.bg).Background(p.accent),
		toast:    lipgloss.NewStyle().Bold(true).Foreground(p.bg).Background(p.good).Padding(0, 1),
		modal:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(p.accent).Padding(1, 2).Foreground(p.fg),
	}
}
