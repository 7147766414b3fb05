package tui

import "github.com/charmbracelet/lipgloss"

// Styles bundles every style the checklist view uses. Two palettes exist,
// selected by the persisted theme preference.
type Styles struct {
	Title       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	GroupHeader lipgloss.Style
	Cursor      lipgloss.Style
	Checked     lipgloss.Style
	Unchecked   lipgloss.Style
	Subtle      lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
	Count       lipgloss.Style
}

// NewStyles returns the palette for the given theme; anything that is not
// "dark" renders the light palette.
func NewStyles(theme string) Styles {
	if theme == "dark" {
		return Styles{
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B79CFF")).MarginBottom(1),
			TabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7D56F4")).Padding(0, 1),
			TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).Padding(0, 1),
			GroupHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B79CFF")),
			Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("#B79CFF")).Bold(true),
			Checked:     lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
			Unchecked:   lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
			Subtle:      lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")),
			Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).MarginTop(1),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true),
			Count:       lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		}
	}

	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginBottom(1),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7D56F4")).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")).Padding(0, 1),
		GroupHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
		Checked:     lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Unchecked:   lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		Subtle:      lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("#CC0000")).Bold(true),
		Count:       lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
	}
}
