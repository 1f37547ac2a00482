package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("#8BC34A")
	muted   = lipgloss.Color("#6b7280")
	danger  = lipgloss.Color("#e53935")
	warning = lipgloss.Color("#FFC107")
)

// Styles groups the lipgloss styles used by View.
type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Label     lipgloss.Style
	Unit      lipgloss.Style
	Result    lipgloss.Style
	Error     lipgloss.Style
	Warn      lipgloss.Style
	Help      lipgloss.Style
	Frame     lipgloss.Style
}

// DefaultStyles returns the converter's palette.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(muted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(accent),
		Label:     lipgloss.NewStyle().Foreground(muted).Width(6),
		Unit:      lipgloss.NewStyle().Bold(true),
		Result:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Error:     lipgloss.NewStyle().Foreground(danger),
		Warn:      lipgloss.NewStyle().Foreground(warning),
		Help:      lipgloss.NewStyle().Foreground(muted),
		Frame:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
