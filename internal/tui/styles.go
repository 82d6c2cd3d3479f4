// Package tui renders the web development questionnaire in the terminal.
package tui

import "github.com/charmbracelet/lipgloss"

// Brand colours of the questionnaire page
var (
	Accent   = lipgloss.Color("#87CEEB")
	Title    = lipgloss.Color("#1a4a5e")
	Muted    = lipgloss.Color("#9ca3af")
	Danger   = lipgloss.Color("#e53935")
	Positive = lipgloss.Color("#8BC34A")
)

// Styles holds the lipgloss styles used by the model
type Styles struct {
	Brand    lipgloss.Style
	Heading  lipgloss.Style
	Intro    lipgloss.Style
	Counter  lipgloss.Style
	Card     lipgloss.Style
	Prompt   lipgloss.Style
	Option   lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Help     lipgloss.Style
	Notice   lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the styles in the brand palette
func DefaultStyles() Styles {
	return Styles{
		Brand:    lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(Title).Padding(0, 1),
		Intro:    lipgloss.NewStyle().Foreground(Muted),
		Counter:  lipgloss.NewStyle().Foreground(Muted),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Accent).Padding(1, 2),
		Prompt:   lipgloss.NewStyle().Bold(true),
		Option:   lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Foreground(Accent).Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(Accent),
		Button:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(Accent).Padding(0, 2),
		Disabled: lipgloss.NewStyle().Foreground(Muted).Padding(0, 2),
		Help:     lipgloss.NewStyle().Foreground(Muted),
		Notice:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(Positive).Padding(1, 2),
		Error:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(Danger).Padding(1, 2),
	}
}
