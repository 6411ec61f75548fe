package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the TUI.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Box     lipgloss.Style
	Help    lipgloss.Style
	ErrLine lipgloss.Style
	OkLine  lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		ErrLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")),
		OkLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")),
	}
}
