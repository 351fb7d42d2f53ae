package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title      lipgloss.Style
	Tagline    lipgloss.Style
	Breadcrumb lipgloss.Style
	Heading    lipgloss.Style
	Body       lipgloss.Style
	Dim        lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
	Main       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Tagline:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Breadcrumb: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Heading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Body:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:        lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:  lipgloss.NewStyle().Faint(true),
		Main:  lipgloss.NewStyle().Padding(1, 2),
	}
}
