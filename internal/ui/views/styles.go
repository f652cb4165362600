package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	SearchBar     lipgloss.Style
	Stats         lipgloss.Style
	Suggestion    lipgloss.Style
	SuggestionHit lipgloss.Style
	CardTitle     lipgloss.Style
	CardSubtitle  lipgloss.Style
	CardBody      lipgloss.Style
	CardMarker    lipgloss.Style
	Match         lipgloss.Style
	DocBox        lipgloss.Style
	DocTitle      lipgloss.Style
	DocLabel      lipgloss.Style
	Rule          lipgloss.Style
	InfoBox       lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		SearchBar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Stats:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Suggestion:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		SuggestionHit: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Underline(true),
		CardTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		CardSubtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		CardBody:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CardMarker:    lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Match:         lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		DocBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		DocTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		DocLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Rule:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
	}
}
