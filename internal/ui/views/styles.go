package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	SearchBar     lipgloss.Style
	SearchFocused lipgloss.Style
	Shortcut      lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	CardTitle     lipgloss.Style
	ImageFrame    lipgloss.Style
	Caption       lipgloss.Style
	Product       lipgloss.Style
	ProductTitle  lipgloss.Style
	ProductSource lipgloss.Style
	Price         lipgloss.Style
	Button        lipgloss.Style
	Popup         lipgloss.Style
	VoiceBox      lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	Suggestion    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33")),
		Dim: lipgloss.NewStyle().Faint(true),
		SearchBar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1),
		Shortcut: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			MarginRight(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1),
		CardTitle:  lipgloss.NewStyle().Bold(true),
		ImageFrame: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Caption:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Product: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		ProductTitle:  lipgloss.NewStyle().Bold(true),
		ProductSource: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Price:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("33")).
			Padding(0, 2).
			MarginRight(2),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 3),
		VoiceBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(1, 4).
			Align(lipgloss.Center),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Suggestion:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// StoreColor returns the accent color used for a product's store name
func StoreColor(store string) string {
	switch store {
	case "Amazon":
		return "214" // orange
	case "Myntra":
		return "205" // pink
	default:
		return "241"
	}
}
