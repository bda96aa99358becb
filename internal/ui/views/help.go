package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Navigation", []helpEntry{
		{"↑/↓, j/k", "Move between cards"},
		{"PgUp/PgDn", "Page up/down"},
		{"g/G", "Go to top/bottom"},
	}},
	{"Search", []helpEntry{
		{"/, i", "Edit the search query"},
		{"Enter", "Keep the query and leave the search bar"},
		{"Esc", "Clear the query and leave the search bar"},
		{"x", "Clear the query"},
	}},
	{"Voice", []helpEntry{
		{"m", "Start voice search"},
		{"Esc", "Cancel listening"},
	}},
	{"Google Lens", []helpEntry{
		{"c", "Choose an image source"},
		{"c / g", "Camera / gallery (in the popup and on the results screen)"},
		{"b, Esc", "Back to the home screen"},
	}},
	{"Other", []helpEntry{
		{"?", "Toggle this help"},
		{"q", "Quit"},
		{"Ctrl+C", "Quit from anywhere"},
	}},
}

// RenderHelpContent renders the key reference
func RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("33"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Glance Help"))
	help.WriteString("\n")

	for _, section := range helpSections {
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(e.keys), descStyle.Render(e.desc)))
		}
	}

	return strings.TrimRight(help.String(), "\n")
}
