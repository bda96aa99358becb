package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of main content.
// The base layer is greyed out; the popup keeps its colors.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	base := strings.Split(ansi.Strip(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	popupLines := strings.Split(styledPopup, "\n")

	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	out := make([]string, len(base))
	for i, line := range base {
		row := i - y
		if row < 0 || row >= len(popupLines) {
			out[i] = gray.Render(line)
			continue
		}
		left, right := splitAround(line, x, modalW)
		out[i] = gray.Render(left) + popupLines[row] + gray.Render(right)
	}
	return strings.Join(out, "\n")
}

// splitAround returns the part of a plain line left of column x (padded to x cells)
// and the part right of column x+w.
func splitAround(line string, x, w int) (string, string) {
	var left, right strings.Builder
	col := 0
	for _, r := range line {
		rw := runewidth.RuneWidth(r)
		switch {
		case col+rw <= x:
			left.WriteRune(r)
		case col >= x+w:
			right.WriteRune(r)
		}
		col += rw
	}
	if pad := x - runewidth.StringWidth(left.String()); pad > 0 {
		left.WriteString(strings.Repeat(" ", pad))
	}
	return left.String(), right.String()
}
