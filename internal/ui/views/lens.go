package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"glance/internal/domain"
)

// LensColumns is the number of product cards per grid row
const LensColumns = 2

// LensRenderer handles rendering of the image results screen
type LensRenderer struct {
	styles *Styles
}

// NewLensRenderer creates a new lens renderer
func NewLensRenderer(styles *Styles) *LensRenderer {
	return &LensRenderer{
		styles: styles,
	}
}

// RenderButtons renders the Camera and Gallery buttons
func (l *LensRenderer) RenderButtons() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		l.styles.Button.Render("Camera (c)"),
		l.styles.Button.Render("Gallery (g)"),
	)
}

// RenderImage renders the reference of the image being searched
func (l *LensRenderer) RenderImage(img *domain.ImageRef, width int) string {
	if img == nil {
		return l.styles.Dim.Render("No image selected. Pick one from the camera or gallery.")
	}
	lines := []string{
		l.styles.ImageFrame.Render("▣ " + img.Path),
		l.styles.Dim.Render(fmt.Sprintf("%s · %dx%d", img.Source, img.Width, img.Height)),
	}
	return l.styles.Card.Width(width - l.styles.Card.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

// RenderProduct renders one product card of the given outer width
func (l *LensRenderer) RenderProduct(p domain.Product, isSelected bool, width int) string {
	style := l.styles.Product
	if isSelected {
		style = l.styles.CardSelected
	}
	source := l.styles.ProductSource.Foreground(lipgloss.Color(StoreColor(p.Source))).Render(p.Source)
	body := lipgloss.JoinVertical(lipgloss.Left,
		l.styles.ProductTitle.Render(p.Title),
		source,
		l.styles.Price.Render(p.Price),
	)
	inner := width - style.GetHorizontalBorderSize()
	if inner < 8 {
		inner = 8
	}
	return style.Width(inner).Render(body)
}

// RenderGrid lays products out in LensColumns columns.
// Rows before firstRow are skipped and at most maxRows rows are drawn.
func (l *LensRenderer) RenderGrid(products []domain.Product, selected, width, firstRow, maxRows int) string {
	if len(products) == 0 {
		return l.styles.Dim.Render("No visual matches.")
	}
	colWidth := width / LensColumns
	if colWidth < 12 {
		colWidth = 12
	}

	var rows []string
	totalRows := (len(products) + LensColumns - 1) / LensColumns
	for row := firstRow; row < totalRows; row++ {
		if maxRows > 0 && len(rows) >= maxRows {
			break
		}
		var cells []string
		for col := 0; col < LensColumns; col++ {
			i := row*LensColumns + col
			if i >= len(products) {
				break
			}
			cells = append(cells, l.RenderProduct(products[i], i == selected, colWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	if firstRow > 0 {
		rows = append([]string{l.styles.Scroll.Render(fmt.Sprintf("↑ %d more rows above ↑", firstRow))}, rows...)
	}
	if below := totalRows - firstRow - maxRows; maxRows > 0 && below > 0 {
		rows = append(rows, l.styles.Scroll.Render(fmt.Sprintf("↓ %d more rows below ↓", below)))
	}
	return strings.Join(rows, "\n")
}
