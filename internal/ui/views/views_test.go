package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glance/internal/domain"
	"glance/internal/feed"
	"glance/internal/lens"
)

func TestHighlightMatchKeepsText(t *testing.T) {
	hl := lipgloss.NewStyle().Bold(true)
	plain := lipgloss.NewStyle()

	tests := []struct {
		name  string
		text  string
		query string
	}{
		{"no query", "Google Lens", ""},
		{"ascii", "Explore the world through Google Lens", "lens"},
		{"no match", "AI Voice Search", "camera"},
		{"multibyte before match", "Café Über Lens", "über"},
		{"query longer than text", "AI", "artificial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := highlightMatch(tt.text, tt.query, hl, plain)
			assert.Equal(t, tt.text, ansi.Strip(out))
		})
	}
}

func TestIndexRunes(t *testing.T) {
	assert.Equal(t, 5, indexRunes([]rune("café über"), []rune("über")))
	assert.Equal(t, -1, indexRunes([]rune("lens"), []rune("")))
	assert.Equal(t, -1, indexRunes([]rune("le"), []rune("lens")))
	assert.Equal(t, 0, indexRunes([]rune("lens"), []rune("le")))
}

func TestImageLabel(t *testing.T) {
	assert.Equal(t, "images.unsplash.com/photo-1", imageLabel("https://images.unsplash.com/photo-1?fit=crop&w=800"))
	assert.Equal(t, "example.com", imageLabel("https://example.com/"))
	assert.Equal(t, "not a url", imageLabel("not a url"))
}

func TestSplitAround(t *testing.T) {
	left, right := splitAround("abcdefghij", 2, 3)
	assert.Equal(t, "ab", left)
	assert.Equal(t, "fghij", right)

	// Short lines are padded up to the popup column
	left, right = splitAround("ab", 5, 2)
	assert.Equal(t, "ab   ", left)
	assert.Equal(t, "", right)

	// Wide runes never straddle the popup edge
	left, _ = splitAround("世界世界", 3, 2)
	assert.Equal(t, "世 ", left)
}

func TestPopupOverlayCentersPopup(t *testing.T) {
	pr := NewPopupRenderer(NewStyles())
	base := strings.Repeat(strings.Repeat(".", 20)+"\n", 9) + strings.Repeat(".", 20)

	out := pr.RenderPopupOverlay(base, "XX", 10, 20, lipgloss.NewStyle())
	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, strings.Repeat(".", 9)+"XX"+strings.Repeat(".", 9), lines[4])
	assert.Equal(t, strings.Repeat(".", 20), lines[0])
}

func TestRenderItemVariants(t *testing.T) {
	fr := NewFeedRenderer(NewStyles())

	text := ansi.Strip(fr.RenderItem(domain.TextItem{ID: 1, Title: "AI Voice Search", Description: "Tap the mic"}, false, "", 60))
	assert.Contains(t, text, "AI Voice Search")
	assert.Contains(t, text, "Tap the mic")

	img := ansi.Strip(fr.RenderItem(domain.ImageItem{ID: 2, ImageURL: "https://example.com/a.png", Caption: "A gopher"}, true, "gopher", 60))
	assert.Contains(t, img, "example.com/a.png")
	assert.Contains(t, img, "A gopher")
}

func TestRenderGridScrollIndicators(t *testing.T) {
	lr := NewLensRenderer(NewStyles())

	out := ansi.Strip(lr.RenderGrid(lens.MockProducts(10), 4, 80, 1, 2))
	assert.Contains(t, out, "↑ 1 more rows above ↑")
	assert.Contains(t, out, "↓ 2 more rows below ↓")
	assert.Contains(t, out, "Stylish Top 3")
	assert.NotContains(t, out, "Stylish Top 7")

	assert.Contains(t, lr.RenderGrid(nil, 0, 80, 0, 3), "No visual matches.")
}

func TestRenderHomeAndEmptyState(t *testing.T) {
	r := NewRenderer()
	state := ViewState{
		Width:          100,
		Height:         40,
		Title:          "Google",
		Shortcuts:      []string{"Search", "Translate"},
		Items:          feed.Default()[:3],
		TotalItems:     10,
		ViewportHeight: 5,
	}

	out := ansi.Strip(r.Render(state))
	assert.Contains(t, out, "Translate")
	assert.Contains(t, out, "3 of 10 results")

	state.Items = nil
	state.Query = "lense"
	state.Suggestion = "lens"
	out = ansi.Strip(r.Render(state))
	assert.Contains(t, out, `No results for "lense"`)
	assert.Contains(t, out, "Did you mean: lens")
}

func TestStatusReplacesResultCount(t *testing.T) {
	r := NewRenderer()
	out := ansi.Strip(r.Render(ViewState{
		Width:          100,
		Height:         30,
		Items:          feed.Default(),
		TotalItems:     10,
		ViewportHeight: 3,
		StatusMessage:  "Image search failed",
		StatusLevel:    StatusError,
	}))
	assert.Contains(t, out, "Image search failed")
	assert.NotContains(t, out, "10 of 10 results")
}
