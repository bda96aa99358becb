package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"glance/internal/domain"
)

// StatusLevel picks the color of the status line
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// CardHeight is the number of terminal lines one feed card occupies
const CardHeight = 4

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Title     string
	Shortcuts []string

	// Home screen
	SearchInput    string // rendered text input while editing
	Query          string
	Editing        bool
	Items          []domain.FeedItem
	TotalItems     int
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int // in cards
	Suggestion     string

	// Lens screen
	ShowLens        bool
	Image           *domain.ImageRef
	Products        []domain.Product
	Searching       bool
	Spinner         string
	SelectedProduct int
	ProductRow      int
	ProductRows     int // rows that fit on screen

	// Overlays
	ShowVoice       bool
	VoiceDots       int
	ShowImageSource bool
	ShowHelp        bool
	HelpContent     string

	StatusMessage string
	StatusLevel   StatusLevel

	HelpModel help.Model
	KeyMap    help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	feedRender  *FeedRenderer
	lensRender  *LensRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		feedRender:  NewFeedRenderer(styles),
		lensRender:  NewLensRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	height := state.Height
	if height <= 0 {
		height = 24
	}
	contentWidth := width - r.styles.Main.GetHorizontalFrameSize()

	var body string
	if state.ShowLens {
		body = r.renderLens(state, contentWidth)
	} else {
		body = r.renderHome(state, contentWidth)
	}

	content := &strings.Builder{}
	content.WriteString(body)

	// Status line and help footer are pinned to the bottom
	footer := r.renderFooter(state, contentWidth)
	currentLines := lipgloss.Height(body)
	availableLines := height - r.styles.Main.GetVerticalFrameSize()
	if padding := availableLines - currentLines - lipgloss.Height(footer); padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	finalContent := r.styles.Main.MaxHeight(height).Render(content.String())

	switch {
	case state.ShowHelp && state.HelpContent != "":
		return r.popupRender.RenderPopupOverlay(finalContent, state.HelpContent, height, width, r.styles.Popup)
	case state.ShowVoice:
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderVoice(state.VoiceDots), height, width, r.styles.VoiceBox)
	case state.ShowImageSource:
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderImageSource(), height, width, r.styles.Popup)
	}
	return finalContent
}

func (r *Renderer) renderHome(state ViewState, width int) string {
	var lines []string

	title := state.Title
	if title == "" {
		title = "Google"
	}
	lines = append(lines, r.styles.Title.Render(title))
	lines = append(lines, r.renderSearchBar(state, width))

	if len(state.Shortcuts) > 0 {
		var chips []string
		for _, s := range state.Shortcuts {
			chips = append(chips, r.styles.Shortcut.Render(s))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	}
	lines = append(lines, "")

	lines = append(lines, r.renderFeed(state, width))
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderSearchBar(state ViewState, width int) string {
	style := r.styles.SearchBar
	text := state.Query
	if state.Editing {
		style = r.styles.SearchFocused
		text = state.SearchInput
	} else if text == "" {
		text = r.styles.Dim.Render("Search")
	}

	icons := r.styles.Dim.Render("🎤 m  📷 c")
	inner := width - style.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(text) - lipgloss.Width(icons)
	if gap < 1 {
		gap = 1
	}
	return style.Render(text + strings.Repeat(" ", gap) + icons)
}

// renderFeed renders the visible window of feed cards
func (r *Renderer) renderFeed(state ViewState, width int) string {
	if len(state.Items) == 0 {
		lines := []string{r.styles.Dim.Render(fmt.Sprintf("No results for %q", state.Query))}
		if state.Suggestion != "" {
			lines = append(lines, r.styles.Suggestion.Render(fmt.Sprintf("Did you mean: %s", state.Suggestion)))
		}
		return strings.Join(lines, "\n")
	}

	start := state.ViewportOffset
	if start < 0 || start >= len(state.Items) {
		start = 0
	}
	end := len(state.Items)
	if state.ViewportHeight > 0 && start+state.ViewportHeight < end {
		end = start + state.ViewportHeight
	}

	var lines []string
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.feedRender.RenderItem(state.Items[i], i == state.SelectedIndex, state.Query, width))
	}
	if below := len(state.Items) - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderLens(state ViewState, width int) string {
	var lines []string
	lines = append(lines, r.styles.Title.Render("Google Lens"))
	lines = append(lines, r.lensRender.RenderButtons())
	lines = append(lines, "")
	lines = append(lines, r.lensRender.RenderImage(state.Image, width))
	lines = append(lines, "")

	switch {
	case state.Searching:
		lines = append(lines, fmt.Sprintf("%s Searching for visual matches...", state.Spinner))
	case state.Image != nil:
		lines = append(lines, r.styles.CardTitle.Render("Visual matches"))
		lines = append(lines, r.lensRender.RenderGrid(state.Products, state.SelectedProduct, width, state.ProductRow, state.ProductRows))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderFooter(state ViewState, width int) string {
	var lines []string
	if state.StatusMessage != "" {
		lines = append(lines, r.statusStyle(state.StatusLevel).Render(state.StatusMessage))
	} else if !state.ShowLens {
		lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("%d of %d results", len(state.Items), state.TotalItems)))
	}
	if state.KeyMap != nil {
		hm := state.HelpModel
		hm.Width = width
		lines = append(lines, hm.View(state.KeyMap))
	} else {
		lines = append(lines, r.styles.Help.Render("Press ? for help"))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) statusStyle(level StatusLevel) lipgloss.Style {
	switch level {
	case StatusError:
		return r.styles.StatusError
	case StatusWarning:
		return r.styles.StatusWarning
	case StatusSuccess:
		return r.styles.StatusSuccess
	default:
		return r.styles.StatusInfo
	}
}

func (r *Renderer) renderVoice(dots int) string {
	mic := lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render("🎤")
	listening := "Listening" + strings.Repeat(".", dots%4)
	return strings.Join([]string{
		mic,
		"",
		r.styles.CardTitle.Render("Speak now"),
		r.styles.Dim.Render(fmt.Sprintf("%-12s", listening)),
		"",
		r.styles.Help.Render("esc to cancel"),
	}, "\n")
}

func (r *Renderer) renderImageSource() string {
	return strings.Join([]string{
		r.styles.CardTitle.Render("Choose Image Source"),
		"",
		r.styles.Button.Render("Camera (c)") + r.styles.Button.Render("Gallery (g)"),
		"",
		r.styles.Help.Render("esc to cancel"),
	}, "\n")
}
