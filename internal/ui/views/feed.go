package views

import (
	"net/url"
	"path"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"glance/internal/domain"
)

// FeedRenderer handles rendering of feed cards
type FeedRenderer struct {
	styles *Styles
}

// NewFeedRenderer creates a new feed renderer
func NewFeedRenderer(styles *Styles) *FeedRenderer {
	return &FeedRenderer{
		styles: styles,
	}
}

// RenderItem renders one feed card. width is the outer width of the card.
func (f *FeedRenderer) RenderItem(item domain.FeedItem, isSelected bool, query string, width int) string {
	style := f.styles.Card
	if isSelected {
		style = f.styles.CardSelected
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	var body string
	switch it := item.(type) {
	case domain.TextItem:
		title := highlightMatch(it.Title, query, f.styles.Highlight.Inherit(f.styles.CardTitle), f.styles.CardTitle)
		desc := highlightMatch(it.Description, query, f.styles.Highlight, f.styles.Dim)
		body = lipgloss.JoinVertical(lipgloss.Left, title, desc)
	case domain.ImageItem:
		frame := f.styles.ImageFrame.Render("▣ " + imageLabel(it.ImageURL))
		caption := highlightMatch(it.Caption, query, f.styles.Highlight, f.styles.Caption)
		body = lipgloss.JoinVertical(lipgloss.Left, frame, caption)
	default:
		return ""
	}

	return style.Width(inner + style.GetHorizontalPadding()).Render(body)
}

// imageLabel shortens an image URL to host/basename for display
func imageLabel(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return u.Host
	}
	return u.Host + "/" + base
}

// highlightMatch highlights the first case-insensitive occurrence of query in text
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	if query == "" {
		return normalStyle.Render(text)
	}
	runes := []rune(text)
	lowerText := lowerRunes(runes)
	lowerQuery := lowerRunes([]rune(query))

	index := indexRunes(lowerText, lowerQuery)
	if index == -1 {
		return normalStyle.Render(text)
	}

	before := string(runes[:index])
	match := string(runes[index : index+len(lowerQuery)])
	after := string(runes[index+len(lowerQuery):])

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func indexRunes(s, sub []rune) int {
	if len(sub) == 0 || len(sub) > len(s) {
		return -1
	}
outer:
	for i := 0; i+len(sub) <= len(s); i++ {
		for j := range sub {
			if s[i+j] != sub[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}
