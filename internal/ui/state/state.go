package state

import (
	"glance/internal/domain"
	"glance/internal/feed"
	"glance/internal/ui/views"
)

// AppState contains all the application state
type AppState struct {
	// Feed data
	Items      []domain.FeedItem // full feed, never mutated
	Query      string            // current search text
	Visible    []domain.FeedItem // Items filtered by Query
	Suggestion string            // "did you mean" word when nothing matches

	// Selection state
	SelectedIndex  int // index into Visible
	ViewportOffset int // first visible card
	ViewportHeight int // cards that fit on screen

	// Overlays
	ShowHelp        bool
	ShowVoice       bool
	VoiceDots       int
	ShowImageSource bool

	// Lens screen
	Image           *domain.ImageRef
	Products        []domain.Product
	Searching       bool
	SelectedProduct int
	ProductRow      int // first visible grid row
	ProductRows     int // grid rows that fit on screen

	StatusMessage string
	StatusLevel   views.StatusLevel
}

// NewAppState creates a new application state showing every item
func NewAppState(items []domain.FeedItem) *AppState {
	s := &AppState{
		Items:          items,
		ViewportHeight: 4, // Updated on first WindowSizeMsg
		ProductRows:    3,
	}
	s.SetQuery("")
	return s
}

// SetQuery stores the query and recomputes the visible items.
// Selection jumps back to the first result.
func (s *AppState) SetQuery(query string) {
	s.Query = query
	s.Visible = feed.Filter(query, s.Items)
	s.Suggestion = ""
	if len(s.Visible) == 0 {
		if word, ok := feed.Suggest(query, s.Items); ok {
			s.Suggestion = word
		}
	}
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}

// SelectedItem returns the item under the cursor, if any
func (s *AppState) SelectedItem() (domain.FeedItem, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Visible) {
		return nil, false
	}
	return s.Visible[s.SelectedIndex], true
}

// SetStatus sets the status bar message
func (s *AppState) SetStatus(msg string, level views.StatusLevel) {
	s.StatusMessage = msg
	s.StatusLevel = level
}

// ClearStatus clears the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusLevel = views.StatusInfo
}

// StartLensSearch records the picked image and clears previous results
func (s *AppState) StartLensSearch(img domain.ImageRef) {
	s.Image = &img
	s.Products = nil
	s.Searching = true
	s.SelectedProduct = 0
	s.ProductRow = 0
}

// SetProducts stores the results for the current image
func (s *AppState) SetProducts(products []domain.Product) {
	s.Products = products
	s.Searching = false
	s.SelectedProduct = 0
	s.ProductRow = 0
}

// ClearLens forgets the image and its results
func (s *AppState) ClearLens() {
	s.Image = nil
	s.Products = nil
	s.Searching = false
	s.SelectedProduct = 0
	s.ProductRow = 0
}
