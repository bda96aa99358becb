package feed

import (
	"errors"
	"fmt"

	"glance/internal/domain"
)

// ErrDuplicateID is returned when two feed items share an id
var ErrDuplicateID = errors.New("duplicate feed item id")

var defaultItems = []domain.FeedItem{
	domain.TextItem{ID: 1, Title: "Welcome to Google Clone!", Description: "Start your search with voice or image."},
	domain.ImageItem{ID: 2, ImageURL: "https://images.unsplash.com/photo-1503023345310-bd7c1de61c7d?fit=crop&w=800&q=80", Caption: "Explore the world through Google Lens"},
	domain.TextItem{ID: 3, Title: "AI Voice Search", Description: "Tap the mic to speak your query aloud."},
	domain.ImageItem{ID: 4, ImageURL: "https://images.unsplash.com/photo-1557683316-973673baf926?fit=crop&w=800&q=80", Caption: "Instant image crop and upload"},
	domain.TextItem{ID: 5, Title: "Multi-Modal Search", Description: "Combine voice, text, and image for better results."},
	domain.ImageItem{ID: 6, ImageURL: "https://images.pexels.com/photos/3100802/pexels-photo-3100802.jpeg?auto=compress&cs=tinysrgb&w=800", Caption: "Photo-based queries made smarter"},
	domain.TextItem{ID: 7, Title: "React Native Tutorials", Description: "Build beautiful mobile apps in JavaScript."},
	domain.ImageItem{ID: 8, ImageURL: "https://images.pexels.com/photos/1092644/pexels-photo-1092644.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2", Caption: "Learn cross-platform mobile development"},
	domain.TextItem{ID: 9, Title: "Machine Learning in Search", Description: "AI powers the ranking of your results."},
	domain.ImageItem{ID: 10, ImageURL: "https://images.unsplash.com/photo-1526378722484-bd91ca387e72?fit=crop&w=800&q=80", Caption: "Visualize data and results with clarity"},
}

// Default returns the built-in feed. Each call returns a fresh slice.
func Default() []domain.FeedItem {
	items := make([]domain.FeedItem, len(defaultItems))
	copy(items, defaultItems)
	return items
}

// Validate checks that ids are unique and every item is a known variant
func Validate(items []domain.FeedItem) error {
	seen := make(map[int]bool, len(items))
	for i, item := range items {
		switch item.(type) {
		case domain.TextItem, domain.ImageItem:
		default:
			return fmt.Errorf("feed item %d: unsupported type %T", i, item)
		}
		if seen[item.ItemID()] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, item.ItemID())
		}
		seen[item.ItemID()] = true
	}
	return nil
}
