// Package feed holds the home feed data and the query filter applied to it.
package feed

import (
	"strings"

	"glance/internal/domain"
)

// Filter returns the items matching query, in their original order.
// An empty query matches every item. The input slice is never modified.
func Filter(query string, items []domain.FeedItem) []domain.FeedItem {
	lowerQuery := strings.ToLower(query)

	filtered := make([]domain.FeedItem, 0, len(items))
	for _, item := range items {
		if matchesLower(item, lowerQuery) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Matches reports whether a single item matches query
func Matches(item domain.FeedItem, query string) bool {
	return matchesLower(item, strings.ToLower(query))
}

func matchesLower(item domain.FeedItem, lowerQuery string) bool {
	switch it := item.(type) {
	case domain.TextItem:
		return strings.Contains(strings.ToLower(it.Title), lowerQuery) ||
			strings.Contains(strings.ToLower(it.Description), lowerQuery)
	case domain.ImageItem:
		return strings.Contains(strings.ToLower(it.Caption), lowerQuery)
	default:
		return false
	}
}
