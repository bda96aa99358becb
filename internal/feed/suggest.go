package feed

import (
	"strings"
	"unicode"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"glance/internal/domain"
)

// Suggest proposes the feed word closest to a query that matched nothing.
// It returns false when the query is empty, when it already matches, or when
// no word is within a third of the query's length in edit distance.
func Suggest(query string, items []domain.FeedItem) (string, bool) {
	lowerQuery := strings.ToLower(strings.TrimSpace(query))
	if lowerQuery == "" || len(Filter(lowerQuery, items)) > 0 {
		return "", false
	}

	target := []rune(lowerQuery)
	maxDistance := len(target) / 3
	if maxDistance < 1 {
		maxDistance = 1
	}

	best := ""
	bestDistance := maxDistance + 1
	for _, word := range vocabulary(items) {
		d := levenshtein.DistanceForStrings(target, []rune(word), levenshtein.DefaultOptions)
		if d < bestDistance {
			best, bestDistance = word, d
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}

// vocabulary returns the distinct lower-cased words of all searchable fields, in feed order
func vocabulary(items []domain.FeedItem) []string {
	seen := make(map[string]bool)
	var words []string
	for _, item := range items {
		for _, text := range item.SearchText() {
			for _, w := range strings.FieldsFunc(strings.ToLower(text), isWordBreak) {
				if !seen[w] {
					seen[w] = true
					words = append(words, w)
				}
			}
		}
	}
	return words
}

func isWordBreak(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
}
