package feed

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"glance/internal/domain"
)

// fileItem is the on-disk shape of one feed entry
type fileItem struct {
	ID          int    `toml:"id"`
	Kind        string `toml:"kind"`
	Title       string `toml:"title,omitempty"`
	Description string `toml:"description,omitempty"`
	ImageURL    string `toml:"image_url,omitempty"`
	Caption     string `toml:"caption,omitempty"`
}

type fileFeed struct {
	Items []fileItem `toml:"items"`
}

// LoadFile reads a TOML feed file made of [[items]] tables
func LoadFile(path string) ([]domain.FeedItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML feed data
func Parse(data []byte) ([]domain.FeedItem, error) {
	var ff fileFeed
	if err := toml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]domain.FeedItem, 0, len(ff.Items))
	for i, fi := range ff.Items {
		switch domain.ItemKind(fi.Kind) {
		case domain.KindText:
			items = append(items, domain.TextItem{ID: fi.ID, Title: fi.Title, Description: fi.Description})
		case domain.KindImage:
			items = append(items, domain.ImageItem{ID: fi.ID, ImageURL: fi.ImageURL, Caption: fi.Caption})
		default:
			return nil, fmt.Errorf("feed item %d: unknown kind %q", i, fi.Kind)
		}
	}

	if err := Validate(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Encode renders items in the format Parse accepts
func Encode(items []domain.FeedItem) ([]byte, error) {
	ff := fileFeed{Items: make([]fileItem, 0, len(items))}
	for _, item := range items {
		switch it := item.(type) {
		case domain.TextItem:
			ff.Items = append(ff.Items, fileItem{ID: it.ID, Kind: string(domain.KindText), Title: it.Title, Description: it.Description})
		case domain.ImageItem:
			ff.Items = append(ff.Items, fileItem{ID: it.ID, Kind: string(domain.KindImage), ImageURL: it.ImageURL, Caption: it.Caption})
		default:
			return nil, fmt.Errorf("unsupported feed item %T", item)
		}
	}
	return toml.Marshal(ff)
}
