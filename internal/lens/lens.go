// Package lens provides the image capture and image search collaborators.
// Only mock implementations ship; real backends plug in through Picker and Searcher.
package lens

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"glance/internal/domain"
)

// Picker failures
var (
	ErrPickerCancelled  = errors.New("image selection cancelled")
	ErrPermissionDenied = errors.New("permission denied")
)

// PickOptions controls the size and cropping of a picked image
type PickOptions struct {
	Width  int
	Height int
	Crop   bool
}

// Picker obtains an image from the camera or the gallery
type Picker interface {
	PickImage(ctx context.Context, source domain.ImageSource, opts PickOptions) (domain.ImageRef, error)
}

// Searcher looks up products similar to an image
type Searcher interface {
	Search(ctx context.Context, image domain.ImageRef) ([]domain.Product, error)
}

// MockPicker returns a synthetic image for every request.
// Deny lists sources that fail with ErrPermissionDenied.
type MockPicker struct {
	Dir  string
	Deny map[domain.ImageSource]bool
}

// NewMockPicker creates a picker writing nothing, only naming images under dir
func NewMockPicker(dir string) *MockPicker {
	return &MockPicker{Dir: dir, Deny: map[domain.ImageSource]bool{}}
}

func (p *MockPicker) PickImage(ctx context.Context, source domain.ImageSource, opts PickOptions) (domain.ImageRef, error) {
	if err := ctx.Err(); err != nil {
		return domain.ImageRef{}, fmt.Errorf("%w: %v", ErrPickerCancelled, err)
	}

	switch source {
	case domain.SourceCamera, domain.SourceGallery:
	default:
		return domain.ImageRef{}, fmt.Errorf("unknown image source %q", source)
	}

	if p.Deny[source] {
		return domain.ImageRef{}, fmt.Errorf("%s: %w", source, ErrPermissionDenied)
	}

	id := uuid.NewString()
	suffix := ""
	if opts.Crop {
		suffix = "-cropped"
	}
	return domain.ImageRef{
		ID:     id,
		Path:   filepath.Join(p.Dir, fmt.Sprintf("%s-%s%s.jpg", source, id, suffix)),
		Source: source,
		Width:  opts.Width,
		Height: opts.Height,
	}, nil
}

const (
	productImageEven = "https://images.unsplash.com/photo-1523275335684-37898b6baf30?fit=crop&w=800&q=80"
	productImageOdd  = "https://images.unsplash.com/photo-1533236897111-3e94666b2edf?fit=crop&w=800&q=80"
)

// MockSearcher answers every image with the same product list
type MockSearcher struct {
	Count int
}

// NewMockSearcher creates a searcher returning ten products
func NewMockSearcher() *MockSearcher {
	return &MockSearcher{Count: 10}
}

func (s *MockSearcher) Search(ctx context.Context, image domain.ImageRef) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if image.ID == "" {
		return nil, errors.New("image reference has no id")
	}
	return MockProducts(s.Count), nil
}

// MockProducts builds n placeholder products alternating between two stores.
// A negative n yields no products.
func MockProducts(n int) []domain.Product {
	if n < 0 {
		n = 0
	}
	products := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		p := domain.Product{
			ID:    i + 1,
			Title: fmt.Sprintf("Stylish Top %d", i+1),
			Price: fmt.Sprintf("₹%d", 599+i*60),
		}
		if i%2 == 0 {
			p.ImageURL = productImageEven
			p.Source = "Amazon"
		} else {
			p.ImageURL = productImageOdd
			p.Source = "Myntra"
		}
		products = append(products, p)
	}
	return products
}
