package lens

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glance/internal/domain"
)

func TestMockPickerReturnsImage(t *testing.T) {
	p := NewMockPicker("/tmp/glance")

	img, err := p.PickImage(context.Background(), domain.SourceCamera, PickOptions{Width: 300, Height: 400, Crop: true})
	require.NoError(t, err)

	_, err = uuid.Parse(img.ID)
	require.NoError(t, err, "image id should be a uuid")
	assert.Equal(t, domain.SourceCamera, img.Source)
	assert.Equal(t, 300, img.Width)
	assert.Equal(t, 400, img.Height)
	assert.Equal(t, "/tmp/glance", filepath.Dir(img.Path))
	assert.True(t, strings.HasSuffix(img.Path, "-cropped.jpg"), img.Path)

	other, err := p.PickImage(context.Background(), domain.SourceGallery, PickOptions{Width: 1, Height: 1})
	require.NoError(t, err)
	assert.NotEqual(t, img.ID, other.ID)
	assert.False(t, strings.HasSuffix(other.Path, "-cropped.jpg"))
}

func TestMockPickerErrors(t *testing.T) {
	p := NewMockPicker("")
	p.Deny[domain.SourceCamera] = true

	_, err := p.PickImage(context.Background(), domain.SourceCamera, PickOptions{})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = p.PickImage(context.Background(), domain.ImageSource("scanner"), PickOptions{})
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.PickImage(ctx, domain.SourceGallery, PickOptions{})
	assert.ErrorIs(t, err, ErrPickerCancelled)
}

func TestMockProducts(t *testing.T) {
	products := MockProducts(10)
	require.Len(t, products, 10)

	assert.Equal(t, domain.Product{ID: 1, ImageURL: productImageEven, Title: "Stylish Top 1", Source: "Amazon", Price: "₹599"}, products[0])
	assert.Equal(t, domain.Product{ID: 2, ImageURL: productImageOdd, Title: "Stylish Top 2", Source: "Myntra", Price: "₹659"}, products[1])
	assert.Equal(t, "₹1139", products[9].Price)
}

func TestMockSearcher(t *testing.T) {
	s := NewMockSearcher()

	results, err := s.Search(context.Background(), domain.ImageRef{ID: "abc"})
	require.NoError(t, err)
	assert.Len(t, results, 10)

	_, err = s.Search(context.Background(), domain.ImageRef{})
	require.Error(t, err)
}

func TestMockSearcherNegativeCount(t *testing.T) {
	assert.Empty(t, MockProducts(-3))

	s := &MockSearcher{Count: -1}
	results, err := s.Search(context.Background(), domain.ImageRef{ID: "abc"})
	require.NoError(t, err)
	assert.Empty(t, results)
}
