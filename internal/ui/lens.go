package ui

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"glance/internal/domain"
	"glance/internal/eventbus"
	"glance/internal/lens"
	"glance/internal/ui/views"
)

// pickImage asks the picker for an image from source
func (m *Model) pickImage(source domain.ImageSource) tea.Cmd {
	m.state.ShowImageSource = false

	ctx := m.ctx
	picker := m.picker
	opts := lens.PickOptions{
		Width:  m.config.Picker.Width,
		Height: m.config.Picker.Height,
		Crop:   m.config.Picker.Crop,
	}
	return func() tea.Msg {
		img, err := picker.PickImage(ctx, source, opts)
		return imagePickedMsg{source: source, image: img, err: err}
	}
}

// searchProducts runs the image search for img
func (m *Model) searchProducts(img domain.ImageRef) tea.Cmd {
	ctx := m.ctx
	searcher := m.searcher
	return func() tea.Msg {
		products, err := searcher.Search(ctx, img)
		return productsMsg{imageID: img.ID, products: products, err: err}
	}
}

func (m *Model) handleImagePicked(msg imagePickedMsg) tea.Cmd {
	if msg.err != nil {
		log.Printf("Image pick from %s failed: %v", msg.source, msg.err)
		m.publish(eventbus.ErrorEvent{Message: fmt.Sprintf("pick image from %s", msg.source), Err: msg.err})
		switch {
		case errors.Is(msg.err, lens.ErrPickerCancelled):
			return m.setStatus("Image selection cancelled", views.StatusInfo)
		case errors.Is(msg.err, lens.ErrPermissionDenied):
			return m.setStatus(fmt.Sprintf("Permission to use the %s was denied", msg.source), views.StatusWarning)
		default:
			return m.setStatus(fmt.Sprintf("Could not open the %s", msg.source), views.StatusError)
		}
	}

	log.Printf("Picked %s image %s", msg.source, msg.image.Path)
	m.publish(eventbus.ImagePickedEvent{Image: msg.image})
	m.navigateTo(ScreenLens, &msg.image)
	return tea.Batch(m.searchProducts(msg.image), m.spinner.Tick)
}

func (m *Model) handleProducts(msg productsMsg) tea.Cmd {
	if m.screen != ScreenLens || m.state.Image == nil || m.state.Image.ID != msg.imageID {
		log.Printf("Ignoring results for stale image %s", msg.imageID)
		return nil
	}
	if msg.err != nil {
		log.Printf("Image search for %s failed: %v", msg.imageID, msg.err)
		m.state.SetProducts(nil)
		m.publish(eventbus.ErrorEvent{Message: "image search", Err: msg.err})
		return m.setStatus("Image search failed", views.StatusError)
	}

	m.state.SetProducts(msg.products)
	m.publish(eventbus.ImageSearchCompletedEvent{ImageID: msg.imageID, Results: len(msg.products)})
	return nil
}

// moveProduct moves the product cursor; up and down step a whole grid row
func (m *Model) moveProduct(direction string) {
	total := len(m.state.Products)
	if total == 0 {
		return
	}
	idx := m.state.SelectedProduct
	switch direction {
	case "up":
		idx -= views.LensColumns
	case "down":
		idx += views.LensColumns
	}
	if idx < 0 || idx >= total {
		return
	}
	m.state.SelectedProduct = idx

	row := idx / views.LensColumns
	if row < m.state.ProductRow {
		m.state.ProductRow = row
	}
	if rows := m.state.ProductRows; rows > 0 && row >= m.state.ProductRow+rows {
		m.state.ProductRow = row - rows + 1
	}
}
