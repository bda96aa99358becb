package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"glance/internal/domain"
	"glance/internal/ui/input/types"
)

// ImageSourceMode is the "Choose Image Source" popup
type ImageSourceMode struct {
	// returnTo is the mode restored when the popup closes
	returnTo types.Mode
}

func NewImageSourceMode(returnTo types.Mode) *ImageSourceMode {
	return &ImageSourceMode{returnTo: returnTo}
}

func (m *ImageSourceMode) Name() string {
	return "image-source"
}

func (m *ImageSourceMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.OpenImageSourceAction{}}
}

func (m *ImageSourceMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseImageSourceAction{}}
}

func (m *ImageSourceMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	keys := types.Keys
	switch {
	case key.Matches(msg, keys.ForceQ):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, keys.Camera):
		return []types.Action{
			types.ChangeModeAction{Mode: m.returnTo},
			types.PickImageAction{Source: domain.SourceCamera},
		}, true
	case key.Matches(msg, keys.Gallery):
		return []types.Action{
			types.ChangeModeAction{Mode: m.returnTo},
			types.PickImageAction{Source: domain.SourceGallery},
		}, true
	case key.Matches(msg, keys.Cancel):
		return []types.Action{types.ChangeModeAction{Mode: m.returnTo}}, true
	}
	return nil, true
}
