package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"glance/internal/domain"
	"glance/internal/ui/input/types"
)

// LensMode drives the image results screen
type LensMode struct{}

func NewLensMode() *LensMode {
	return &LensMode{}
}

func (m *LensMode) Name() string {
	return "lens"
}

func (m *LensMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *LensMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *LensMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	keys := types.Keys
	switch {
	case key.Matches(msg, keys.ForceQ):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, keys.Back):
		return []types.Action{
			types.GoHomeAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case key.Matches(msg, keys.Camera):
		return []types.Action{types.PickImageAction{Source: domain.SourceCamera}}, true
	case key.Matches(msg, keys.Gallery):
		return []types.Action{types.PickImageAction{Source: domain.SourceGallery}}, true
	case key.Matches(msg, keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
