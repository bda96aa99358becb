package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"glance/internal/ui/input/types"
)

// NormalMode drives the home screen when no overlay is open
type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	keys := types.Keys
	switch {
	case key.Matches(msg, keys.ForceQ):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, keys.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, keys.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case key.Matches(msg, keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case key.Matches(msg, keys.Clear):
		if ctx.Query() == "" {
			return nil, true
		}
		return []types.Action{types.ClearQueryAction{}}, true
	case key.Matches(msg, keys.Mic):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeVoice}}, true
	case key.Matches(msg, keys.Camera):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeImageSource}}, true
	case key.Matches(msg, keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
