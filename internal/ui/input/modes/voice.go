package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"glance/internal/ui/input/types"
)

// VoiceMode is active while the "Speak now" overlay is shown.
// Entering it starts a capture attempt; every key except cancel is swallowed.
type VoiceMode struct{}

func NewVoiceMode() *VoiceMode {
	return &VoiceMode{}
}

func (m *VoiceMode) Name() string {
	return "voice"
}

func (m *VoiceMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.StartVoiceAction{}}
}

func (m *VoiceMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *VoiceMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, types.Keys.ForceQ):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, types.Keys.Cancel):
		return []types.Action{
			types.CancelVoiceAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, true
}
