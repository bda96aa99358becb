package types

import "glance/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// Voice actions
type StartVoiceAction struct{}

func (a StartVoiceAction) Type() string { return "start_voice" }

type CancelVoiceAction struct{}

func (a CancelVoiceAction) Type() string { return "cancel_voice" }

// Image actions
type OpenImageSourceAction struct{}

func (a OpenImageSourceAction) Type() string { return "open_image_source" }

type CloseImageSourceAction struct{}

func (a CloseImageSourceAction) Type() string { return "close_image_source" }

type PickImageAction struct {
	Source domain.ImageSource
}

func (a PickImageAction) Type() string { return "pick_image" }

// Screen actions
type GoHomeAction struct{}

func (a GoHomeAction) Type() string { return "go_home" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
