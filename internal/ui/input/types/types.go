package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeVoice
	ModeImageSource
	ModeLens
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeVoice:
		return "voice"
	case ModeImageSource:
		return "image-source"
	case ModeLens:
		return "lens"
	default:
		return "normal"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	// Query returns the current search text
	Query() string
	// VisibleItems returns how many feed items pass the filter
	VisibleItems() int
	// IsListening reports whether a voice capture is in progress
	IsListening() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
