package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"glance/internal/config"
	"glance/internal/ui/input/types"
	"glance/internal/ui/state"
	"glance/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    *config.Config
	width     int
	height    int
	help      help.Model
	textInput *textinput.Model
	mode      types.Mode
	onLens    bool
	spinner   string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
		help:   help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetInputMode sets the current input mode and its text input (nil outside text modes)
func (vm *ViewModel) SetInputMode(mode types.Mode, ti *textinput.Model) {
	vm.mode = mode
	vm.textInput = ti
}

// SetScreen tells the view model which screen is showing
func (vm *ViewModel) SetScreen(onLens bool) {
	vm.onLens = onLens
}

// SetSpinner sets the rendered spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.state
	vs := views.ViewState{
		Width:           vm.width,
		Height:          vm.height,
		Title:           vm.config.UI.Title,
		Shortcuts:       vm.config.UI.Shortcuts,
		Query:           s.Query,
		Items:           s.Visible,
		TotalItems:      len(s.Items),
		SelectedIndex:   s.SelectedIndex,
		ViewportOffset:  s.ViewportOffset,
		ViewportHeight:  s.ViewportHeight,
		Suggestion:      s.Suggestion,
		ShowLens:        vm.onLens,
		Image:           s.Image,
		Products:        s.Products,
		Searching:       s.Searching,
		Spinner:         vm.spinner,
		SelectedProduct: s.SelectedProduct,
		ProductRow:      s.ProductRow,
		ProductRows:     s.ProductRows,
		ShowVoice:       s.ShowVoice,
		VoiceDots:       s.VoiceDots,
		ShowImageSource: s.ShowImageSource,
		ShowHelp:        s.ShowHelp,
		StatusMessage:   s.StatusMessage,
		StatusLevel:     s.StatusLevel,
		HelpModel:       vm.help,
		KeyMap:          vm.keyMap(),
	}
	if vm.textInput != nil {
		vs.Editing = true
		vs.SearchInput = vm.textInput.View()
	}
	if s.ShowHelp {
		vs.HelpContent = views.RenderHelpContent()
	}
	return vs
}

// keyMap picks the footer bindings for the current mode
func (vm *ViewModel) keyMap() help.KeyMap {
	switch {
	case vm.mode == types.ModeSearch:
		return types.EditHelp{KeyMap: types.Keys}
	case vm.onLens:
		return types.LensHelp{KeyMap: types.Keys}
	default:
		return types.HomeHelp{KeyMap: types.Keys}
	}
}
