package ui

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"glance/internal/config"
	"glance/internal/domain"
	"glance/internal/eventbus"
	"glance/internal/lens"
	"glance/internal/ui/input"
	inputtypes "glance/internal/ui/input/types"
	"glance/internal/ui/logic"
	"glance/internal/ui/state"
	"glance/internal/ui/viewmodels"
	"glance/internal/ui/views"
	"glance/internal/voice"
)

// Lines taken by everything on the home screen except the cards:
// padding, title, search bar, shortcuts, gap, scroll indicators, status, help.
const homeChromeLines = 2 + 1 + 3 + 1 + 1 + 2 + 2

// Lines taken on the lens screen by everything except the product grid
const lensChromeLines = 2 + 1 + 1 + 1 + 4 + 1 + 1 + 2 + 2

// productCardHeight is the height of one product grid row
const productCardHeight = 5

// Model represents the UI state
type Model struct {
	ctx    context.Context // parent of every collaborator call
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	width       int
	height      int
	screen      Screen
	inPagerMode bool // tracks if we're currently in pager mode
	statusSeq   int  // identifies the status message a clearStatusMsg belongs to

	voice        *voice.Simulator
	voiceAttempt voice.Attempt
	voiceCtx     context.Context
	voiceCancel  context.CancelFunc // stops the recognizer of voiceAttempt
	picker       lens.Picker
	searcher     lens.Searcher
	spinner      spinner.Model

	navigator    *logic.Navigator
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// Option customizes a Model
type Option func(*Model)

// WithContext sets the context collaborator calls derive from
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// WithSimulator replaces the voice simulator built from the config
func WithSimulator(sim *voice.Simulator) Option {
	return func(m *Model) { m.voice = sim }
}

// WithPicker sets the image picker
func WithPicker(p lens.Picker) Option {
	return func(m *Model) { m.picker = p }
}

// WithSearcher sets the image search backend
func WithSearcher(s lens.Searcher) Option {
	return func(m *Model) { m.searcher = s }
}

// NewModel creates a new UI model showing items. bus may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config, items []domain.FeedItem, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState(items)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		spinner:      sp,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(appState, cfg),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(nil),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.ctx == nil {
		m.ctx = context.Background()
	}

	if m.voice == nil {
		m.voice = voice.NewSimulator(
			voice.NewPlaceholder(cfg.Voice.Placeholder),
			voice.WithDelay(cfg.Voice.Delay()),
			voice.WithTimeout(cfg.Voice.Timeout()),
		)
	}
	if m.picker == nil {
		m.picker = lens.NewMockPicker(os.TempDir())
	}
	if m.searcher == nil {
		m.searcher = lens.NewMockSearcher()
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		// Inline help popup swallows keys until closed
		if m.state.ShowHelp {
			switch msg.String() {
			case "ctrl+c":
				return m, m.quit()
			case "esc", "?", "q":
				m.state.ShowHelp = false
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, &modelContext{m: m})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	return m, m.handleNonKeyboardMsg(msg)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode(), m.inputHandler.TextInput())
	m.viewModel.SetScreen(m.screen == ScreenLens)
	m.viewModel.SetSpinner(m.spinner.View())

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if m.screen == ScreenLens {
			m.moveProduct(a.Direction)
			return nil
		}
		m.navigator.UpdateState(m.state.SelectedIndex, m.state.ViewportOffset, m.state.ViewportHeight, len(m.state.Visible))
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Navigate(a.Direction)

	case inputtypes.UpdateTextAction:
		m.setQuery(a.Text)

	case inputtypes.SubmitTextAction:
		m.setQuery(a.Text)
		log.Printf("Search submitted: %q (%d results)", a.Text, len(m.state.Visible))

	case inputtypes.CancelTextAction, inputtypes.ClearQueryAction:
		m.setQuery("")

	case inputtypes.StartVoiceAction:
		return m.startVoice()

	case inputtypes.CancelVoiceAction:
		m.cancelVoice()

	case inputtypes.OpenImageSourceAction:
		m.state.ShowImageSource = true

	case inputtypes.CloseImageSourceAction:
		m.state.ShowImageSource = false

	case inputtypes.PickImageAction:
		return m.pickImage(a.Source)

	case inputtypes.GoHomeAction:
		m.navigateTo(ScreenHome, nil)

	case inputtypes.ToggleHelpAction:
		if m.program != nil {
			return m.fetchHelpPager(views.RenderHelpContent())
		}
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return m.quit()
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case voiceElapsedMsg:
		return m.handleVoiceElapsed(msg)

	case voiceRecognizedMsg:
		return m.handleVoiceRecognized(msg)

	case voiceDotsMsg:
		return m.handleVoiceDots(msg)

	case imagePickedMsg:
		return m.handleImagePicked(msg)

	case productsMsg:
		return m.handleProducts(msg)

	case spinner.TickMsg:
		if !m.state.Searching {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: fall back to the inline popup
			log.Printf("Help pager failed: %v", msg.err)
			m.state.ShowHelp = true
		}
		return nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.ClearStatus()
		}
		return nil

	default:
		// Cursor blink and other text input messages
		return m.inputHandler.Update(msg)
	}
}

// setQuery stores a new query and refilters the feed synchronously
func (m *Model) setQuery(query string) {
	if query == m.state.Query {
		return
	}
	m.state.SetQuery(query)
	m.publish(eventbus.QueryChangedEvent{Query: query, Visible: len(m.state.Visible)})
}

// setStatus shows msg and schedules its removal
func (m *Model) setStatus(msg string, level views.StatusLevel) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.state.SetStatus(msg, level)

	timeout := m.config.UI.StatusTimeout()
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

func (m *Model) quit() tea.Cmd {
	m.stopRecognition()
	if m.voice.IsListening() {
		m.voice.StopListening()
	}
	return tea.Quit
}

// updateViewportHeight recomputes how many cards and product rows fit
func (m *Model) updateViewportHeight() {
	cards := (m.height - homeChromeLines) / views.CardHeight
	if cards < 1 {
		cards = 1
	}
	m.state.ViewportHeight = cards

	rows := (m.height - lensChromeLines) / productCardHeight
	if rows < 1 {
		rows = 1
	}
	m.state.ProductRows = rows

	m.navigator.UpdateState(m.state.SelectedIndex, m.state.ViewportOffset, m.state.ViewportHeight, len(m.state.Visible))
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)
}

// State accessors used by main and tests

// Query returns the current search text
func (m *Model) Query() string { return m.state.Query }

// VisibleItems returns the feed items that pass the current query
func (m *Model) VisibleItems() []domain.FeedItem { return m.state.Visible }

// Voice returns the voice simulator
func (m *Model) Voice() *voice.Simulator { return m.voice }

// modelContext exposes model state to the input modes
type modelContext struct {
	m *Model
}

func (c *modelContext) Query() string     { return c.m.state.Query }
func (c *modelContext) VisibleItems() int { return len(c.m.state.Visible) }
func (c *modelContext) IsListening() bool { return c.m.voice.IsListening() }
