package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the modes react to. It doubles as the
// help.KeyMap rendered in the footer.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Search   key.Binding
	Clear    key.Binding
	Mic      key.Binding
	Camera   key.Binding
	Gallery  key.Binding
	Back     key.Binding
	Cancel   key.Binding
	Submit   key.Binding
	Help     key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

// Keys is the default key map
var Keys = KeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "top")),
	Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "bottom")),
	Search:   key.NewBinding(key.WithKeys("/", "i"), key.WithHelp("/", "search")),
	Clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
	Mic:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "voice")),
	Camera:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "camera")),
	Gallery:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gallery")),
	Back:     key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b", "back")),
	Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
}

// HomeHelp is the footer of the home screen
type HomeHelp struct{ KeyMap }

func (k HomeHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Mic, k.Camera, k.Clear, k.Help, k.Quit}
}

func (k HomeHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Search, k.Clear, k.Mic, k.Camera},
		{k.Help, k.Quit},
	}
}

// LensHelp is the footer of the image results screen
type LensHelp struct{ KeyMap }

func (k LensHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Camera, k.Gallery, k.Back, k.Help, k.Quit}
}

func (k LensHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Camera, k.Gallery, k.Back},
		{k.Help, k.Quit},
	}
}

// EditHelp is the footer while typing a query
type EditHelp struct{ KeyMap }

func (k EditHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

func (k EditHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Cancel}}
}
