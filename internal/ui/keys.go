package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the widget controls.
type keyMap struct {
	StartPause key.Binding
	Reset      key.Binding
	Lap        key.Binding
	Focus      key.Binding
	Submit     key.Binding
	Blur       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		StartPause: key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space", "start")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Lap:        key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lap")),
		Focus:      key.NewBinding(key.WithKeys("tab", "c"), key.WithHelp("tab", "countdown")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start countdown")),
		Blur:       key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "back")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// withRunning labels the toggle with the action it will perform.
func (k keyMap) withRunning(running bool) keyMap {
	label := "start"
	if running {
		label = "pause"
	}

	k.StartPause.SetHelp("space", label)

	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartPause, k.Reset, k.Lap, k.Focus, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartPause, k.Reset, k.Lap},
		{k.Focus, k.Submit, k.Blur},
		{k.Help, k.Quit},
	}
}

// inputKeyMap is shown while the countdown field has focus.
type inputKeyMap struct {
	keyMap
}

// ShortHelp implements help.KeyMap.
func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Blur, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Blur, k.Quit}}
}
