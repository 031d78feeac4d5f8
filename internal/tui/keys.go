package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Fit     key.Binding
	Stats   key.Binding
	Sidebar key.Binding
	Open    key.Binding
	Paste   key.Binding
	Clear   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Fit:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fit to data")),
		Stats:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stats")),
		Sidebar: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "inputs")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show input")),
		Paste:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste wkt")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear pasted")),
		Help:    key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fit, k.Sidebar, k.Stats, k.Paste, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fit, k.Stats, k.Sidebar, k.Open},
		{k.Paste, k.Clear, k.Help, k.Quit},
	}
}
