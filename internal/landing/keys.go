package landing

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Open   key.Binding
	Close  key.Binding
	How    key.Binding
	GitHub key.Binding
	Theme  key.Binding
	Pause  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab", "next tile")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("shift+tab", "prev tile")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand")),
		Close:  key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "close")),
		How:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "how it works")),
		GitHub: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "github")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Pause:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Open, k.Close, k.Theme, k.Pause, k.GitHub, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Open, k.Close},
		{k.How, k.GitHub, k.Theme, k.Pause, k.Quit},
	}
}
