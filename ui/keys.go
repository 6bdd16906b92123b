package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search   key.Binding
	Accept   key.Binding
	Clear    key.Binding
	NextType key.Binding
	PrevType key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Theme    key.Binding
	Retry    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Accept:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
	Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	NextType: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next type")),
	PrevType: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev type")),
	PrevPage: key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("h/←", "prev page")),
	NextPage: key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("l/→", "next page")),
	Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns short help key bindings (for help.Model)
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextType, k.PrevPage, k.NextPage, k.Theme, k.Quit}
}

// FullHelp returns full help key bindings
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Accept, k.Clear},
		{k.NextType, k.PrevType},
		{k.PrevPage, k.NextPage},
		{k.Theme, k.Retry, k.Help, k.Quit},
	}
}
