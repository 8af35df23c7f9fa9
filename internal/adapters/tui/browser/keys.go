package browser

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Detail      key.Binding
	Back        key.Binding
	Search      key.Binding
	ClearSearch key.Binding
	Filter      key.Binding
	Types       key.Binding
	Toggle      key.Binding
	Compare     key.Binding
	Evolution   key.Binding
	ClearAll    key.Binding
	Retry       key.Binding
	Quit        key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Filter, k.Types, k.Toggle, k.Compare, k.Evolution, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Detail, k.Back},
		{k.Search, k.ClearSearch, k.Filter, k.Types, k.ClearAll},
		{k.Toggle, k.Compare, k.Evolution, k.Retry, k.Quit},
	}
}

var keys = keyMap{
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Detail:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "detail")),
	Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	ClearSearch: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear search")),
	Filter:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter name")),
	Types:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "types")),
	Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "compare")),
	Compare:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comparison")),
	Evolution:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "evolution")),
	ClearAll:    key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "clear filters")),
	Retry:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
