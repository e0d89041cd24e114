package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the dashboard understands. It satisfies
// help.KeyMap so the help bubble can render it.
type keyMap struct {
	Quit       key.Binding
	SwitchView key.Binding
	Search     key.Binding
	Filter     key.Binding
	Columns    key.Binding
	ClearAll   key.Binding
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	HalfDown   key.Binding
	HalfUp     key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	FirstPage  key.Binding
	LastPage   key.Binding
	PageSize   key.Binding
	Detail     key.Binding
	Help       key.Binding
	Escape     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		SwitchView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filter:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
		Columns:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "columns")),
		ClearAll:   key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear filters")),
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "navigate")),
		Down:       key.NewBinding(key.WithKeys("j", "down")),
		Top:        key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g/G", "top/bottom")),
		Bottom:     key.NewBinding(key.WithKeys("G", "end")),
		HalfDown:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d/u", "scroll")),
		HalfUp:     key.NewBinding(key.WithKeys("ctrl+u")),
		PrevPage:   key.NewBinding(key.WithKeys("[", "left"), key.WithHelp("[/]", "page")),
		NextPage:   key.NewBinding(key.WithKeys("]", "right")),
		FirstPage:  key.NewBinding(key.WithKeys("{"), key.WithHelp("{/}", "first/last page")),
		LastPage:   key.NewBinding(key.WithKeys("}")),
		PageSize:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "page size")),
		Detail:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back/clear")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Filter, k.Columns, k.SwitchView, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Top, k.HalfDown, k.PrevPage, k.FirstPage, k.PageSize},
		{k.Search, k.Filter, k.ClearAll, k.Columns, k.Detail},
		{k.SwitchView, k.Help, k.Escape, k.Quit},
	}
}
