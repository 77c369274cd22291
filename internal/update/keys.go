package update

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings shown in the help footer. Calculator keys
// themselves are resolved through action.FromKey.
type KeyMap struct {
	Digits       key.Binding
	Operators    key.Binding
	Equals       key.Binding
	Delete       key.Binding
	Clear        key.Binding
	Sign         key.Binding
	Percent      key.Binding
	ClearHistory key.Binding
	History      key.Binding
	Theme        key.Binding
	Quit         key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."),
			key.WithHelp("0-9 .", "enter"),
		),
		Operators: key.NewBinding(
			key.WithKeys("+", "-", "*", "/"),
			key.WithHelp("+-*/", "operator"),
		),
		Equals: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter", "equals"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("bksp", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "c"),
			key.WithHelp("esc", "clear"),
		),
		Sign: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "±"),
		),
		Percent: key.NewBinding(
			key.WithKeys("%"),
			key.WithHelp("%", "percent"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear history"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Sign, k.History, k.Theme, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Operators, k.Equals},
		{k.Delete, k.Clear, k.Sign, k.Percent},
		{k.History, k.ClearHistory, k.Theme, k.Quit},
	}
}
