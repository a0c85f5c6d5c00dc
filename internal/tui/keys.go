package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the calendar bindings. It satisfies help.KeyMap so the
// footer and the help overlay are rendered from the same source.
type keyMap struct {
	PrevDay     key.Binding
	NextDay     key.Binding
	PrevWeek    key.Binding
	NextWeek    key.Binding
	PrevADMonth key.Binding
	NextADMonth key.Binding
	PrevBSMonth key.Binding
	NextBSMonth key.Binding
	Today       key.Binding
	EnterAD     key.Binding
	EnterBS     key.Binding
	Bookmark    key.Binding
	Unbookmark  key.Binding
	Help        key.Binding
	Quit        key.Binding
	Submit      key.Binding
	Cancel      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevDay:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev day")),
		NextDay:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next day")),
		PrevWeek:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "prev week")),
		NextWeek:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next week")),
		PrevADMonth: key.NewBinding(key.WithKeys("H", "pgup"), key.WithHelp("H/PgUp", "prev AD month")),
		NextADMonth: key.NewBinding(key.WithKeys("L", "pgdown"), key.WithHelp("L/PgDn", "next AD month")),
		PrevBSMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev BS month")),
		NextBSMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next BS month")),
		Today:       key.NewBinding(key.WithKeys("t", "home"), key.WithHelp("t", "today")),
		EnterAD:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "enter AD date")),
		EnterBS:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "enter BS date")),
		Bookmark:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "bookmark day")),
		Unbookmark:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove bookmarks")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek, k.Today, k.EnterAD, k.EnterBS, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek},
		{k.PrevADMonth, k.NextADMonth, k.PrevBSMonth, k.NextBSMonth, k.Today},
		{k.EnterAD, k.EnterBS, k.Bookmark, k.Unbookmark, k.Help, k.Quit},
	}
}

// inputKeys is shown in the footer while a prompt is open.
type inputKeys struct {
	Submit key.Binding
	Cancel key.Binding
}

func (k inputKeys) ShortHelp() []key.Binding  { return []key.Binding{k.Submit, k.Cancel} }
func (k inputKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
