package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	prev    key.Binding
	next    key.Binding
	flip    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding

	add      key.Binding
	edit     key.Binding
	delete   key.Binding
	list     key.Binding
	settings key.Binding
	export   key.Binding
	imports  key.Binding
	reload   key.Binding
	bulk     key.Binding
	copy     key.Binding
	version  key.Binding

	toggle key.Binding
	write  key.Binding

	yes key.Binding
	no  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	prev:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous")),
	next:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
	flip:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "flip")),
	enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	esc:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	backtab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

	add:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	list:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "list")),
	settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
	export:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export")),
	imports:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
	reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	bulk:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "add many")),
	copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	version:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "about")),

	toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
	write:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write file")),

	yes: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
	no:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
}
