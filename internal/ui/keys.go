package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the list-mode key bindings.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Clear     key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	All       key.Binding
	Active    key.Binding
	Completed key.Binding
	Input     key.Binding
	Grab      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys("x", " ", "space"), key.WithHelp("x/space", "toggle")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e/enter", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		NextTab:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next filter")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev filter")),
		All:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		Active:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		Completed: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		Input:     key.NewBinding(key.WithKeys("a", "i", "n"), key.WithHelp("a", "add")),
		Grab:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// shortHelp lists the bindings shown in the footer.
func (k keyMap) shortHelp(reorder bool) []key.Binding {
	bindings := []key.Binding{k.Input, k.Toggle, k.Edit, k.Delete, k.NextTab}
	if reorder {
		bindings = append(bindings, k.Grab)
	}
	return append(bindings, k.Help, k.Quit)
}

// fullHelp lists every binding for the help screen.
func (k keyMap) fullHelp(reorder bool) []key.Binding {
	bindings := []key.Binding{
		k.Up, k.Down, k.Input, k.Toggle, k.Edit, k.Delete, k.Clear,
		k.NextTab, k.PrevTab, k.All, k.Active, k.Completed,
	}
	if reorder {
		bindings = append(bindings, k.Grab)
	}
	return append(bindings, k.Help, k.Quit)
}
