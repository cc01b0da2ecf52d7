package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Submit   key.Binding
	Leave    key.Binding
	Toggle   key.Binding
	Edit     key.Binding
	Retarget key.Binding
	Delete   key.Binding
	Copy     key.Binding
	All      key.Binding
	Done     key.Binding
	Pending  key.Binding
	Cycle    key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:      key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Leave:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle done")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Retarget: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "edit selected")),
		Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy title")),
		All:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		Done:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "completed")),
		Pending:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "pending")),
		Cycle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next filter")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// listHelp is shown while the task list has focus.
type listHelp struct{ k keyMap }

func (h listHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Add, h.k.Toggle, h.k.Edit, h.k.Delete, h.k.Cycle, h.k.Theme, h.k.Help, h.k.Quit}
}

func (h listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.Toggle, h.k.Copy},
		{h.k.Add, h.k.Edit, h.k.Delete},
		{h.k.All, h.k.Done, h.k.Pending, h.k.Cycle},
		{h.k.Theme, h.k.Help, h.k.Quit},
	}
}

// inputHelp is shown while typing a new task.
type inputHelp struct{ k keyMap }

func (h inputHelp) ShortHelp() []key.Binding {
	add := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task"))
	back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to list"))
	return []key.Binding{add, back, h.k.ForceQ}
}

func (h inputHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

// editHelp is shown while a task title is being edited.
type editHelp struct{ k keyMap }

func (h editHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Submit, h.k.Leave, h.k.Up, h.k.Down, h.k.Retarget, h.k.ForceQ}
}

func (h editHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
