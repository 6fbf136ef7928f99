package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	JumpStart   key.Binding
	JumpEnd     key.Binding
	Confirm     key.Binding
	Close       key.Binding
	ClearFilter key.Binding
	Backspace   key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up")),
		Down:        key.NewBinding(key.WithKeys("down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown")),
		Home:        key.NewBinding(key.WithKeys("home")),
		End:         key.NewBinding(key.WithKeys("end")),
		JumpStart:   key.NewBinding(key.WithKeys("ctrl+home", "ctrl+a")),
		JumpEnd:     key.NewBinding(key.WithKeys("ctrl+end", "ctrl+e")),
		Confirm:     key.NewBinding(key.WithKeys("enter")),
		Close:       key.NewBinding(key.WithKeys("esc")),
		ClearFilter: key.NewBinding(key.WithKeys("ctrl+u")),
		Backspace:   key.NewBinding(key.WithKeys("backspace")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	if m.menu.IsOpen() {
		return m.handleOpenKey(msg)
	}
	return m.handleClosedKey(msg)
}

// handleClosedKey drives the widget while the menu is collapsed: enter,
// space, or the arrow keys expand it, escape quits.
func (m *Model) handleClosedKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		return tea.Quit
	case key.Matches(msg, m.keys.Confirm),
		key.Matches(msg, m.keys.Up),
		key.Matches(msg, m.keys.Down):
		m.openMenu()
	case msg.Type == tea.KeySpace:
		m.openMenu()
	case msg.Type == tea.KeyRunes && string(msg.Runes) == " ":
		m.openMenu()
	}
	return nil
}

// openMenu expands the list and parks the highlight on the current
// selection so navigation starts from there.
func (m *Model) openMenu() {
	m.menu.Open()
	if item := m.menu.SelectedItem(); item != nil {
		item.Hover()
	}
}

func (m *Model) handleOpenKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		if m.filter != "" {
			m.resetFilter()
			return nil
		}
		m.menu.Close()
	case key.Matches(msg, m.keys.Confirm):
		m.menu.CommitSelect()
		m.resetFilter()
	case key.Matches(msg, m.keys.Up):
		m.menu.MovePrev()
	case key.Matches(msg, m.keys.Down):
		m.menu.MoveNext()
	case key.Matches(msg, m.keys.PageUp):
		m.menu.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.menu.PageDown()
	case key.Matches(msg, m.keys.JumpStart):
		m.menu.JumpStart()
	case key.Matches(msg, m.keys.JumpEnd):
		m.menu.JumpEnd()
	case key.Matches(msg, m.keys.Home):
		m.menu.MoveFirst()
	case key.Matches(msg, m.keys.End):
		m.menu.MoveLast()
	case key.Matches(msg, m.keys.ClearFilter):
		m.resetFilter()
	case key.Matches(msg, m.keys.Backspace):
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.applyFilter()
		}
	case msg.Type == tea.KeyRunes:
		m.filter += string(msg.Runes)
		m.applyFilter()
	case msg.Type == tea.KeySpace:
		m.filter += " "
		m.applyFilter()
	}
	return nil
}

func (m *Model) resetFilter() {
	if m.filter == "" {
		return
	}
	m.filter = ""
	m.applyFilter()
}
