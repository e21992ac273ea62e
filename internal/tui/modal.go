package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// modalChosenMsg reports the action picked in a modal, identified by the
// modal's id and the action label.
type modalChosenMsg struct {
	id     string
	action string
}

// modalDismissedMsg reports that a modal was closed without choosing.
type modalDismissedMsg struct {
	id string
}

// modalModel is an overlay dialog. While it is open the app model routes all
// key input here, so the underlying screen is frozen until the modal is
// dismissed and comes back untouched.
type modalModel struct {
	id      string
	title   string
	content string
	actions []string
	idx     int
	open    bool
}

func newModal(id, title, content string, actions []string) modalModel {
	return modalModel{
		id:      id,
		title:   title,
		content: content,
		actions: actions,
		open:    true,
	}
}

// update consumes a key press. esc dismisses, left/right move between
// actions, enter chooses the highlighted action.
func (m modalModel) update(msg tea.KeyMsg) (modalModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.open = false
		id := m.id
		return m, func() tea.Msg { return modalDismissedMsg{id: id} }
	case key.Matches(msg, keys.left):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.right):
		if m.idx < len(m.actions)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if len(m.actions) == 0 {
			return m, nil
		}
		m.open = false
		id, action := m.id, m.actions[m.idx]
		return m, func() tea.Msg { return modalChosenMsg{id: id, action: action} }
	}
	return m, nil
}

func (m modalModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.content)
	b.WriteString("\n\n")

	for i, action := range m.actions {
		if i > 0 {
			b.WriteString("    ")
		}
		if i == m.idx {
			b.WriteString("[" + action + "]")
		} else {
			b.WriteString(" " + action + " ")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("←/→ choose  enter confirm  esc close"))

	return overlayBoxStyle.Render(b.String())
}
