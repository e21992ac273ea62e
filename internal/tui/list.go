package tui

import (
	"fmt"
	"strings"

	"github.com/akmaldavlatboyev/crm/models"
)

type contactListModel struct {
	contacts []models.Contact
	idx      int
}

func (m contactListModel) current() (models.Contact, bool) {
	if len(m.contacts) == 0 || m.idx < 0 || m.idx >= len(m.contacts) {
		return models.Contact{}, false
	}
	return m.contacts[m.idx], true
}

// setContacts replaces the list and clamps the cursor.
func (m contactListModel) setContacts(contacts []models.Contact) contactListModel {
	m.contacts = contacts
	if m.idx >= len(m.contacts) {
		m.idx = len(m.contacts) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m contactListModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Contacts"))
	b.WriteString("\n\n")

	if len(m.contacts) == 0 {
		b.WriteString("No contacts yet\n")
	} else {
		for i, c := range m.contacts {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s  %s", cursor, fitText(c.Name, 24), fitText(c.Company, 20))
			b.WriteString(strings.TrimRight(line, " ") + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("n new  e edit  d delete  r refresh  s section  b sidebar  enter open  q quit"))
	return b.String()
}
