package tui

import "strings"

// section identifies the sidebar entry that drives the content pane.
type section int

const (
	sectionContacts section = iota
	sectionDeals
)

const (
	sidebarWidth          = 20
	sidebarCollapsedWidth = 3

	contentWidth         = 60
	contentExpandedWidth = contentWidth + sidebarWidth - sidebarCollapsedWidth
)

var sectionTitles = map[section]string{
	sectionContacts: "Contacts",
	sectionDeals:    "Deals",
}

// sidebarModel is a fixed two-section navigation pane. Collapsing it and
// widening the content pane happen in the same toggle so the two can never
// disagree.
type sidebarModel struct {
	active    section
	collapsed bool
}

func newSidebarModel(collapsed bool) sidebarModel {
	return sidebarModel{collapsed: collapsed}
}

// toggle flips the collapsed state. The content width follows from it, see
// contentPaneWidth.
func (m sidebarModel) toggle() sidebarModel {
	m.collapsed = !m.collapsed
	return m
}

// next cycles to the following section.
func (m sidebarModel) next() sidebarModel {
	if m.active == sectionContacts {
		m.active = sectionDeals
	} else {
		m.active = sectionContacts
	}
	return m
}

// contentPaneWidth is the width of the content pane given the sidebar state.
func (m sidebarModel) contentPaneWidth() int {
	if m.collapsed {
		return contentExpandedWidth
	}
	return contentWidth
}

func (m sidebarModel) View() string {
	if m.collapsed {
		return sidebarCollapsedStyle.Render("»")
	}

	var b strings.Builder
	for _, s := range []section{sectionContacts, sectionDeals} {
		cursor := "  "
		if s == m.active {
			cursor = "> "
		}
		b.WriteString(cursor + sectionTitles[s] + "\n")
	}
	return sidebarStyle.Render(strings.TrimRight(b.String(), "\n"))
}
