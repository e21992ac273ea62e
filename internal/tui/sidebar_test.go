package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSidebar_ToggleFlipsBothStates(t *testing.T) {
	m := newSidebarModel(false)
	assert.False(t, m.collapsed)
	assert.Equal(t, contentWidth, m.contentPaneWidth())

	m = m.toggle()
	assert.True(t, m.collapsed)
	assert.Equal(t, contentExpandedWidth, m.contentPaneWidth(), "content pane must widen when the sidebar collapses")

	m = m.toggle()
	assert.False(t, m.collapsed)
	assert.Equal(t, contentWidth, m.contentPaneWidth())
}

func TestSidebar_NextCyclesSections(t *testing.T) {
	m := newSidebarModel(false)
	assert.Equal(t, sectionContacts, m.active)

	m = m.next()
	assert.Equal(t, sectionDeals, m.active)

	m = m.next()
	assert.Equal(t, sectionContacts, m.active)
}

func TestSidebar_ViewMarksActiveSection(t *testing.T) {
	m := newSidebarModel(false)
	assert.Contains(t, m.View(), "> Contacts")
	assert.Contains(t, m.View(), "  Deals")

	m = m.next()
	assert.Contains(t, m.View(), "> Deals")
}

func TestSidebar_CollapsedView(t *testing.T) {
	m := newSidebarModel(true)
	view := m.View()
	assert.NotContains(t, view, "Contacts")
	assert.NotContains(t, view, "Deals")
}
