package tui

import (
	"testing"
	"time"

	"github.com/akmaldavlatboyev/crm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRefreshTestModel() appModel {
	return appModel{
		currentScreen: screenContacts,
		notification:  newNotificationModel(time.Second),
		loading:       newLoadingModel(),
		dealList:      dealListModel{contactNames: map[string]string{}},
	}
}

func TestAppModel_BackgroundRefreshUpdatesList(t *testing.T) {
	m := newRefreshTestModel()

	updated, cmd := m.Update(contactsRefreshedMsg{
		contacts: []models.Contact{{ID: "c-1", Name: "Alice"}},
	})
	got, ok := updated.(appModel)
	require.True(t, ok)

	assert.Nil(t, cmd)
	require.Len(t, got.contactList.contacts, 1)
	assert.Equal(t, "Alice", got.dealList.contactNames["c-1"])
}

func TestAppModel_BackgroundRefreshLeavesSpinnerAlone(t *testing.T) {
	m := newRefreshTestModel()
	m.loading, _ = m.loading.start("deleting")

	// a refresh landing mid-operation must not unfreeze the UI
	updated, _ := m.Update(contactsRefreshedMsg{
		contacts: []models.Contact{{ID: "c-1", Name: "Alice"}},
	})
	got := updated.(appModel)

	assert.True(t, got.loading.active, "an in-flight operation still owns the spinner")
	assert.Len(t, got.contactList.contacts, 1)
}

func TestAppModel_BackgroundRefreshErrorStaysSilent(t *testing.T) {
	m := newRefreshTestModel()
	m.contactList = m.contactList.setContacts([]models.Contact{{ID: "c-1", Name: "Alice"}})

	updated, cmd := m.Update(contactsRefreshedMsg{err: assert.AnError})
	got := updated.(appModel)

	assert.Nil(t, cmd, "no toast timer may be armed")
	assert.False(t, got.notification.visible(), "a failing refresh must not toast every interval")
	assert.Len(t, got.contactList.contacts, 1, "the last good list is kept")
}

func TestAppModel_UserLoadErrorStillToasts(t *testing.T) {
	m := newRefreshTestModel()

	updated, cmd := m.Update(contactsLoadedMsg{err: assert.AnError})
	got := updated.(appModel)

	assert.NotNil(t, cmd)
	assert.True(t, got.notification.visible())
	assert.False(t, got.loading.active)
}
