package tui

import (
	"github.com/akmaldavlatboyev/crm/internal/validators"
	"github.com/akmaldavlatboyev/crm/models"
)

type contactsLoadedMsg struct {
	contacts []models.Contact
	err      error
}

// contactsRefreshedMsg carries a background refresh result. Unlike
// contactsLoadedMsg it is not tied to a user-initiated load, so handling it
// must not touch the loading spinner or raise a toast.
type contactsRefreshedMsg struct {
	contacts []models.Contact
	err      error
}

type dealsLoadedMsg struct {
	deals []models.Deal
	err   error
}

type contactSavedMsg struct {
	contact models.Contact
	result  validators.Result
	err     error
}

type dealSavedMsg struct {
	deal   models.Deal
	result validators.Result
	err    error
}

type contactDeletedMsg struct {
	err error
}

type dealDeletedMsg struct {
	err error
}

type copiedMsg struct {
	what string
	err  error
}

// notificationExpiredMsg is emitted by the toast's dismissal timer. The id
// identifies which toast the timer belongs to; a stale timer carries the id
// of an already replaced toast and is ignored.
type notificationExpiredMsg struct {
	id string
}
