package models

import "time"

// Contact represents a single CRM contact record as exchanged with the
// server API. Contacts are identified by a client-generated UUID so that
// records can be created offline-first and referenced before the server
// has ever seen them.
type Contact struct {
	// ID is the client-generated UUID of the contact.
	ID string `json:"id"`

	// Name is the contact's display name. Required.
	Name string `json:"name"`

	// Email is the contact's primary email address. Required.
	Email string `json:"email"`

	// Phone is the contact's phone number in free international form
	// (e.g. "+1 (555) 010-2030"). Optional.
	Phone string `json:"phone,omitempty"`

	// Company is the organisation the contact belongs to. Optional.
	Company string `json:"company,omitempty"`

	// Notes holds free-form notes about the contact. Optional.
	Notes string `json:"notes,omitempty"`

	// CreatedAt is set by the client when the record is first created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped by the client on every edit.
	UpdatedAt time.Time `json:"updated_at"`
}
