// Package adapter defines the gateway between the CRM client and the remote
// CRM API, plus its HTTP implementation.
package adapter

import (
	"context"

	"github.com/akmaldavlatboyev/crm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crm_adapter_mock.go -package=mock

// CRMAdapter is the client-side gateway to the remote CRM API.
// All methods return contextual errors; validation happens before the adapter
// is reached, so the adapter deals only in complete models.
type CRMAdapter interface {
	// ListContacts returns all contacts visible to the client.
	ListContacts(ctx context.Context) ([]models.Contact, error)
	// GetContact returns the contact with the given id.
	GetContact(ctx context.Context, id string) (models.Contact, error)
	// CreateContact stores a new contact and returns the stored copy.
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	// UpdateContact replaces the stored contact with the given one.
	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	// DeleteContact removes the contact with the given id.
	DeleteContact(ctx context.Context, id string) error

	// ListDeals returns deals, optionally filtered by contact id.
	// An empty contactID returns all deals.
	ListDeals(ctx context.Context, contactID string) ([]models.Deal, error)
	// CreateDeal stores a new deal and returns the stored copy.
	CreateDeal(ctx context.Context, deal models.Deal) (models.Deal, error)
	// UpdateDeal replaces the stored deal with the given one.
	UpdateDeal(ctx context.Context, deal models.Deal) (models.Deal, error)
	// DeleteDeal removes the deal with the given id.
	DeleteDeal(ctx context.Context, id string) error
}
