package adapter

import (
	"context"
	"fmt"

	"github.com/akmaldavlatboyev/crm/internal/api"
	"github.com/akmaldavlatboyev/crm/models"
)

const (
	contactsPath = "/api/contacts"
	dealsPath    = "/api/deals"
)

// httpCRMAdapter implements CRMAdapter over the JSON HTTP API exposed by the
// CRM server.
type httpCRMAdapter struct {
	client *api.Client
}

// NewHTTPCRMAdapter returns a CRMAdapter that talks to the CRM server through
// the given api.Client.
func NewHTTPCRMAdapter(client *api.Client) CRMAdapter {
	return &httpCRMAdapter{client: client}
}

func (a *httpCRMAdapter) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := a.client.Get(ctx, contactsPath, &contacts); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (a *httpCRMAdapter) GetContact(ctx context.Context, id string) (models.Contact, error) {
	var contact models.Contact
	if err := a.client.Get(ctx, contactsPath+"/"+id, &contact); err != nil {
		return models.Contact{}, fmt.Errorf("get contact %s: %w", id, err)
	}
	return contact, nil
}

func (a *httpCRMAdapter) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	var stored models.Contact
	if err := a.client.Post(ctx, contactsPath, contact, &stored); err != nil {
		return models.Contact{}, fmt.Errorf("create contact: %w", err)
	}
	return stored, nil
}

func (a *httpCRMAdapter) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	var stored models.Contact
	if err := a.client.Put(ctx, contactsPath+"/"+contact.ID, contact, &stored); err != nil {
		return models.Contact{}, fmt.Errorf("update contact %s: %w", contact.ID, err)
	}
	return stored, nil
}

func (a *httpCRMAdapter) DeleteContact(ctx context.Context, id string) error {
	if err := a.client.Delete(ctx, contactsPath+"/"+id); err != nil {
		return fmt.Errorf("delete contact %s: %w", id, err)
	}
	return nil
}

func (a *httpCRMAdapter) ListDeals(ctx context.Context, contactID string) ([]models.Deal, error) {
	opts := []api.RequestOption{}
	if contactID != "" {
		opts = append(opts, api.WithQuery("contact_id", contactID))
	}

	var deals []models.Deal
	if err := a.client.Get(ctx, dealsPath, &deals, opts...); err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	return deals, nil
}

func (a *httpCRMAdapter) CreateDeal(ctx context.Context, deal models.Deal) (models.Deal, error) {
	var stored models.Deal
	if err := a.client.Post(ctx, dealsPath, deal, &stored); err != nil {
		return models.Deal{}, fmt.Errorf("create deal: %w", err)
	}
	return stored, nil
}

func (a *httpCRMAdapter) UpdateDeal(ctx context.Context, deal models.Deal) (models.Deal, error) {
	var stored models.Deal
	if err := a.client.Put(ctx, dealsPath+"/"+deal.ID, deal, &stored); err != nil {
		return models.Deal{}, fmt.Errorf("update deal %s: %w", deal.ID, err)
	}
	return stored, nil
}

func (a *httpCRMAdapter) DeleteDeal(ctx context.Context, id string) error {
	if err := a.client.Delete(ctx, dealsPath+"/"+id); err != nil {
		return fmt.Errorf("delete deal %s: %w", id, err)
	}
	return nil
}
