package service

import (
	"github.com/akmaldavlatboyev/crm/internal/adapter"
	"github.com/akmaldavlatboyev/crm/internal/logger"
)

// Services bundles the client services handed to the UI.
type Services struct {
	Contacts *ContactService
	Deals    *DealService
}

// NewServices wires all client services over the given adapter. Each service
// logs through its own child logger tagged with a component field.
func NewServices(crm adapter.CRMAdapter, log *logger.Logger) (*Services, error) {
	contacts, err := NewContactService(crm, log.GetChildLogger("contact-service"))
	if err != nil {
		return nil, err
	}
	deals, err := NewDealService(crm, log.GetChildLogger("deal-service"))
	if err != nil {
		return nil, err
	}
	return &Services{Contacts: contacts, Deals: deals}, nil
}
