// Package service implements the client-side use cases: validating form
// input, assembling models and delegating persistence to the CRM adapter.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/akmaldavlatboyev/crm/internal/adapter"
	"github.com/akmaldavlatboyev/crm/internal/logger"
	"github.com/akmaldavlatboyev/crm/internal/validators"
	"github.com/akmaldavlatboyev/crm/models"
	"github.com/google/uuid"
)

// ContactService manages contact records.
// Form input is validated against a schema compiled once at construction;
// validation failures are returned as data, not errors.
type ContactService struct {
	crm    adapter.CRMAdapter
	schema *validators.Schema
	logger *logger.Logger
}

// NewContactService constructs a ContactService.
// It returns an error if the contact form schema fails to compile.
func NewContactService(crm adapter.CRMAdapter, log *logger.Logger) (*ContactService, error) {
	schema, err := validators.Compile(validators.FieldRules{
		"name": {
			validators.Required(),
			validators.MaxLength(120),
		},
		"email": {
			validators.Required(),
			validators.Email(),
		},
		"phone": {
			validators.Phone(),
		},
		"company": {
			validators.MaxLength(120),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("compile contact schema: %w", err)
	}

	return &ContactService{crm: crm, schema: schema, logger: log}, nil
}

// List returns all contacts.
func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.crm.ListContacts(ctx)
}

// Get returns the contact with the given id.
func (s *ContactService) Get(ctx context.Context, id string) (models.Contact, error) {
	return s.crm.GetContact(ctx, id)
}

// CreateFromForm validates the form values and, if they pass, creates a new
// contact with a fresh UUID. On validation failure the returned Result
// carries per-field messages and no contact is created.
func (s *ContactService) CreateFromForm(ctx context.Context, values validators.Values) (models.Contact, validators.Result, error) {
	result := s.schema.Validate(values)
	if !result.IsValid() {
		s.logger.Debug().Int("fields", len(result.Errors)).Msg("contact form rejected")
		return models.Contact{}, result, nil
	}

	now := time.Now()
	contact := models.Contact{
		ID:        uuid.NewString(),
		Name:      values["name"],
		Email:     values["email"],
		Phone:     values["phone"],
		Company:   values["company"],
		Notes:     values["notes"],
		CreatedAt: now,
		UpdatedAt: now,
	}

	stored, err := s.crm.CreateContact(ctx, contact)
	if err != nil {
		return models.Contact{}, result, err
	}

	s.logger.Info().Str("contact_id", stored.ID).Msg("contact created")
	return stored, result, nil
}

// UpdateFromForm validates the form values and, if they pass, updates the
// contact with the given id, preserving its creation timestamp.
func (s *ContactService) UpdateFromForm(ctx context.Context, id string, values validators.Values) (models.Contact, validators.Result, error) {
	result := s.schema.Validate(values)
	if !result.IsValid() {
		s.logger.Debug().Int("fields", len(result.Errors)).Msg("contact form rejected")
		return models.Contact{}, result, nil
	}

	existing, err := s.crm.GetContact(ctx, id)
	if err != nil {
		return models.Contact{}, result, err
	}

	existing.Name = values["name"]
	existing.Email = values["email"]
	existing.Phone = values["phone"]
	existing.Company = values["company"]
	existing.Notes = values["notes"]
	existing.UpdatedAt = time.Now()

	stored, err := s.crm.UpdateContact(ctx, existing)
	if err != nil {
		return models.Contact{}, result, err
	}

	s.logger.Info().Str("contact_id", stored.ID).Msg("contact updated")
	return stored, result, nil
}

// Delete removes the contact with the given id.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.crm.DeleteContact(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("contact_id", id).Msg("contact deleted")
	return nil
}
