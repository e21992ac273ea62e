package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/akmaldavlatboyev/crm/internal/adapter"
	"github.com/akmaldavlatboyev/crm/internal/logger"
	"github.com/akmaldavlatboyev/crm/internal/validators"
	"github.com/akmaldavlatboyev/crm/models"
	"github.com/google/uuid"
)

// closeDateLayout is the date format accepted by the deal form.
const closeDateLayout = "2006-01-02"

// DealService manages deal records.
type DealService struct {
	crm    adapter.CRMAdapter
	schema *validators.Schema
	logger *logger.Logger
}

// NewDealService constructs a DealService.
// It returns an error if the deal form schema fails to compile.
func NewDealService(crm adapter.CRMAdapter, log *logger.Logger) (*DealService, error) {
	schema, err := validators.Compile(validators.FieldRules{
		"title": {
			validators.Required(),
			validators.MaxLength(200),
		},
		"stage": {
			validators.Required(),
			validators.PredicateRule{Check: checkStage},
		},
		"amount": {
			validators.Required(),
			validators.PredicateRule{Check: checkAmount},
		},
		"currency": {
			validators.Required(),
			validators.MinLength(3).WithMessage("currency must be a 3-letter code"),
			validators.MaxLength(3).WithMessage("currency must be a 3-letter code"),
		},
		"close_date": {
			validators.PredicateRule{Check: checkCloseDate},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("compile deal schema: %w", err)
	}

	return &DealService{crm: crm, schema: schema, logger: log}, nil
}

func checkStage(value string) error {
	if !models.ValidStage(models.DealStage(value)) {
		return fmt.Errorf("unknown stage %q", value)
	}
	return nil
}

func checkAmount(value string) error {
	cents, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("amount must be a whole number of cents")
	}
	if cents < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	return nil
}

func checkCloseDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(closeDateLayout, value); err != nil {
		return fmt.Errorf("close date must look like 2006-01-02")
	}
	return nil
}

// List returns deals, optionally filtered by contact id.
func (s *DealService) List(ctx context.Context, contactID string) ([]models.Deal, error) {
	return s.crm.ListDeals(ctx, contactID)
}

// CreateFromForm validates the form values and, if they pass, creates a new
// deal for the given contact. On validation failure the returned Result
// carries per-field messages and no deal is created.
func (s *DealService) CreateFromForm(ctx context.Context, contactID string, values validators.Values) (models.Deal, validators.Result, error) {
	result := s.schema.Validate(values)
	if !result.IsValid() {
		s.logger.Debug().Int("fields", len(result.Errors)).Msg("deal form rejected")
		return models.Deal{}, result, nil
	}

	now := time.Now()
	deal := models.Deal{
		ID:        uuid.NewString(),
		ContactID: contactID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyDealForm(&deal, values)

	stored, err := s.crm.CreateDeal(ctx, deal)
	if err != nil {
		return models.Deal{}, result, err
	}

	s.logger.Info().Str("deal_id", stored.ID).Str("contact_id", contactID).Msg("deal created")
	return stored, result, nil
}

// UpdateFromForm validates the form values and, if they pass, updates the
// deal with the given id, preserving its contact and creation timestamp.
func (s *DealService) UpdateFromForm(ctx context.Context, deal models.Deal, values validators.Values) (models.Deal, validators.Result, error) {
	result := s.schema.Validate(values)
	if !result.IsValid() {
		s.logger.Debug().Int("fields", len(result.Errors)).Msg("deal form rejected")
		return models.Deal{}, result, nil
	}

	applyDealForm(&deal, values)
	deal.UpdatedAt = time.Now()

	stored, err := s.crm.UpdateDeal(ctx, deal)
	if err != nil {
		return models.Deal{}, result, err
	}

	s.logger.Info().Str("deal_id", stored.ID).Msg("deal updated")
	return stored, result, nil
}

// Delete removes the deal with the given id.
func (s *DealService) Delete(ctx context.Context, id string) error {
	if err := s.crm.DeleteDeal(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("deal_id", id).Msg("deal deleted")
	return nil
}

// applyDealForm copies validated form values onto the deal.
// Values are assumed to have passed the schema, so parse errors cannot occur.
func applyDealForm(deal *models.Deal, values validators.Values) {
	deal.Title = values["title"]
	deal.Stage = models.DealStage(values["stage"])
	deal.AmountCents, _ = strconv.ParseInt(values["amount"], 10, 64)
	deal.Currency = values["currency"]

	deal.CloseDate = time.Time{}
	if values["close_date"] != "" {
		deal.CloseDate, _ = time.Parse(closeDateLayout, values["close_date"])
	}
}
