package service

import (
	"context"
	"testing"
	"time"

	"github.com/akmaldavlatboyev/crm/internal/logger"
	"github.com/akmaldavlatboyev/crm/internal/mock"
	"github.com/akmaldavlatboyev/crm/internal/validators"
	"github.com/akmaldavlatboyev/crm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDealService(t *testing.T) (*DealService, *mock.MockCRMAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	crm := mock.NewMockCRMAdapter(ctrl)

	svc, err := NewDealService(crm, logger.Nop())
	require.NoError(t, err)
	return svc, crm
}

func validDealForm() validators.Values {
	return validators.Values{
		"title":      "Annual renewal",
		"stage":      "qualified",
		"amount":     "125000",
		"currency":   "USD",
		"close_date": "2026-09-30",
	}
}

// ── CreateFromForm ───────────────────────────────────────────────────────────

func TestDealService_CreateFromForm(t *testing.T) {
	svc, crm := newDealService(t)

	crm.EXPECT().
		CreateDeal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.Deal) (models.Deal, error) {
			assert.NotEmpty(t, d.ID)
			assert.Equal(t, "c-1", d.ContactID)
			assert.Equal(t, models.StageQualified, d.Stage)
			assert.Equal(t, int64(125000), d.AmountCents)
			assert.Equal(t, "USD", d.Currency)
			assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), d.CloseDate)
			return d, nil
		})

	deal, result, err := svc.CreateFromForm(context.Background(), "c-1", validDealForm())
	require.NoError(t, err)
	assert.True(t, result.IsValid())
	assert.Equal(t, "Annual renewal", deal.Title)
}

func TestDealService_CreateFromForm_EmptyCloseDate(t *testing.T) {
	svc, crm := newDealService(t)

	crm.EXPECT().
		CreateDeal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.Deal) (models.Deal, error) {
			assert.True(t, d.CloseDate.IsZero())
			return d, nil
		})

	form := validDealForm()
	form["close_date"] = ""

	_, result, err := svc.CreateFromForm(context.Background(), "c-1", form)
	require.NoError(t, err)
	assert.True(t, result.IsValid())
}

func TestDealService_CreateFromForm_InvalidInput(t *testing.T) {
	svc, _ := newDealService(t)

	values := validators.Values{
		"title":      "x",
		"stage":      "archived",
		"amount":     "12.50",
		"currency":   "usdollar",
		"close_date": "30/09/2026",
	}

	_, result, err := svc.CreateFromForm(context.Background(), "c-1", values)
	require.NoError(t, err)
	assert.False(t, result.IsValid())
	assert.Equal(t, `unknown stage "archived"`, result.Errors["stage"])
	assert.Equal(t, "amount must be a whole number of cents", result.Errors["amount"])
	assert.Equal(t, "currency must be a 3-letter code", result.Errors["currency"])
	assert.Equal(t, "close date must look like 2006-01-02", result.Errors["close_date"])
}

func TestDealService_CreateFromForm_NegativeAmount(t *testing.T) {
	svc, _ := newDealService(t)

	form := validDealForm()
	form["amount"] = "-100"

	_, result, err := svc.CreateFromForm(context.Background(), "c-1", form)
	require.NoError(t, err)
	assert.Equal(t, "amount must not be negative", result.Errors["amount"])
}

// ── UpdateFromForm ───────────────────────────────────────────────────────────

func TestDealService_UpdateFromForm(t *testing.T) {
	svc, crm := newDealService(t)

	existing := models.Deal{ID: "d-1", ContactID: "c-1", Stage: models.StageLead}
	crm.EXPECT().
		UpdateDeal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.Deal) (models.Deal, error) {
			assert.Equal(t, "d-1", d.ID)
			assert.Equal(t, "c-1", d.ContactID, "contact binding must be preserved")
			assert.Equal(t, models.StageQualified, d.Stage)
			return d, nil
		})

	deal, result, err := svc.UpdateFromForm(context.Background(), existing, validDealForm())
	require.NoError(t, err)
	assert.True(t, result.IsValid())
	assert.False(t, deal.UpdatedAt.IsZero())
}

// ── List / Delete ────────────────────────────────────────────────────────────

func TestDealService_List_FilteredByContact(t *testing.T) {
	svc, crm := newDealService(t)

	crm.EXPECT().ListDeals(gomock.Any(), "c-1").Return([]models.Deal{{ID: "d-1"}}, nil)

	deals, err := svc.List(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Len(t, deals, 1)
}

func TestDealService_Delete(t *testing.T) {
	svc, crm := newDealService(t)

	crm.EXPECT().DeleteDeal(gomock.Any(), "d-1").Return(nil)
	assert.NoError(t, svc.Delete(context.Background(), "d-1"))
}
