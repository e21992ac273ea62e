package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akmaldavlatboyev/crm/internal/api"
	"github.com/akmaldavlatboyev/crm/internal/logger"
	"github.com/akmaldavlatboyev/crm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) CRMAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := api.New(api.Config{BaseURL: srv.URL}, logger.Nop())
	require.NoError(t, err)

	return NewHTTPCRMAdapter(client)
}

// ── contacts ─────────────────────────────────────────────────────────────────

func TestListContacts(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/contacts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Contact{
			{ID: "c-1", Name: "Alice"},
			{ID: "c-2", Name: "Bob"},
		})
	})

	contacts, err := a.ListContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Alice", contacts[0].Name)
}

func TestGetContact(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contacts/c-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Contact{ID: "c-1", Name: "Alice"})
	})

	contact, err := a.GetContact(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", contact.Name)
}

func TestGetContact_NotFound(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := a.GetContact(context.Background(), "missing")
	require.Error(t, err)

	te, ok := api.AsTransportError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, te.StatusCode)
}

func TestCreateContact(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contacts", r.URL.Path)

		var got models.Contact
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Alice", got.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(got)
	})

	stored, err := a.CreateContact(context.Background(), models.Contact{ID: "c-1", Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "c-1", stored.ID)
}

func TestUpdateContact(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/contacts/c-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Contact{ID: "c-1", Name: "Alice Updated"})
	})

	stored, err := a.UpdateContact(context.Background(), models.Contact{ID: "c-1", Name: "Alice Updated"})
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", stored.Name)
}

func TestDeleteContact(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/contacts/c-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, a.DeleteContact(context.Background(), "c-1"))
}

// ── deals ────────────────────────────────────────────────────────────────────

func TestListDeals_All(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/deals", r.URL.Path)
		assert.False(t, r.URL.Query().Has("contact_id"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Deal{{ID: "d-1", Title: "Renewal"}})
	})

	deals, err := a.ListDeals(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "Renewal", deals[0].Title)
}

func TestListDeals_FilteredByContact(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "c-1", r.URL.Query().Get("contact_id"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Deal{})
	})

	deals, err := a.ListDeals(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Empty(t, deals)
}

func TestCreateDeal(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/deals", r.URL.Path)

		var got models.Deal
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, models.StageLead, got.Stage)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(got)
	})

	stored, err := a.CreateDeal(context.Background(), models.Deal{ID: "d-1", Title: "Renewal", Stage: models.StageLead})
	require.NoError(t, err)
	assert.Equal(t, "d-1", stored.ID)
}

func TestUpdateDeal(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/deals/d-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Deal{ID: "d-1", Stage: models.StageWon})
	})

	stored, err := a.UpdateDeal(context.Background(), models.Deal{ID: "d-1", Stage: models.StageWon})
	require.NoError(t, err)
	assert.Equal(t, models.StageWon, stored.Stage)
}

func TestDeleteDeal(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/deals/d-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, a.DeleteDeal(context.Background(), "d-1"))
}
