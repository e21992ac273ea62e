package tui

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akmaldavlatboyev/crm/internal/adapter"
	"github.com/akmaldavlatboyev/crm/internal/api"
	"github.com/akmaldavlatboyev/crm/internal/logger"
	"github.com/akmaldavlatboyev/crm/internal/service"
	"github.com/akmaldavlatboyev/crm/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func newTestTUI(t *testing.T) *TUI {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	client, err := api.New(api.Config{BaseURL: srv.URL}, logger.Nop())
	require.NoError(t, err)

	services, err := service.NewServices(adapter.NewHTTPCRMAdapter(client), logger.Nop())
	require.NoError(t, err)

	ui := New(services, Options{}, logger.Nop())
	ui.teaOpts = []tea.ProgramOption{
		tea.WithInput(&bytes.Buffer{}),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	}
	return ui
}

func TestTUI_NotifyRefreshBeforeRun(t *testing.T) {
	ui := newTestTUI(t)

	// must be a no-op, not a panic or a hang
	ui.NotifyRefresh([]models.Contact{{ID: "c-1"}}, nil)
}

func TestTUI_NotifyRefreshDuringRun(t *testing.T) {
	ui := newTestTUI(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- ui.Run(ctx) }()

	// hammer the refresh path while Run publishes the program handle
	for i := 0; i < 50; i++ {
		ui.NotifyRefresh([]models.Contact{{ID: "c-1", Name: "Alice"}}, nil)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}
