// Package client assembles the CRM client from its parts and runs it.
package client

import (
	"context"
	"errors"

	"github.com/akmaldavlatboyev/crm/internal/adapter"
	"github.com/akmaldavlatboyev/crm/internal/api"
	"github.com/akmaldavlatboyev/crm/internal/config"
	"github.com/akmaldavlatboyev/crm/internal/logger"
	"github.com/akmaldavlatboyev/crm/internal/service"
	"github.com/akmaldavlatboyev/crm/internal/tui"
	"github.com/akmaldavlatboyev/crm/models"
)

// App is the assembled CRM client.
type App struct {
	cfg      *config.ClientConfig
	services *service.Services
	ui       *tui.TUI
	refresh  *service.RefreshJob
	logger   *logger.Logger
}

// NewApp builds the full construction chain: API client, adapter, services
// and UI. It fails if the configuration is unusable.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	apiClient, err := api.New(api.Config{
		BaseURL:        cfg.API.BaseURL,
		RequestTimeout: cfg.API.RequestTimeout,
	}, log)
	if err != nil {
		return nil, err
	}

	crm := adapter.NewHTTPCRMAdapter(apiClient)
	services, err := service.NewServices(crm, log)
	if err != nil {
		return nil, err
	}

	ui := tui.New(services, tui.Options{
		NotificationDuration: cfg.UI.NotificationDuration,
		SidebarCollapsed:     cfg.UI.SidebarCollapsed,
		Locale:               cfg.App.Locale,
	}, log)

	app := &App{
		cfg:      cfg,
		services: services,
		ui:       ui,
		logger:   log,
	}
	app.refresh = service.NewRefreshJob(services.Contacts, app.onRefresh)
	return app, nil
}

// Run starts the background refresh job and blocks in the UI loop until the
// user quits.
func (a *App) Run() error {
	ctx := context.Background()

	a.refresh.Start(ctx, a.cfg.UI.RefreshInterval)
	defer a.refresh.Stop()

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}
	return nil
}

func (a *App) onRefresh(contacts []models.Contact, err error) {
	if err != nil {
		a.logger.Warn().Err(err).Msg("background refresh failed")
	}
	a.ui.NotifyRefresh(contacts, err)
}
