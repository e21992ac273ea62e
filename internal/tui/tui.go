// Package tui implements the terminal user interface of the CRM client on
// top of bubbletea: contact and deal screens plus the shared feedback
// components (modal, toast, loading spinner, sidebar).
package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/akmaldavlatboyev/crm/internal/logger"
	"github.com/akmaldavlatboyev/crm/internal/service"
	"github.com/akmaldavlatboyev/crm/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit reports that the user closed the application.
var ErrUserQuit = errors.New("user quit")

// TUI owns the bubbletea program.
type TUI struct {
	services *service.Services
	opts     Options
	logger   *logger.Logger

	// teaOpts supplements the program options, used by tests to run the
	// program against non-terminal IO.
	teaOpts []tea.ProgramOption

	// mu guards program: Run writes it while the background refresh
	// goroutine reads it through NotifyRefresh.
	mu      sync.Mutex
	program *tea.Program
}

// New constructs the TUI. Run must be called to start it.
func New(services *service.Services, opts Options, log *logger.Logger) *TUI {
	return &TUI{services: services, opts: opts, logger: log}
}

// Run blocks until the user quits or the program fails.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.opts)

	progOpts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.teaOpts...)
	program := tea.NewProgram(model, progOpts...)

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitting {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}
	return nil
}

// NotifyRefresh feeds a background refresh result into the running program.
// Safe to call from any goroutine; a no-op before Run.
func (t *TUI) NotifyRefresh(contacts []models.Contact, err error) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}
	program.Send(contactsRefreshedMsg{contacts: contacts, err: err})
}
