package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// loadingModel wraps a spinner shown while a blocking operation runs. Input
// is suppressed by the app model while active. The caller owns whatever the
// spinner replaced and restores it after stop.
type loadingModel struct {
	spinner spinner.Model
	label   string
	active  bool
}

func newLoadingModel() loadingModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return loadingModel{spinner: s}
}

// start activates the spinner and returns the command that drives its ticks.
func (m loadingModel) start(label string) (loadingModel, tea.Cmd) {
	m.active = true
	m.label = label
	return m, m.spinner.Tick
}

// stop deactivates the spinner. Pending tick messages are dropped by update.
func (m loadingModel) stop() loadingModel {
	m.active = false
	m.label = ""
	return m
}

// update advances the spinner animation. Ticks arriving after stop are
// ignored so the spinner does not keep scheduling itself.
func (m loadingModel) update(msg spinner.TickMsg) (loadingModel, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m loadingModel) View() string {
	if !m.active {
		return ""
	}
	if m.label == "" {
		return m.spinner.View()
	}
	return m.spinner.View() + " " + m.label
}
