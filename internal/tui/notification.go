package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// notificationLevel selects the toast's style.
type notificationLevel string

const (
	notifySuccess notificationLevel = "success"
	notifyError   notificationLevel = "error"
	notifyWarning notificationLevel = "warning"
	notifyInfo    notificationLevel = "info"
)

// defaultNotificationDuration is used when show is called with a
// non-positive duration.
const defaultNotificationDuration = 3 * time.Second

// notificationModel is a transient toast. Each show replaces the previous
// toast and arms a fresh dismissal timer tagged with the new toast's id, so
// the timer of a replaced toast can never clear its successor.
type notificationModel struct {
	id       string
	message  string
	level    notificationLevel
	duration time.Duration
}

func newNotificationModel(duration time.Duration) notificationModel {
	if duration <= 0 {
		duration = defaultNotificationDuration
	}
	return notificationModel{duration: duration}
}

// visible reports whether a toast is currently shown.
func (m notificationModel) visible() bool {
	return m.id != ""
}

// show displays a toast and returns the command that will dismiss it after
// the model's duration.
func (m notificationModel) show(message string, level notificationLevel) (notificationModel, tea.Cmd) {
	m.id = uuid.NewString()
	m.message = message
	m.level = level

	id := m.id
	return m, tea.Tick(m.duration, func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: id}
	})
}

// expire clears the toast if the expiry belongs to it. Expiries from
// replaced toasts are ignored.
func (m notificationModel) expire(msg notificationExpiredMsg) notificationModel {
	if msg.id != m.id {
		return m
	}
	m.id = ""
	m.message = ""
	return m
}

func (m notificationModel) View() string {
	if !m.visible() {
		return ""
	}

	switch m.level {
	case notifySuccess:
		return notifySuccessStyle.Render(m.message)
	case notifyError:
		return notifyErrorStyle.Render(m.message)
	case notifyWarning:
		return notifyWarningStyle.Render(m.message)
	default:
		return notifyInfoStyle.Render(m.message)
	}
}
