package tui

import "github.com/charmbracelet/lipgloss"

// Styles are package-level values so they are built exactly once per process.
var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	fieldErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	sidebarStyle          = lipgloss.NewStyle().Width(sidebarWidth).PaddingRight(2)
	sidebarCollapsedStyle = lipgloss.NewStyle().Width(sidebarCollapsedWidth).PaddingRight(1)

	notifySuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	notifyErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	notifyWarningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	notifyInfoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
)
