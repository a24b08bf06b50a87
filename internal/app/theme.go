package app

import (
	"charm.land/lipgloss/v2"

	"hotkeyedit/internal/hotkey"
)

var (
	headerStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dividerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	policyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	logTimeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true)
	outcomeAccept     = lipgloss.NewStyle().Foreground(lipgloss.Color("70")).Bold(true)
	outcomeClear      = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	outcomeReject     = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	outcomeIgnore     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpFrameStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1)
	toastInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Bold(true)
	toastWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("136")).Bold(true)
	toastErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
)

func outcomeStyle(outcome hotkey.Outcome) lipgloss.Style {
	switch outcome {
	case hotkey.Accept:
		return outcomeAccept
	case hotkey.Clear:
		return outcomeClear
	case hotkey.Reject:
		return outcomeReject
	default:
		return outcomeIgnore
	}
}
