package app

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const toastDuration = 3 * time.Second

type toastLevel int

const (
	toastLevelInfo toastLevel = iota
	toastLevelWarning
	toastLevelError
)

type queuedToast struct {
	level   toastLevel
	message string
}

// toastExpiredMsg wakes the model so an expired toast disappears and the
// next queued one can show.
type toastExpiredMsg struct{}

var toastTickCmd = func() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{} })
}

func (m *Model) showInfoToast(message string) tea.Cmd {
	return m.showToast(toastLevelInfo, message)
}

func (m *Model) showWarningToast(message string) tea.Cmd {
	return m.showToast(toastLevelWarning, message)
}

func (m *Model) showErrorToast(message string) tea.Cmd {
	return m.showToast(toastLevelError, message)
}

func (m *Model) showToast(level toastLevel, message string) tea.Cmd {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}
	m.status = message
	m.toastText = message
	m.toastLevel = level
	m.toastUntil = m.now().Add(toastDuration)
	return toastTickCmd()
}

func (m *Model) clearToast() {
	m.toastText = ""
	m.toastLevel = toastLevelInfo
	m.toastUntil = time.Time{}
}

func (m *Model) enqueueStartupToast(level toastLevel, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	m.startupToasts = append(m.startupToasts, queuedToast{level: level, message: message})
}

// maybeShowNextStartupToast pops the next queued toast once the current
// one has expired.
func (m *Model) maybeShowNextStartupToast() tea.Cmd {
	if len(m.startupToasts) == 0 || m.toastActive(m.now()) {
		return nil
	}
	next := m.startupToasts[0]
	m.startupToasts = m.startupToasts[1:]
	return m.showToast(next.level, next.message)
}

func (m *Model) toastActive(at time.Time) bool {
	if strings.TrimSpace(m.toastText) == "" {
		return false
	}
	if m.toastUntil.IsZero() {
		return true
	}
	return at.Before(m.toastUntil)
}

func (m *Model) toastLine(width int) string {
	if !m.toastActive(m.now()) || width <= 0 {
		return ""
	}
	text := truncateToWidth(m.toastText, max(1, width-4))
	pill := m.toastStyle().Render(" " + text + " ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, pill)
}

func (m *Model) toastStyle() lipgloss.Style {
	switch m.toastLevel {
	case toastLevelWarning:
		return toastWarningStyle
	case toastLevelError:
		return toastErrorStyle
	default:
		return toastInfoStyle
	}
}
