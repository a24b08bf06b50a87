package app

import (
	"strings"
	"testing"
	"time"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestToastExpiresAndShowsNextQueued(t *testing.T) {
	now := fixedNow
	m := newTestModel(t, Options{Now: func() time.Time { return now }})
	m.enqueueStartupToast(toastLevelError, "first")
	m.enqueueStartupToast(toastLevelWarning, "second")

	m.maybeShowNextStartupToast()
	if m.toastText != "first" || m.toastLevel != toastLevelError {
		t.Fatalf("unexpected toast %q", m.toastText)
	}
	// Still active: the queue waits.
	send(m, toastExpiredMsg{})
	if m.toastText != "first" {
		t.Fatalf("toast replaced early: %q", m.toastText)
	}

	now = now.Add(toastDuration + time.Millisecond)
	send(m, toastExpiredMsg{})
	if m.toastText != "second" || m.toastLevel != toastLevelWarning {
		t.Fatalf("expected second toast, got %q", m.toastText)
	}
	if len(m.startupToasts) != 0 {
		t.Fatalf("queue not drained")
	}
}

func TestToastLineRightAligned(t *testing.T) {
	m := newTestModel(t, Options{})
	m.showInfoToast("config reloaded")
	line := xansi.Strip(m.toastLine(40))
	if xansi.StringWidth(line) != 40 || !strings.HasSuffix(line, " config reloaded ") {
		t.Fatalf("toast line: %q", line)
	}
	m.clearToast()
	if m.toastLine(40) != "" {
		t.Fatalf("expected no toast after clear")
	}
}

func TestShowToastIgnoresBlankMessages(t *testing.T) {
	m := newTestModel(t, Options{})
	if cmd := m.showErrorToast("   "); cmd != nil || m.toastText != "" {
		t.Fatalf("blank toast should be ignored")
	}
}
