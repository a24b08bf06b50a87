package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"
)

func stubClipboard(t *testing.T, system, osc func(string) error) {
	t.Helper()
	origWriteAll := clipboardWriteAll
	origWriteOSC52 := clipboardWriteOSC52
	t.Cleanup(func() {
		clipboardWriteAll = origWriteAll
		clipboardWriteOSC52 = origWriteOSC52
	})
	clipboardWriteAll = system
	clipboardWriteOSC52 = osc
}

func TestCopyTextToClipboardUsesSystemBackend(t *testing.T) {
	fallbackCalled := false
	stubClipboard(t, func(string) error { return nil }, func(string) error {
		fallbackCalled = true
		return nil
	})

	method, err := copyTextToClipboard("Ctrl+Alt+Shift+F5")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if method != clipboardMethodSystem {
		t.Fatalf("expected system method, got %v", method)
	}
	if fallbackCalled {
		t.Fatalf("expected no OSC52 fallback call")
	}
}

func TestCopyTextToClipboardFallsBackToOSC52(t *testing.T) {
	var copied string
	stubClipboard(t, func(string) error { return errors.New("exit status 1") }, func(text string) error {
		copied = text
		return nil
	})

	method, err := copyTextToClipboard("Ctrl+K")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if method != clipboardMethodOSC52 || copied != "Ctrl+K" {
		t.Fatalf("unexpected fallback: method=%v copied=%q", method, copied)
	}
}

func TestCopyTextToClipboardHelpfulErrorWhenDisplayMissing(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	stubClipboard(t,
		func(string) error { return errors.New("exit status 1") },
		func(string) error { return errors.New("open /dev/tty: no such device") },
	)

	_, err := copyTextToClipboard("Ctrl+K")
	if err == nil {
		t.Fatalf("expected copy error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "no GUI clipboard available") || !strings.Contains(msg, "OSC52 fallback failed") {
		t.Fatalf("unexpected error text: %q", msg)
	}
}

func TestWriteOSC52ClipboardReportsTTYError(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("HOTKEYEDIT_DISABLE_OSC52", "")
	origOpenTTY := openTTYForWrite
	t.Cleanup(func() { openTTYForWrite = origOpenTTY })
	openTTYForWrite = func() (io.WriteCloser, error) {
		return nil, os.ErrNotExist
	}

	err := writeOSC52Clipboard("Ctrl+K")
	if err == nil || !strings.Contains(err.Error(), "open /dev/tty") {
		t.Fatalf("expected /dev/tty error, got %v", err)
	}
}

func TestShouldAttemptOSC52HonorsDisableEnv(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("HOTKEYEDIT_DISABLE_OSC52", "yes")
	if shouldAttemptOSC52() {
		t.Fatalf("expected OSC52 disabled")
	}
	t.Setenv("HOTKEYEDIT_DISABLE_OSC52", "")
	t.Setenv("TERM", "dumb")
	if shouldAttemptOSC52() {
		t.Fatalf("expected OSC52 disabled for dumb terminal")
	}
}

func TestWriteOSC52SequenceWrapsForTmux(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("TMUX", "/tmp/tmux-0/default,1,0")
	var buf bytes.Buffer
	if err := writeOSC52Sequence(&buf, "Ctrl+K"); err != nil {
		t.Fatalf("writeOSC52Sequence: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "\x1b]52;") != 2 {
		t.Fatalf("expected plain and tmux-wrapped sequences, got %q", out)
	}
	if !strings.Contains(out, "\x1bPtmux;") {
		t.Fatalf("expected tmux passthrough, got %q", out)
	}
}

func TestCopyTextToClipboardContextHonorsDeadline(t *testing.T) {
	stubClipboard(t, func(string) error {
		time.Sleep(40 * time.Millisecond)
		return nil
	}, func(string) error { return nil })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := copyTextToClipboardContext(ctx, "Ctrl+K")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
