package app

import (
	"strings"
	"testing"

	"hotkeyedit/internal/hotkey"
)

func TestReservedCaptureChords(t *testing.T) {
	ctrlOnly := hotkey.DefaultPolicy()
	ctrlOnly.MinRequired = hotkey.ModControl
	cases := []struct {
		name     string
		policy   hotkey.Policy
		bindings *Keybindings
		want     string
	}{
		{name: "default policy", policy: hotkey.DefaultPolicy(), bindings: DefaultKeybindings(), want: ""},
		{name: "ctrl only", policy: ctrlOnly, bindings: DefaultKeybindings(), want: "ctrl+g,ctrl+c"},
		{
			name:     "rebound release",
			policy:   ctrlOnly,
			bindings: NewKeybindings(map[string]string{KeyCommandReleaseFocus: "f1"}),
			want:     "ctrl+c",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := strings.Join(reservedCaptureChords(tc.policy, tc.bindings), ",")
			if got != tc.want {
				t.Fatalf("reserved: got=%q want=%q", got, tc.want)
			}
		})
	}
}

func TestReservedChordsMessage(t *testing.T) {
	if msg := reservedChordsMessage(nil); msg != "" {
		t.Fatalf("expected no message, got %q", msg)
	}
	if msg := reservedChordsMessage([]string{"ctrl+c"}); msg != "ctrl+c reserved while capturing, cannot be recorded" {
		t.Fatalf("message: got=%q", msg)
	}
}
