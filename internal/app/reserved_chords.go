package app

import (
	"fmt"
	"strings"

	"hotkeyedit/internal/hotkey"
)

// captureCommands stay bound while the editor is capturing, so their
// keys never reach the capture engine.
var captureCommands = []string{KeyCommandReleaseFocus, KeyCommandForceQuit}

// reservedCaptureChords returns the host keys that policy would accept as
// a hotkey. Those chords cannot be recorded.
func reservedCaptureChords(policy hotkey.Policy, bindings *Keybindings) []string {
	var out []string
	for _, command := range captureCommands {
		key := bindings.KeyFor(command, defaultKeybindingByCommand[command])
		h, err := hotkey.ParseHotKey(key)
		if err != nil || h.IsNone() {
			continue
		}
		decision := hotkey.Decide(hotkey.KeyEvent{Key: h.Key, Modifiers: h.Modifiers}, policy)
		if decision.Outcome == hotkey.Accept {
			out = append(out, key)
		}
	}
	return out
}

func reservedChordsMessage(chords []string) string {
	if len(chords) == 0 {
		return ""
	}
	return fmt.Sprintf("%s reserved while capturing, cannot be recorded", strings.Join(chords, ", "))
}
