//go:build windows

package native

import (
	xhotkey "golang.design/x/hotkey"

	"hotkeyedit/internal/hotkey"
)

var modifierMap = map[hotkey.ModifierSet]xhotkey.Modifier{
	hotkey.ModControl: xhotkey.ModCtrl,
	hotkey.ModShift:   xhotkey.ModShift,
	hotkey.ModAlt:     xhotkey.ModAlt,
	hotkey.ModMeta:    xhotkey.ModWin,
}
