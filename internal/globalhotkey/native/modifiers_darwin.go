//go:build darwin

package native

import (
	xhotkey "golang.design/x/hotkey"

	"hotkeyedit/internal/hotkey"
)

var modifierMap = map[hotkey.ModifierSet]xhotkey.Modifier{
	hotkey.ModControl: xhotkey.ModCtrl,
	hotkey.ModShift:   xhotkey.ModShift,
	hotkey.ModAlt:     xhotkey.ModOption,
	hotkey.ModMeta:    xhotkey.ModCmd,
}
