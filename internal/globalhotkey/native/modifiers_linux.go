//go:build linux

package native

import (
	xhotkey "golang.design/x/hotkey"

	"hotkeyedit/internal/hotkey"
)

// X11 maps Alt to Mod1 and Super to Mod4 on common layouts.
var modifierMap = map[hotkey.ModifierSet]xhotkey.Modifier{
	hotkey.ModControl: xhotkey.ModCtrl,
	hotkey.ModShift:   xhotkey.ModShift,
	hotkey.ModAlt:     xhotkey.Mod1,
	hotkey.ModMeta:    xhotkey.Mod4,
}
