package native

import (
	xhotkey "golang.design/x/hotkey"

	"hotkeyedit/internal/hotkey"
)

// keys covers the keys golang.design/x/hotkey names on every platform.
var keys = map[hotkey.Key]xhotkey.Key{
	hotkey.KeySpace:  xhotkey.KeySpace,
	hotkey.KeyEnter:  xhotkey.KeyReturn,
	hotkey.KeyEscape: xhotkey.KeyEscape,
	hotkey.KeyDelete: xhotkey.KeyDelete,
	hotkey.KeyTab:    xhotkey.KeyTab,
	hotkey.KeyLeft:   xhotkey.KeyLeft,
	hotkey.KeyRight:  xhotkey.KeyRight,
	hotkey.KeyUp:     xhotkey.KeyUp,
	hotkey.KeyDown:   xhotkey.KeyDown,

	hotkey.KeyD0: xhotkey.Key0,
	hotkey.KeyD1: xhotkey.Key1,
	hotkey.KeyD2: xhotkey.Key2,
	hotkey.KeyD3: xhotkey.Key3,
	hotkey.KeyD4: xhotkey.Key4,
	hotkey.KeyD5: xhotkey.Key5,
	hotkey.KeyD6: xhotkey.Key6,
	hotkey.KeyD7: xhotkey.Key7,
	hotkey.KeyD8: xhotkey.Key8,
	hotkey.KeyD9: xhotkey.Key9,

	hotkey.KeyA: xhotkey.KeyA,
	hotkey.KeyB: xhotkey.KeyB,
	hotkey.KeyC: xhotkey.KeyC,
	hotkey.KeyD: xhotkey.KeyD,
	hotkey.KeyE: xhotkey.KeyE,
	hotkey.KeyF: xhotkey.KeyF,
	hotkey.KeyG: xhotkey.KeyG,
	hotkey.KeyH: xhotkey.KeyH,
	hotkey.KeyI: xhotkey.KeyI,
	hotkey.KeyJ: xhotkey.KeyJ,
	hotkey.KeyK: xhotkey.KeyK,
	hotkey.KeyL: xhotkey.KeyL,
	hotkey.KeyM: xhotkey.KeyM,
	hotkey.KeyN: xhotkey.KeyN,
	hotkey.KeyO: xhotkey.KeyO,
	hotkey.KeyP: xhotkey.KeyP,
	hotkey.KeyQ: xhotkey.KeyQ,
	hotkey.KeyR: xhotkey.KeyR,
	hotkey.KeyS: xhotkey.KeyS,
	hotkey.KeyT: xhotkey.KeyT,
	hotkey.KeyU: xhotkey.KeyU,
	hotkey.KeyV: xhotkey.KeyV,
	hotkey.KeyW: xhotkey.KeyW,
	hotkey.KeyX: xhotkey.KeyX,
	hotkey.KeyY: xhotkey.KeyY,
	hotkey.KeyZ: xhotkey.KeyZ,

	hotkey.KeyF1:  xhotkey.KeyF1,
	hotkey.KeyF2:  xhotkey.KeyF2,
	hotkey.KeyF3:  xhotkey.KeyF3,
	hotkey.KeyF4:  xhotkey.KeyF4,
	hotkey.KeyF5:  xhotkey.KeyF5,
	hotkey.KeyF6:  xhotkey.KeyF6,
	hotkey.KeyF7:  xhotkey.KeyF7,
	hotkey.KeyF8:  xhotkey.KeyF8,
	hotkey.KeyF9:  xhotkey.KeyF9,
	hotkey.KeyF10: xhotkey.KeyF10,
	hotkey.KeyF11: xhotkey.KeyF11,
	hotkey.KeyF12: xhotkey.KeyF12,
	hotkey.KeyF13: xhotkey.KeyF13,
	hotkey.KeyF14: xhotkey.KeyF14,
	hotkey.KeyF15: xhotkey.KeyF15,
	hotkey.KeyF16: xhotkey.KeyF16,
	hotkey.KeyF17: xhotkey.KeyF17,
	hotkey.KeyF18: xhotkey.KeyF18,
	hotkey.KeyF19: xhotkey.KeyF19,
	hotkey.KeyF20: xhotkey.KeyF20,
}
