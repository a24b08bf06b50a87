package editor

import (
	tea "charm.land/bubbletea/v2"

	"hotkeyedit/internal/hotkey"
)

var specialKeys = map[rune]hotkey.Key{
	tea.KeyUp:       hotkey.KeyUp,
	tea.KeyDown:     hotkey.KeyDown,
	tea.KeyRight:    hotkey.KeyRight,
	tea.KeyLeft:     hotkey.KeyLeft,
	tea.KeyInsert:   hotkey.KeyInsert,
	tea.KeyDelete:   hotkey.KeyDelete,
	tea.KeySelect:   hotkey.KeySelect,
	tea.KeyPgUp:     hotkey.KeyPageUp,
	tea.KeyPgDown:   hotkey.KeyPageDown,
	tea.KeyHome:     hotkey.KeyHome,
	tea.KeyEnd:      hotkey.KeyEnd,
	tea.KeyKpEnter:  hotkey.KeyEnter,
	tea.KeyKpUp:     hotkey.KeyUp,
	tea.KeyKpDown:   hotkey.KeyDown,
	tea.KeyKpLeft:   hotkey.KeyLeft,
	tea.KeyKpRight:  hotkey.KeyRight,
	tea.KeyKpPgUp:   hotkey.KeyPageUp,
	tea.KeyKpPgDown: hotkey.KeyPageDown,
	tea.KeyKpHome:   hotkey.KeyHome,
	tea.KeyKpEnd:    hotkey.KeyEnd,
	tea.KeyKpInsert: hotkey.KeyInsert,
	tea.KeyKpDelete: hotkey.KeyDelete,

	tea.KeyKpMultiply: hotkey.KeyMultiply,
	tea.KeyKpPlus:     hotkey.KeyAdd,
	tea.KeyKpSep:      hotkey.KeySeparator,
	tea.KeyKpMinus:    hotkey.KeySubtract,
	tea.KeyKpDecimal:  hotkey.KeyDecimal,
	tea.KeyKpDivide:   hotkey.KeyDivide,

	tea.KeyCapsLock:    hotkey.KeyCapsLock,
	tea.KeyScrollLock:  hotkey.KeyScroll,
	tea.KeyNumLock:     hotkey.KeyNumLock,
	tea.KeyPrintScreen: hotkey.KeyPrintScreen,
	tea.KeyPause:       hotkey.KeyPause,
	tea.KeyMenu:        hotkey.KeyApps,

	tea.KeyMediaPlayPause: hotkey.KeyMediaPlayPause,
	tea.KeyMediaStop:      hotkey.KeyMediaStop,
	tea.KeyMediaNext:      hotkey.KeyMediaNextTrack,
	tea.KeyMediaPrev:      hotkey.KeyMediaPreviousTrack,
	tea.KeyLowerVol:       hotkey.KeyVolumeDown,
	tea.KeyRaiseVol:       hotkey.KeyVolumeUp,
	tea.KeyMute:           hotkey.KeyVolumeMute,

	tea.KeyLeftShift:  hotkey.KeyLeftShift,
	tea.KeyRightShift: hotkey.KeyRightShift,
	tea.KeyLeftCtrl:   hotkey.KeyLeftCtrl,
	tea.KeyRightCtrl:  hotkey.KeyRightCtrl,
	tea.KeyLeftAlt:    hotkey.KeyLeftAlt,
	tea.KeyRightAlt:   hotkey.KeyRightAlt,
	tea.KeyLeftMeta:   hotkey.KeyLeftAlt,
	tea.KeyRightMeta:  hotkey.KeyRightAlt,
	tea.KeyLeftSuper:  hotkey.KeyLeftMeta,
	tea.KeyRightSuper: hotkey.KeyRightMeta,

	tea.KeyBackspace: hotkey.KeyBack,
	tea.KeyTab:       hotkey.KeyTab,
	tea.KeyEnter:     hotkey.KeyEnter,
	tea.KeyEscape:    hotkey.KeyEscape,
	tea.KeySpace:     hotkey.KeySpace,
}

var punctuationKeys = map[rune]hotkey.Key{
	';':  hotkey.KeyOem1,
	'=':  hotkey.KeyOemPlus,
	',':  hotkey.KeyOemComma,
	'-':  hotkey.KeyOemMinus,
	'.':  hotkey.KeyOemPeriod,
	'/':  hotkey.KeyOem2,
	'`':  hotkey.KeyOem3,
	'[':  hotkey.KeyOem4,
	'\\': hotkey.KeyOem5,
	']':  hotkey.KeyOem6,
	'\'': hotkey.KeyOem7,
}

// shiftedKeys maps US-layout shifted characters back to their key. Used
// when the terminal reports only the produced character.
var shiftedKeys = map[rune]hotkey.Key{
	')': hotkey.KeyD0,
	'!': hotkey.KeyD1,
	'@': hotkey.KeyD2,
	'#': hotkey.KeyD3,
	'$': hotkey.KeyD4,
	'%': hotkey.KeyD5,
	'^': hotkey.KeyD6,
	'&': hotkey.KeyD7,
	'*': hotkey.KeyD8,
	'(': hotkey.KeyD9,
	':': hotkey.KeyOem1,
	'+': hotkey.KeyOemPlus,
	'<': hotkey.KeyOemComma,
	'_': hotkey.KeyOemMinus,
	'>': hotkey.KeyOemPeriod,
	'?': hotkey.KeyOem2,
	'~': hotkey.KeyOem3,
	'{': hotkey.KeyOem4,
	'|': hotkey.KeyOem5,
	'}': hotkey.KeyOem6,
	'"': hotkey.KeyOem7,
}

// TranslateKey converts a terminal key event into a capture event. The
// terminal's Super modifier becomes Meta; its xterm Meta is folded into
// Alt. Keys the capture model has no name for translate to KeyNone.
func TranslateKey(k tea.Key) hotkey.KeyEvent {
	mods := translateMods(k.Mod)
	key, shifted := translateCode(k)
	if shifted {
		mods |= hotkey.ModShift
	}
	mods |= hotkey.ModifierForKey(key)
	return hotkey.KeyEvent{Key: key, Modifiers: mods}
}

func translateMods(mod tea.KeyMod) hotkey.ModifierSet {
	var mods hotkey.ModifierSet
	if mod&tea.ModCtrl != 0 {
		mods |= hotkey.ModControl
	}
	if mod&(tea.ModAlt|tea.ModMeta) != 0 {
		mods |= hotkey.ModAlt
	}
	if mod&tea.ModShift != 0 {
		mods |= hotkey.ModShift
	}
	if mod&tea.ModSuper != 0 {
		mods |= hotkey.ModMeta
	}
	return mods
}

func translateCode(k tea.Key) (hotkey.Key, bool) {
	code := k.Code
	if k.BaseCode != 0 {
		code = k.BaseCode
	}
	if key, ok := specialKeys[code]; ok {
		return key, false
	}
	if code >= tea.KeyF1 && code <= tea.KeyF24 {
		return hotkey.KeyF1 + hotkey.Key(code-tea.KeyF1), false
	}
	if code >= tea.KeyKp0 && code <= tea.KeyKp9 {
		return hotkey.KeyNumPad0 + hotkey.Key(code-tea.KeyKp0), false
	}
	return translateRune(code)
}

func translateRune(r rune) (hotkey.Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return hotkey.KeyA + hotkey.Key(r-'a'), false
	case r >= 'A' && r <= 'Z':
		return hotkey.KeyA + hotkey.Key(r-'A'), true
	case r >= '0' && r <= '9':
		return hotkey.KeyD0 + hotkey.Key(r-'0'), false
	}
	if key, ok := punctuationKeys[r]; ok {
		return key, false
	}
	if key, ok := shiftedKeys[r]; ok {
		return key, true
	}
	return hotkey.KeyNone, false
}
