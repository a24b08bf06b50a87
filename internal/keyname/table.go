// Package keyname resolves hotkey.Key values to display labels.
package keyname

import (
	"fmt"
	"strconv"

	"hotkeyedit/internal/hotkey"
)

// Table is a static KeyNameResolver. Keys without an entry are misses.
type Table map[hotkey.Key]string

func (t Table) KeyName(k hotkey.Key) (string, bool) {
	name, ok := t[k]
	return name, ok && name != ""
}

// Clone returns an independent copy of t.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// WithOverrides returns a copy of t with labels replaced by overrides,
// which are keyed by key name ("F5", "pgdn", "D1").
func (t Table) WithOverrides(overrides map[string]string) (Table, error) {
	out := t.Clone()
	for name, label := range overrides {
		k, err := hotkey.ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("key label override: %w", err)
		}
		out[k] = label
	}
	return out, nil
}

// English returns the US-English labels used when the platform cannot
// name a key.
func English() Table {
	t := Table{
		hotkey.KeyCancel:             "Break",
		hotkey.KeyBack:               "Backspace",
		hotkey.KeyTab:                "Tab",
		hotkey.KeyClear:              "Clear",
		hotkey.KeyEnter:              "Enter",
		hotkey.KeyPause:              "Pause",
		hotkey.KeyCapsLock:           "Caps Lock",
		hotkey.KeyEscape:             "Esc",
		hotkey.KeySpace:              "Space",
		hotkey.KeyPageUp:             "Page Up",
		hotkey.KeyPageDown:           "Page Down",
		hotkey.KeyEnd:                "End",
		hotkey.KeyHome:               "Home",
		hotkey.KeyLeft:               "Left",
		hotkey.KeyUp:                 "Up",
		hotkey.KeyRight:              "Right",
		hotkey.KeyDown:               "Down",
		hotkey.KeySelect:             "Select",
		hotkey.KeyPrint:              "Print",
		hotkey.KeyExecute:            "Execute",
		hotkey.KeyPrintScreen:        "Prnt Scrn",
		hotkey.KeyInsert:             "Insert",
		hotkey.KeyDelete:             "Delete",
		hotkey.KeyHelp:               "Help",
		hotkey.KeyLeftMeta:           "Win",
		hotkey.KeyRightMeta:          "Right Win",
		hotkey.KeyApps:               "Application",
		hotkey.KeySleep:              "Sleep",
		hotkey.KeyMultiply:           "Num *",
		hotkey.KeyAdd:                "Num +",
		hotkey.KeySeparator:          "Num Separator",
		hotkey.KeySubtract:           "Num -",
		hotkey.KeyDecimal:            "Num Del",
		hotkey.KeyDivide:             "Num /",
		hotkey.KeyNumLock:            "Num Lock",
		hotkey.KeyScroll:             "Scroll Lock",
		hotkey.KeyLeftShift:          "Shift",
		hotkey.KeyRightShift:         "Right Shift",
		hotkey.KeyLeftCtrl:           "Ctrl",
		hotkey.KeyRightCtrl:          "Right Ctrl",
		hotkey.KeyLeftAlt:            "Alt",
		hotkey.KeyRightAlt:           "Right Alt",
		hotkey.KeyVolumeMute:         "Mute",
		hotkey.KeyVolumeDown:         "Volume Down",
		hotkey.KeyVolumeUp:           "Volume Up",
		hotkey.KeyMediaNextTrack:     "Next Track",
		hotkey.KeyMediaPreviousTrack: "Previous Track",
		hotkey.KeyMediaStop:          "Stop",
		hotkey.KeyMediaPlayPause:     "Play/Pause",
		hotkey.KeyOem1:               ";",
		hotkey.KeyOemPlus:            "=",
		hotkey.KeyOemComma:           ",",
		hotkey.KeyOemMinus:           "-",
		hotkey.KeyOemPeriod:          ".",
		hotkey.KeyOem2:               "/",
		hotkey.KeyOem3:               "`",
		hotkey.KeyOem4:               "[",
		hotkey.KeyOem5:               "\\",
		hotkey.KeyOem6:               "]",
		hotkey.KeyOem7:               "'",
		hotkey.KeyOem102:             "\\",
	}
	for i := 0; i < 10; i++ {
		t[hotkey.KeyD0+hotkey.Key(i)] = strconv.Itoa(i)
		t[hotkey.KeyNumPad0+hotkey.Key(i)] = "Num " + strconv.Itoa(i)
	}
	for i := 0; i < 26; i++ {
		t[hotkey.KeyA+hotkey.Key(i)] = string(rune('A' + i))
	}
	for i := 0; i < 24; i++ {
		t[hotkey.KeyF1+hotkey.Key(i)] = "F" + strconv.Itoa(i+1)
	}
	return t
}

// Chain tries each resolver in order and returns the first hit.
func Chain(resolvers ...hotkey.KeyNameResolver) hotkey.KeyNameResolver {
	return hotkey.ResolverFunc(func(k hotkey.Key) (string, bool) {
		for _, r := range resolvers {
			if r == nil {
				continue
			}
			if name, ok := r.KeyName(k); ok {
				return name, true
			}
		}
		return "", false
	})
}

// Default returns the platform resolver backed by the English table.
func Default() hotkey.KeyNameResolver {
	return Chain(Platform(), English())
}
