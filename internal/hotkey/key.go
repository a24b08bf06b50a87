package hotkey

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Key identifies a physical or logical keyboard key. The numeric order is
// only meaningful for the range tests (IsLetter, IsDigit, IsFunction).
type Key uint16

const (
	KeyNone Key = iota
	KeyCancel
	KeyBack
	KeyTab
	KeyClear
	KeyEnter
	KeyPause
	KeyCapsLock
	KeyEscape
	KeySpace
	KeyPageUp
	KeyPageDown
	KeyEnd
	KeyHome
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeySelect
	KeyPrint
	KeyExecute
	KeyPrintScreen
	KeyInsert
	KeyDelete
	KeyHelp

	KeyD0
	KeyD1
	KeyD2
	KeyD3
	KeyD4
	KeyD5
	KeyD6
	KeyD7
	KeyD8
	KeyD9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyLeftMeta
	KeyRightMeta
	KeyApps
	KeySleep

	KeyNumPad0
	KeyNumPad1
	KeyNumPad2
	KeyNumPad3
	KeyNumPad4
	KeyNumPad5
	KeyNumPad6
	KeyNumPad7
	KeyNumPad8
	KeyNumPad9
	KeyMultiply
	KeyAdd
	KeySeparator
	KeySubtract
	KeyDecimal
	KeyDivide

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	KeyNumLock
	KeyScroll

	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt

	KeyVolumeMute
	KeyVolumeDown
	KeyVolumeUp
	KeyMediaNextTrack
	KeyMediaPreviousTrack
	KeyMediaStop
	KeyMediaPlayPause

	KeyOem1
	KeyOemPlus
	KeyOemComma
	KeyOemMinus
	KeyOemPeriod
	KeyOem2
	KeyOem3
	KeyOem4
	KeyOem5
	KeyOem6
	KeyOem7
	KeyOem8
	KeyOem102
	KeyOemClear

	// KeySystem marks an event whose real key was shadowed by a platform
	// key translation (Alt chords, F10). The real key travels in
	// KeyEvent.SystemKey.
	KeySystem

	keyCount
)

// ErrUnknownKey is returned by ParseKey for names that match no key.
var ErrUnknownKey = errors.New("unknown key")

var keyNames [keyCount]string

var keyAliases = map[string]Key{
	"esc":              KeyEscape,
	"return":           KeyEnter,
	"backspace":        KeyBack,
	"bksp":             KeyBack,
	"del":              KeyDelete,
	"ins":              KeyInsert,
	"pgup":             KeyPageUp,
	"pgdn":             KeyPageDown,
	"pgdown":           KeyPageDown,
	"prior":            KeyPageUp,
	"next":             KeyPageDown,
	"capital":          KeyCapsLock,
	"scrolllock":       KeyScroll,
	"snapshot":         KeyPrintScreen,
	"prtsc":            KeyPrintScreen,
	"menu":             KeyApps,
	"lwin":             KeyLeftMeta,
	"rwin":             KeyRightMeta,
	"win":              KeyLeftMeta,
	"super":            KeyLeftMeta,
	"lctrl":            KeyLeftCtrl,
	"rctrl":            KeyRightCtrl,
	"lshift":           KeyLeftShift,
	"rshift":           KeyRightShift,
	"lalt":             KeyLeftAlt,
	"ralt":             KeyRightAlt,
	";":                KeyOem1,
	"semicolon":        KeyOem1,
	"=":                KeyOemPlus,
	"+":                KeyOemPlus,
	"plus":             KeyOemPlus,
	",":                KeyOemComma,
	"comma":            KeyOemComma,
	"-":                KeyOemMinus,
	"minus":            KeyOemMinus,
	".":                KeyOemPeriod,
	"period":           KeyOemPeriod,
	"/":                KeyOem2,
	"slash":            KeyOem2,
	"oemquestion":      KeyOem2,
	"`":                KeyOem3,
	"oemtilde":         KeyOem3,
	"[":                KeyOem4,
	"oemopenbrackets":  KeyOem4,
	"\\":               KeyOem5,
	"oempipe":          KeyOem5,
	"]":                KeyOem6,
	"oemclosebrackets": KeyOem6,
	"'":                KeyOem7,
	"oemquotes":        KeyOem7,
}

var keyByName map[string]Key

func init() {
	named := map[Key]string{
		KeyNone:               "None",
		KeyCancel:             "Cancel",
		KeyBack:               "Back",
		KeyTab:                "Tab",
		KeyClear:              "Clear",
		KeyEnter:              "Enter",
		KeyPause:              "Pause",
		KeyCapsLock:           "CapsLock",
		KeyEscape:             "Escape",
		KeySpace:              "Space",
		KeyPageUp:             "PageUp",
		KeyPageDown:           "PageDown",
		KeyEnd:                "End",
		KeyHome:               "Home",
		KeyLeft:               "Left",
		KeyUp:                 "Up",
		KeyRight:              "Right",
		KeyDown:               "Down",
		KeySelect:             "Select",
		KeyPrint:              "Print",
		KeyExecute:            "Execute",
		KeyPrintScreen:        "PrintScreen",
		KeyInsert:             "Insert",
		KeyDelete:             "Delete",
		KeyHelp:               "Help",
		KeyLeftMeta:           "LeftMeta",
		KeyRightMeta:          "RightMeta",
		KeyApps:               "Apps",
		KeySleep:              "Sleep",
		KeyMultiply:           "Multiply",
		KeyAdd:                "Add",
		KeySeparator:          "Separator",
		KeySubtract:           "Subtract",
		KeyDecimal:            "Decimal",
		KeyDivide:             "Divide",
		KeyNumLock:            "NumLock",
		KeyScroll:             "Scroll",
		KeyLeftShift:          "LeftShift",
		KeyRightShift:         "RightShift",
		KeyLeftCtrl:           "LeftCtrl",
		KeyRightCtrl:          "RightCtrl",
		KeyLeftAlt:            "LeftAlt",
		KeyRightAlt:           "RightAlt",
		KeyVolumeMute:         "VolumeMute",
		KeyVolumeDown:         "VolumeDown",
		KeyVolumeUp:           "VolumeUp",
		KeyMediaNextTrack:     "MediaNextTrack",
		KeyMediaPreviousTrack: "MediaPreviousTrack",
		KeyMediaStop:          "MediaStop",
		KeyMediaPlayPause:     "MediaPlayPause",
		KeyOem1:               "Oem1",
		KeyOemPlus:            "OemPlus",
		KeyOemComma:           "OemComma",
		KeyOemMinus:           "OemMinus",
		KeyOemPeriod:          "OemPeriod",
		KeyOem2:               "Oem2",
		KeyOem3:               "Oem3",
		KeyOem4:               "Oem4",
		KeyOem5:               "Oem5",
		KeyOem6:               "Oem6",
		KeyOem7:               "Oem7",
		KeyOem8:               "Oem8",
		KeyOem102:             "Oem102",
		KeyOemClear:           "OemClear",
		KeySystem:             "System",
	}
	for k, name := range named {
		keyNames[k] = name
	}
	for i := 0; i < 10; i++ {
		keyNames[KeyD0+Key(i)] = "D" + strconv.Itoa(i)
		keyNames[KeyNumPad0+Key(i)] = "NumPad" + strconv.Itoa(i)
	}
	for i := 0; i < 26; i++ {
		keyNames[KeyA+Key(i)] = string(rune('A' + i))
	}
	for i := 0; i < 24; i++ {
		keyNames[KeyF1+Key(i)] = "F" + strconv.Itoa(i+1)
	}

	keyByName = make(map[string]Key, len(keyNames)+len(keyAliases)+10)
	for k, name := range keyNames {
		if name != "" {
			keyByName[strings.ToLower(name)] = Key(k)
		}
	}
	for i := 0; i < 10; i++ {
		keyByName[strconv.Itoa(i)] = KeyD0 + Key(i)
	}
	for alias, k := range keyAliases {
		keyByName[alias] = k
	}
}

// String returns the symbolic name of the key, e.g. "F5", "D1", "LeftCtrl".
func (k Key) String() string {
	if k < keyCount && keyNames[k] != "" {
		return keyNames[k]
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

func (k Key) Valid() bool {
	return k < keyCount
}

func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

func (k Key) IsDigit() bool {
	return k >= KeyD0 && k <= KeyD9
}

// IsFunction reports whether k is one of F1 through F12. F13 and above are
// valid keys but fall outside the function-key whitelist.
func (k Key) IsFunction() bool {
	return k >= KeyF1 && k <= KeyF12
}

func (k Key) IsNumPad() bool {
	return k >= KeyNumPad0 && k <= KeyNumPad9
}

func (k Key) IsMeta() bool {
	return k == KeyLeftMeta || k == KeyRightMeta
}

// IsModifier reports whether k is itself a modifier key (either side).
func (k Key) IsModifier() bool {
	switch k {
	case KeyLeftShift, KeyRightShift,
		KeyLeftCtrl, KeyRightCtrl,
		KeyLeftAlt, KeyRightAlt,
		KeyLeftMeta, KeyRightMeta:
		return true
	}
	return false
}

func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKey resolves a key name case-insensitively. Symbolic names ("F5",
// "PageUp", "NumPad3"), bare digits ("7") and common aliases ("esc",
// "pgdn", "win") are accepted. Unknown names produce an error wrapping
// ErrUnknownKey with the closest known name as a suggestion.
func ParseKey(name string) (Key, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return KeyNone, fmt.Errorf("%w: empty name", ErrUnknownKey)
	}
	lower := strings.ToLower(trimmed)
	if k, ok := keyByName[lower]; ok {
		return k, nil
	}
	if suggestion := suggestKeyName(lower); suggestion != "" {
		return KeyNone, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownKey, trimmed, suggestion)
	}
	return KeyNone, fmt.Errorf("%w: %q", ErrUnknownKey, trimmed)
}

// KnownKeyNames lists the symbolic names of every key except the sentinels.
func KnownKeyNames() []string {
	out := make([]string, 0, len(keyNames))
	for k, name := range keyNames {
		if name == "" || Key(k) == KeyNone || Key(k) == KeySystem {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

const maxSuggestionDistance = 3

func suggestKeyName(lower string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for k, name := range keyNames {
		if name == "" || Key(k) == KeySystem {
			continue
		}
		distance := levenshtein.ComputeDistance(lower, strings.ToLower(name))
		if distance < bestDistance || (distance == bestDistance && name < best) {
			best = name
			bestDistance = distance
		}
	}
	if bestDistance > maxSuggestionDistance {
		return ""
	}
	return best
}
