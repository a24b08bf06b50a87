package keyname

import "hotkeyedit/internal/hotkey"

// Windows virtual-key codes for every key the capture engine knows about.
var virtualKeys = map[hotkey.Key]uint32{
	hotkey.KeyCancel:             0x03,
	hotkey.KeyBack:               0x08,
	hotkey.KeyTab:                0x09,
	hotkey.KeyClear:              0x0C,
	hotkey.KeyEnter:              0x0D,
	hotkey.KeyPause:              0x13,
	hotkey.KeyCapsLock:           0x14,
	hotkey.KeyEscape:             0x1B,
	hotkey.KeySpace:              0x20,
	hotkey.KeyPageUp:             0x21,
	hotkey.KeyPageDown:           0x22,
	hotkey.KeyEnd:                0x23,
	hotkey.KeyHome:               0x24,
	hotkey.KeyLeft:               0x25,
	hotkey.KeyUp:                 0x26,
	hotkey.KeyRight:              0x27,
	hotkey.KeyDown:               0x28,
	hotkey.KeySelect:             0x29,
	hotkey.KeyPrint:              0x2A,
	hotkey.KeyExecute:            0x2B,
	hotkey.KeyPrintScreen:        0x2C,
	hotkey.KeyInsert:             0x2D,
	hotkey.KeyDelete:             0x2E,
	hotkey.KeyHelp:               0x2F,
	hotkey.KeyLeftMeta:           0x5B,
	hotkey.KeyRightMeta:          0x5C,
	hotkey.KeyApps:               0x5D,
	hotkey.KeySleep:              0x5F,
	hotkey.KeyMultiply:           0x6A,
	hotkey.KeyAdd:                0x6B,
	hotkey.KeySeparator:          0x6C,
	hotkey.KeySubtract:           0x6D,
	hotkey.KeyDecimal:            0x6E,
	hotkey.KeyDivide:             0x6F,
	hotkey.KeyNumLock:            0x90,
	hotkey.KeyScroll:             0x91,
	hotkey.KeyLeftShift:          0xA0,
	hotkey.KeyRightShift:         0xA1,
	hotkey.KeyLeftCtrl:           0xA2,
	hotkey.KeyRightCtrl:          0xA3,
	hotkey.KeyLeftAlt:            0xA4,
	hotkey.KeyRightAlt:           0xA5,
	hotkey.KeyVolumeMute:         0xAD,
	hotkey.KeyVolumeDown:         0xAE,
	hotkey.KeyVolumeUp:           0xAF,
	hotkey.KeyMediaNextTrack:     0xB0,
	hotkey.KeyMediaPreviousTrack: 0xB1,
	hotkey.KeyMediaStop:          0xB2,
	hotkey.KeyMediaPlayPause:     0xB3,
	hotkey.KeyOem1:               0xBA,
	hotkey.KeyOemPlus:            0xBB,
	hotkey.KeyOemComma:           0xBC,
	hotkey.KeyOemMinus:           0xBD,
	hotkey.KeyOemPeriod:          0xBE,
	hotkey.KeyOem2:               0xBF,
	hotkey.KeyOem3:               0xC0,
	hotkey.KeyOem4:               0xDB,
	hotkey.KeyOem5:               0xDC,
	hotkey.KeyOem6:               0xDD,
	hotkey.KeyOem7:               0xDE,
	hotkey.KeyOem8:               0xDF,
	hotkey.KeyOem102:             0xE2,
	hotkey.KeyOemClear:           0xFE,
}

func init() {
	for i := 0; i < 10; i++ {
		virtualKeys[hotkey.KeyD0+hotkey.Key(i)] = 0x30 + uint32(i)
		virtualKeys[hotkey.KeyNumPad0+hotkey.Key(i)] = 0x60 + uint32(i)
	}
	for i := 0; i < 26; i++ {
		virtualKeys[hotkey.KeyA+hotkey.Key(i)] = 0x41 + uint32(i)
	}
	for i := 0; i < 24; i++ {
		virtualKeys[hotkey.KeyF1+hotkey.Key(i)] = 0x70 + uint32(i)
	}
}

// VirtualKey returns the Windows virtual-key code for k.
func VirtualKey(k hotkey.Key) (uint32, bool) {
	vk, ok := virtualKeys[k]
	return vk, ok
}

const extendedKeyFlag = 0x1000000

// keyNameParam builds the lParam GetKeyNameText expects: the scan code in
// the high word plus the extended-key bit for the navigation cluster and
// NumLock, whose scan codes collide with numeric-pad keys otherwise.
func keyNameParam(vk, scan uint32) int32 {
	param := int32(scan << 16)
	if isExtendedVirtualKey(vk & 0xffff) {
		param |= extendedKeyFlag
	}
	return param
}

func isExtendedVirtualKey(vk uint32) bool {
	switch {
	case vk == 0x2D, vk == 0x2E, vk == 0x90:
		return true
	case vk >= 0x21 && vk <= 0x28:
		return true
	}
	return false
}
