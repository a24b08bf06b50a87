//go:build windows

package keyname

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"hotkeyedit/internal/hotkey"
)

var (
	user32DLL           = windows.NewLazySystemDLL("user32.dll")
	procMapVirtualKeyW  = user32DLL.NewProc("MapVirtualKeyW")
	procGetKeyNameTextW = user32DLL.NewProc("GetKeyNameTextW")
)

const (
	// MAPVK_VK_TO_VSC translates a virtual-key code into a scan code.
	mapvkVKToVSC  = 0
	keyNameBufLen = 64
)

type nativeResolver struct{}

// Platform returns a resolver that asks user32 for the keyboard layout's
// localized key label.
func Platform() hotkey.KeyNameResolver {
	if procMapVirtualKeyW.Find() != nil || procGetKeyNameTextW.Find() != nil {
		return nil
	}
	return nativeResolver{}
}

func (nativeResolver) KeyName(k hotkey.Key) (string, bool) {
	vk, ok := VirtualKey(k)
	if !ok {
		return "", false
	}
	vk &= 0xffff
	scan, _, _ := procMapVirtualKeyW.Call(uintptr(vk), mapvkVKToVSC)
	param := keyNameParam(vk, uint32(scan))

	var buf [keyNameBufLen]uint16
	n, _, _ := procGetKeyNameTextW.Call(
		uintptr(param),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if n == 0 {
		return "", false
	}
	return windows.UTF16ToString(buf[:n]), true
}
