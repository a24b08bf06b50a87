//go:build linux && !hotkeyedit_x11

package main

import "hotkeyedit/internal/globalhotkey"

// golang.design/x/hotkey needs an X display as soon as it is linked, so
// Linux builds leave it out unless built with -tags hotkeyedit_x11.
func newNativeRegistrar() globalhotkey.Registrar {
	return nil
}
