//go:build !linux || hotkeyedit_x11

package main

import (
	"hotkeyedit/internal/globalhotkey"
	"hotkeyedit/internal/globalhotkey/native"
)

func newNativeRegistrar() globalhotkey.Registrar {
	return native.NewRegistrar()
}
