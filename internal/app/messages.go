package app

import (
	"hotkeyedit/internal/config"
	"hotkeyedit/internal/globalhotkey"
)

// configReloadedMsg carries a freshly loaded config, or the reason it could
// not be loaded.
type configReloadedMsg struct {
	cfg    config.Config
	err    error
	manual bool
}

// globalHotkeyMsg reports that one of the host's global hotkeys fired.
type globalHotkeyMsg struct {
	binding globalhotkey.Binding
}
