package app

type HotkeyContext int

const (
	HotkeyGlobal HotkeyContext = iota
	HotkeyNormal
	HotkeyEditor
	HotkeyHelp
)

// Hotkey is one entry of the hint bar. Command, when set, lets the key be
// replaced by the user's binding.
type Hotkey struct {
	Key      string
	Label    string
	Command  string
	Context  HotkeyContext
	Priority int
}

type HotkeyResolver interface {
	ActiveContexts(*Model) []HotkeyContext
}

func DefaultHotkeys() []Hotkey {
	return []Hotkey{
		{Key: "ctrl+c", Label: "quit", Command: KeyCommandForceQuit, Context: HotkeyEditor, Priority: 91},
		{Key: "ctrl+g", Label: "done", Command: KeyCommandReleaseFocus, Context: HotkeyEditor, Priority: 10},
		{Key: "esc", Label: "clear", Context: HotkeyEditor, Priority: 20},
		{Key: "tab", Label: "edit", Command: KeyCommandFocusEditor, Context: HotkeyNormal, Priority: 10},
		{Key: "y", Label: "copy", Command: KeyCommandCopy, Context: HotkeyNormal, Priority: 20},
		{Key: "x", Label: "clear", Command: KeyCommandClear, Context: HotkeyNormal, Priority: 21},
		{Key: "r", Label: "reload", Command: KeyCommandReload, Context: HotkeyNormal, Priority: 30},
		{Key: "pgup", Label: "log up", Command: KeyCommandLogUp, Context: HotkeyNormal, Priority: 40},
		{Key: "pgdown", Label: "log down", Command: KeyCommandLogDown, Context: HotkeyNormal, Priority: 41},
		{Key: "?", Label: "help", Command: KeyCommandHelp, Context: HotkeyNormal, Priority: 80},
		{Key: "?", Label: "close help", Command: KeyCommandHelp, Context: HotkeyHelp, Priority: 10},
		{Key: "q", Label: "quit", Command: KeyCommandQuit, Context: HotkeyNormal, Priority: 90},
		{Key: "q", Label: "quit", Command: KeyCommandQuit, Context: HotkeyHelp, Priority: 90},
	}
}

// ResolveHotkeys substitutes bound keys for the default ones.
func ResolveHotkeys(hotkeys []Hotkey, bindings *Keybindings) []Hotkey {
	out := make([]Hotkey, len(hotkeys))
	for i, hk := range hotkeys {
		if hk.Command != "" {
			hk.Key = bindings.KeyFor(hk.Command, hk.Key)
		}
		out[i] = hk
	}
	return out
}

type DefaultHotkeyResolver struct{}

func (r DefaultHotkeyResolver) ActiveContexts(m *Model) []HotkeyContext {
	contexts := []HotkeyContext{HotkeyGlobal}
	if m == nil {
		return contexts
	}
	switch {
	case m.editor.Focused():
		contexts = append(contexts, HotkeyEditor)
	case m.showHelp:
		contexts = append(contexts, HotkeyHelp)
	default:
		contexts = append(contexts, HotkeyNormal)
	}
	return contexts
}
