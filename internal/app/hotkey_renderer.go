package app

import (
	"slices"
	"sort"
	"strings"
)

const hotkeySeparator = " • "

type HotkeyRenderer struct {
	hotkeys  []Hotkey
	resolver HotkeyResolver
}

func NewHotkeyRenderer(hotkeys []Hotkey, resolver HotkeyResolver) *HotkeyRenderer {
	return &HotkeyRenderer{hotkeys: hotkeys, resolver: resolver}
}

// Render joins the hints active for m, dropping trailing hints that do not
// fit in width. A width of zero disables the limit.
func (r *HotkeyRenderer) Render(m *Model, width int) string {
	if r == nil || r.resolver == nil {
		return ""
	}
	visible := FilterHotkeys(r.hotkeys, r.resolver.ActiveContexts(m))
	var b strings.Builder
	for _, hk := range visible {
		part := hk.Key + " " + hk.Label
		next := part
		if b.Len() > 0 {
			next = hotkeySeparator + part
		}
		if width > 0 && textWidth(b.String()+next) > width {
			break
		}
		b.WriteString(next)
	}
	return b.String()
}

func FilterHotkeys(hotkeys []Hotkey, contexts []HotkeyContext) []Hotkey {
	if len(hotkeys) == 0 || len(contexts) == 0 {
		return nil
	}
	var out []Hotkey
	for _, hk := range hotkeys {
		if slices.Contains(contexts, hk.Context) {
			out = append(out, hk)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority == out[j].Priority {
			return out[i].Key < out[j].Key
		}
		return out[i].Priority < out[j].Priority
	})
	return out
}
