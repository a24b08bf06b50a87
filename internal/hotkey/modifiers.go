package hotkey

import (
	"errors"
	"fmt"
	"strings"
)

// ModifierSet is a bit set over Alt, Control, Shift and Meta. The zero
// value is ModNone.
type ModifierSet uint8

const (
	ModNone    ModifierSet = 0
	ModAlt     ModifierSet = 1 << 0
	ModControl ModifierSet = 1 << 1
	ModShift   ModifierSet = 1 << 2
	// ModMeta is the OS key: Windows, Command, Super.
	ModMeta ModifierSet = 1 << 3

	modAll = ModAlt | ModControl | ModShift | ModMeta
)

var ErrUnknownModifier = errors.New("unknown modifier")

var modifierNames = map[string]ModifierSet{
	"ctrl":    ModControl,
	"control": ModControl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"meta":    ModMeta,
	"win":     ModMeta,
	"windows": ModMeta,
	"super":   ModMeta,
	"cmd":     ModMeta,
	"command": ModMeta,
}

// Has reports whether every bit of mods is present in m. Has(ModNone) is
// always true.
func (m ModifierSet) Has(mods ModifierSet) bool {
	return m&mods == mods
}

func (m ModifierSet) Union(mods ModifierSet) ModifierSet {
	return m | mods
}

func (m ModifierSet) Intersect(mods ModifierSet) ModifierSet {
	return m & mods
}

func (m ModifierSet) Without(mods ModifierSet) ModifierSet {
	return m &^ mods
}

func (m ModifierSet) IsNone() bool {
	return m&modAll == ModNone
}

// String renders the set in the canonical order Ctrl, Alt, Shift, Meta,
// joined by "+". The empty set renders as "None".
func (m ModifierSet) String() string {
	parts := m.names()
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "+")
}

func (m ModifierSet) names() []string {
	var parts []string
	if m.Has(ModControl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return parts
}

func (m ModifierSet) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(m.String())), nil
}

func (m *ModifierSet) UnmarshalText(text []byte) error {
	parsed, err := ParseModifiers(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseModifiers parses a "+"-separated modifier list such as
// "ctrl+shift". Empty input and "none" yield ModNone.
func ParseModifiers(raw string) (ModifierSet, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || raw == "none" {
		return ModNone, nil
	}
	var out ModifierSet
	for _, part := range strings.Split(raw, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		mod, ok := modifierNames[part]
		if !ok {
			return ModNone, fmt.Errorf("%w: %q", ErrUnknownModifier, part)
		}
		out |= mod
	}
	return out, nil
}

// ModifierForKey returns the modifier a modifier key contributes, or
// ModNone for any other key.
func ModifierForKey(k Key) ModifierSet {
	switch k {
	case KeyLeftShift, KeyRightShift:
		return ModShift
	case KeyLeftCtrl, KeyRightCtrl:
		return ModControl
	case KeyLeftAlt, KeyRightAlt:
		return ModAlt
	case KeyLeftMeta, KeyRightMeta:
		return ModMeta
	}
	return ModNone
}
