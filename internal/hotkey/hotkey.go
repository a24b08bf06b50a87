package hotkey

import (
	"fmt"
	"strings"
)

// NoneText is the placeholder rendered for an unassigned hotkey.
const NoneText = "<None>"

// HotKey is a primary key plus the modifiers held with it. Values are
// comparable with == and are replaced wholesale, never mutated.
type HotKey struct {
	Key       Key
	Modifiers ModifierSet
}

// None is the canonical "no hotkey assigned" value.
var None = HotKey{}

// New builds a HotKey without validating it; acceptance is Decide's job.
func New(key Key, mods ModifierSet) HotKey {
	return HotKey{Key: key, Modifiers: mods}
}

func (h HotKey) Equal(other HotKey) bool {
	return h.Key == other.Key && h.Modifiers == other.Modifiers
}

func (h HotKey) Hash() int {
	return int(h.Key)*397 ^ int(h.Modifiers)
}

// IsNone reports whether h carries no key. A HotKey with modifiers but
// KeyNone still renders as the placeholder.
func (h HotKey) IsNone() bool {
	return h.Key == KeyNone
}

// Render formats h as "Ctrl+Alt+Shift+Win+<key>". Names come from
// resolver; a resolver miss falls back to the key's symbolic name.
func (h HotKey) Render(resolver KeyNameResolver) string {
	return h.RenderWithPlaceholder(resolver, NoneText)
}

// RenderWithPlaceholder is Render with a caller-chosen text for None.
func (h HotKey) RenderWithPlaceholder(resolver KeyNameResolver, placeholder string) string {
	if h.IsNone() {
		return placeholder
	}
	if resolver == nil {
		resolver = Symbolic
	}
	var b strings.Builder
	for _, prefix := range modifierPrefixes {
		if !h.Modifiers.Has(prefix.mod) {
			continue
		}
		b.WriteString(resolveName(resolver, prefix.key, prefix.fallback))
		b.WriteByte('+')
	}
	b.WriteString(resolveName(resolver, h.Key, h.Key.String()))
	return b.String()
}

// String renders h with the Symbolic resolver. The result parses back
// with ParseHotKey.
func (h HotKey) String() string {
	return h.Render(Symbolic)
}

func (h HotKey) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *HotKey) UnmarshalText(text []byte) error {
	parsed, err := ParseHotKey(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

type modifierPrefix struct {
	mod      ModifierSet
	key      Key
	fallback string
}

var modifierPrefixes = []modifierPrefix{
	{mod: ModControl, key: KeyLeftCtrl, fallback: "Ctrl"},
	{mod: ModAlt, key: KeyLeftAlt, fallback: "Alt"},
	{mod: ModShift, key: KeyLeftShift, fallback: "Shift"},
	{mod: ModMeta, key: KeyLeftMeta, fallback: "Win"},
}

func resolveName(resolver KeyNameResolver, k Key, fallback string) string {
	if name, ok := resolver.KeyName(k); ok && name != "" {
		return name
	}
	return fallback
}

// ParseHotKey parses a "+"-separated combination such as "ctrl+alt+f5".
// The last element is the key; "ctrl++" binds the plus key. Empty input,
// "none" and "<None>" yield None.
func ParseHotKey(raw string) (HotKey, error) {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "", "none", strings.ToLower(NoneText):
		return None, nil
	}
	keyPart, modPart := trimmed, ""
	switch {
	case strings.HasSuffix(trimmed, "++"):
		keyPart = "+"
		modPart = strings.TrimSuffix(trimmed, "++")
	case trimmed == "+":
	default:
		if idx := strings.LastIndex(trimmed, "+"); idx >= 0 {
			keyPart = trimmed[idx+1:]
			modPart = trimmed[:idx]
		}
	}
	mods, err := ParseModifiers(modPart)
	if err != nil {
		return None, fmt.Errorf("parse hotkey %q: %w", raw, err)
	}
	key, err := ParseKey(keyPart)
	if err != nil {
		return None, fmt.Errorf("parse hotkey %q: %w", raw, err)
	}
	return New(key, mods), nil
}
