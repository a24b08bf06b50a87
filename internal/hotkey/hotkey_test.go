package hotkey

import (
	"errors"
	"testing"
)

func TestHotKeyEqualityAndHash(t *testing.T) {
	keys := []Key{KeyNone, KeyA, KeyF5, KeyD1, KeyNumPad5}
	mods := []ModifierSet{ModNone, ModControl, ModControl | ModAlt, ModShift | ModMeta}
	for _, k1 := range keys {
		for _, m1 := range mods {
			for _, k2 := range keys {
				for _, m2 := range mods {
					a, b := New(k1, m1), New(k2, m2)
					want := k1 == k2 && m1 == m2
					if a.Equal(b) != want || (a == b) != want {
						t.Fatalf("equal(%v,%v): got=%v want=%v", a, b, a.Equal(b), want)
					}
					if want && a.Hash() != b.Hash() {
						t.Fatalf("equal values hash differently: %d vs %d", a.Hash(), b.Hash())
					}
				}
			}
		}
	}
}

func TestRenderNoneIgnoresResolver(t *testing.T) {
	calls := 0
	resolver := ResolverFunc(func(Key) (string, bool) {
		calls++
		return "boom", true
	})
	if got := None.Render(resolver); got != NoneText {
		t.Fatalf("render none: got=%q want=%q", got, NoneText)
	}
	if got := New(KeyNone, ModControl).Render(resolver); got != NoneText {
		t.Fatalf("render modifiers without key: got=%q want=%q", got, NoneText)
	}
	if calls != 0 {
		t.Fatalf("resolver consulted %d times for none", calls)
	}
}

func TestRenderModifierOrder(t *testing.T) {
	names := ResolverFunc(func(k Key) (string, bool) {
		switch k {
		case KeyLeftCtrl:
			return "Strg", true
		case KeyF5:
			return "F5", true
		}
		return "", false
	})
	h := New(KeyF5, ModMeta|ModShift|ModAlt|ModControl)
	if got, want := h.Render(names), "Strg+Alt+Shift+Win+F5"; got != want {
		t.Fatalf("render: got=%q want=%q", got, want)
	}
}

func TestRenderFallsBackToSymbolicName(t *testing.T) {
	miss := ResolverFunc(func(Key) (string, bool) { return "", false })
	if got, want := New(KeyOem1, ModControl).Render(miss), "Ctrl+Oem1"; got != want {
		t.Fatalf("render: got=%q want=%q", got, want)
	}
	if got, want := New(KeyK, ModControl).Render(nil), "Ctrl+K"; got != want {
		t.Fatalf("render nil resolver: got=%q want=%q", got, want)
	}
}

func TestRenderWithPlaceholder(t *testing.T) {
	if got := None.RenderWithPlaceholder(Symbolic, "(unset)"); got != "(unset)" {
		t.Fatalf("placeholder: got=%q want=%q", got, "(unset)")
	}
}

func TestParseHotKey(t *testing.T) {
	cases := []struct {
		raw  string
		want HotKey
	}{
		{raw: "ctrl+alt+f5", want: New(KeyF5, ModControl|ModAlt)},
		{raw: "Ctrl+Shift+K", want: New(KeyK, ModControl|ModShift)},
		{raw: "win+d", want: New(KeyD, ModMeta)},
		{raw: "ctrl+7", want: New(KeyD7, ModControl)},
		{raw: "ctrl++", want: New(KeyOemPlus, ModControl)},
		{raw: "+", want: New(KeyOemPlus, ModNone)},
		{raw: "F12", want: New(KeyF12, ModNone)},
		{raw: "", want: None},
		{raw: "<None>", want: None},
	}
	for _, tc := range cases {
		got, err := ParseHotKey(tc.raw)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: got=%v want=%v", tc.raw, got, tc.want)
		}
	}
}

func TestParseHotKeyErrors(t *testing.T) {
	if _, err := ParseHotKey("ctrl+hyper+k"); !errors.Is(err, ErrUnknownModifier) {
		t.Fatalf("expected ErrUnknownModifier, got %v", err)
	}
	if _, err := ParseHotKey("ctrl+f55"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestHotKeyStringParsesBack(t *testing.T) {
	h := New(KeyPageDown, ModControl|ModShift)
	if got, want := h.String(), "Ctrl+Shift+PageDown"; got != want {
		t.Fatalf("string: got=%q want=%q", got, want)
	}
	var parsed HotKey
	if err := parsed.UnmarshalText([]byte(h.String())); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed != h {
		t.Fatalf("round trip: got=%v want=%v", parsed, h)
	}
}
