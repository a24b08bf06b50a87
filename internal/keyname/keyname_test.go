package keyname

import (
	"errors"
	"testing"

	"hotkeyedit/internal/hotkey"
)

func TestEnglishLabels(t *testing.T) {
	table := English()
	cases := map[hotkey.Key]string{
		hotkey.KeyD5:       "5",
		hotkey.KeyK:        "K",
		hotkey.KeyF12:      "F12",
		hotkey.KeyNumPad3:  "Num 3",
		hotkey.KeyPageDown: "Page Down",
		hotkey.KeyLeftCtrl: "Ctrl",
	}
	for k, want := range cases {
		got, ok := table.KeyName(k)
		if !ok || got != want {
			t.Fatalf("label for %s: got=%q ok=%v want=%q", k, got, ok, want)
		}
	}
	if _, ok := table.KeyName(hotkey.KeyOemClear); ok {
		t.Fatalf("expected miss for OemClear")
	}
}

func TestEnglishRendersCtrlK(t *testing.T) {
	if got, want := hotkey.New(hotkey.KeyK, hotkey.ModControl).Render(English()), "Ctrl+K"; got != want {
		t.Fatalf("render: got=%q want=%q", got, want)
	}
	h := hotkey.New(hotkey.KeyF5, hotkey.ModControl|hotkey.ModAlt|hotkey.ModMeta)
	if got, want := h.Render(English()), "Ctrl+Alt+Win+F5"; got != want {
		t.Fatalf("render: got=%q want=%q", got, want)
	}
}

func TestWithOverrides(t *testing.T) {
	base := English()
	table, err := base.WithOverrides(map[string]string{"pgdn": "PgDn", "ctrl": "Strg"})
	if err == nil {
		t.Fatalf("expected unknown key error for %q", "ctrl")
	}
	if !errors.Is(err, hotkey.ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	table, err = base.WithOverrides(map[string]string{"pgdn": "PgDn", "lctrl": "Strg"})
	if err != nil {
		t.Fatalf("overrides: %v", err)
	}
	if got := hotkey.New(hotkey.KeyPageDown, hotkey.ModControl).Render(table); got != "Strg+PgDn" {
		t.Fatalf("render: got=%q want=%q", got, "Strg+PgDn")
	}
	if got, _ := base.KeyName(hotkey.KeyPageDown); got != "Page Down" {
		t.Fatalf("base table mutated: got=%q", got)
	}
}

func TestChainFallsThrough(t *testing.T) {
	empty := Table{}
	chain := Chain(nil, empty, Table{hotkey.KeyA: "a-key"}, English())
	if got, _ := chain.KeyName(hotkey.KeyA); got != "a-key" {
		t.Fatalf("first hit: got=%q want=%q", got, "a-key")
	}
	if got, _ := chain.KeyName(hotkey.KeyB); got != "B" {
		t.Fatalf("fallthrough: got=%q want=%q", got, "B")
	}
	if _, ok := Chain().KeyName(hotkey.KeyA); ok {
		t.Fatalf("empty chain must miss")
	}
}

func TestVirtualKeys(t *testing.T) {
	cases := map[hotkey.Key]uint32{
		hotkey.KeyA:       0x41,
		hotkey.KeyD0:      0x30,
		hotkey.KeyF1:      0x70,
		hotkey.KeyF24:     0x87,
		hotkey.KeyNumPad9: 0x69,
		hotkey.KeyNumLock: 0x90,
	}
	for k, want := range cases {
		got, ok := VirtualKey(k)
		if !ok || got != want {
			t.Fatalf("vk for %s: got=%#x ok=%v want=%#x", k, got, ok, want)
		}
	}
	if _, ok := VirtualKey(hotkey.KeySystem); ok {
		t.Fatalf("system sentinel has no virtual key")
	}
}

func TestKeyNameParamExtendedFlag(t *testing.T) {
	for _, vk := range []uint32{0x21, 0x24, 0x28, 0x2D, 0x2E, 0x90} {
		if got := keyNameParam(vk, 0x47); got != 0x47<<16|extendedKeyFlag {
			t.Fatalf("vk %#x: got=%#x", vk, got)
		}
	}
	for _, vk := range []uint32{0x41, 0x20, 0x29, 0x67} {
		if got := keyNameParam(vk, 0x1E); got != 0x1E<<16 {
			t.Fatalf("vk %#x: got=%#x", vk, got)
		}
	}
	if got := keyNameParam(0x20000|0x2E, 0x53); got != 0x53<<16|extendedKeyFlag {
		t.Fatalf("modifier bits must be stripped: got=%#x", got)
	}
}
