// Package native registers global hotkeys with the operating system.
package native

import (
	"errors"
	"fmt"

	xhotkey "golang.design/x/hotkey"

	"hotkeyedit/internal/globalhotkey"
	"hotkeyedit/internal/hotkey"
)

var ErrUnsupportedKey = errors.New("key cannot be bound globally")

// Registrar binds hotkeys through golang.design/x/hotkey. On macOS the
// caller must run the program under mainthread.Init.
type Registrar struct{}

func NewRegistrar() *Registrar {
	return &Registrar{}
}

func (r *Registrar) Register(h hotkey.HotKey, onFire func()) (globalhotkey.Registration, error) {
	key, ok := keys[h.Key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKey, h.Key)
	}
	mods, err := modifiers(h.Modifiers)
	if err != nil {
		return nil, err
	}
	hk := xhotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, err
	}
	reg := &registration{hk: hk, done: make(chan struct{})}
	go reg.forward(onFire)
	return reg, nil
}

type registration struct {
	hk   *xhotkey.Hotkey
	done chan struct{}
}

func (r *registration) forward(onFire func()) {
	keydown := r.hk.Keydown()
	for {
		select {
		case <-r.done:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			if onFire != nil {
				onFire()
			}
		}
	}
}

func (r *registration) Unregister() error {
	close(r.done)
	return r.hk.Unregister()
}

func modifiers(set hotkey.ModifierSet) ([]xhotkey.Modifier, error) {
	var out []xhotkey.Modifier
	for _, m := range []hotkey.ModifierSet{hotkey.ModControl, hotkey.ModAlt, hotkey.ModShift, hotkey.ModMeta} {
		if !set.Has(m) {
			continue
		}
		native, ok := modifierMap[m]
		if !ok {
			return nil, fmt.Errorf("modifier %s cannot be bound globally on this platform", m)
		}
		out = append(out, native)
	}
	return out, nil
}
