// Package globalhotkey owns the host's system-wide hotkeys and can
// withhold them while a hotkey editor is capturing input.
package globalhotkey

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"hotkeyedit/internal/hotkey"
	"hotkeyedit/internal/logging"
)

var (
	ErrDuplicate = errors.New("global hotkey already bound")
	ErrClosed    = errors.New("global hotkey set closed")
)

// Registration is one live system-wide binding.
type Registration interface {
	Unregister() error
}

// Registrar binds a hotkey system-wide and calls onFire on every press.
type Registrar interface {
	Register(h hotkey.HotKey, onFire func()) (Registration, error)
}

// Binding is a labelled global hotkey.
type Binding struct {
	Label  string
	HotKey hotkey.HotKey
}

type entry struct {
	Binding
	reg Registration
}

// Set holds the host's global hotkeys. Suppress is reference counted:
// bindings are unregistered on the first acquisition and restored when the
// last release runs.
type Set struct {
	mu         sync.Mutex
	registrar  Registrar
	onFire     func(Binding)
	logger     logging.Logger
	entries    []*entry
	suppressed int
	closed     bool
}

func NewSet(registrar Registrar, onFire func(Binding), logger logging.Logger) *Set {
	if logger == nil {
		logger = logging.Nop()
	}
	if onFire == nil {
		onFire = func(Binding) {}
	}
	return &Set{registrar: registrar, onFire: onFire, logger: logger}
}

// Add binds h under label. While suppressed the binding is recorded and
// registered on release.
func (s *Set) Add(label string, h hotkey.HotKey) error {
	if h.IsNone() {
		return fmt.Errorf("global hotkey %q: no key", label)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	for _, e := range s.entries {
		if e.HotKey == h {
			return fmt.Errorf("%w: %s (%s)", ErrDuplicate, h, e.Label)
		}
	}
	e := &entry{Binding: Binding{Label: strings.TrimSpace(label), HotKey: h}}
	if s.suppressed == 0 {
		if err := s.register(e); err != nil {
			return err
		}
	}
	s.entries = append(s.entries, e)
	return nil
}

// Bindings lists the configured hotkeys in insertion order.
func (s *Set) Bindings() []Binding {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Binding, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Binding
	}
	return out
}

func (s *Set) Suppressed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suppressed > 0
}

// Suppress unregisters every binding until the returned release runs.
// Release is idempotent. When some bindings fail to unregister the error
// is returned together with a release that must still be called.
func (s *Set) Suppress() (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return func() {}, ErrClosed
	}
	s.suppressed++
	var err error
	if s.suppressed == 1 {
		err = s.unregisterAll()
		s.logger.Debug("global_hotkeys_suppressed", logging.F("count", len(s.entries)))
	}
	var once sync.Once
	return func() { once.Do(s.restore) }, err
}

func (s *Set) restore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.suppressed == 0 {
		return
	}
	s.suppressed--
	if s.suppressed > 0 || s.closed {
		return
	}
	for _, e := range s.entries {
		if err := s.register(e); err != nil {
			s.logger.Warn("global_hotkey_restore_failed", logging.F("label", e.Label), logging.F("hotkey", e.HotKey), logging.F("error", err))
		}
	}
	s.logger.Debug("global_hotkeys_restored", logging.F("count", len(s.entries)))
}

// Close unregisters everything. Later Add and Suppress calls fail.
func (s *Set) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.unregisterAll()
}

func (s *Set) register(e *entry) error {
	if s.registrar == nil || e.reg != nil {
		return nil
	}
	binding := e.Binding
	reg, err := s.registrar.Register(binding.HotKey, func() { s.onFire(binding) })
	if err != nil {
		return fmt.Errorf("register global hotkey %s: %w", binding.HotKey, err)
	}
	e.reg = reg
	return nil
}

func (s *Set) unregisterAll() error {
	var errs []error
	for _, e := range s.entries {
		if e.reg == nil {
			continue
		}
		if err := e.reg.Unregister(); err != nil {
			// Still bound by the OS; restore must not register it twice.
			errs = append(errs, fmt.Errorf("unregister global hotkey %s: %w", e.HotKey, err))
			continue
		}
		e.reg = nil
	}
	return errors.Join(errs...)
}
