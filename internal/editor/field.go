// Package editor hosts the hotkey entry field: a headless Field that
// applies capture decisions, and a bubbletea Editor that feeds it.
package editor

import (
	"strings"

	"hotkeyedit/internal/hotkey"
)

const (
	DefaultNoneText        = hotkey.NoneText
	DefaultUnsupportedText = "Unsupported"
)

// Indicator describes what the field is currently showing.
type Indicator uint8

const (
	IndicatorEmpty Indicator = iota
	IndicatorValue
	IndicatorUnsupported
)

func (i Indicator) String() string {
	switch i {
	case IndicatorValue:
		return "value"
	case IndicatorUnsupported:
		return "unsupported"
	default:
		return "empty"
	}
}

// Field owns the bound hotkey value and applies capture decisions to it.
// It is not safe for concurrent use; callers drive it from one loop.
type Field struct {
	policy          hotkey.Policy
	resolver        hotkey.KeyNameResolver
	value           hotkey.HotKey
	indicator       Indicator
	noneText        string
	unsupportedText string
}

type FieldOption func(*Field)

func WithResolver(resolver hotkey.KeyNameResolver) FieldOption {
	return func(f *Field) {
		if resolver != nil {
			f.resolver = resolver
		}
	}
}

// WithNoneText sets the placeholder shown for None. Blank text restores
// DefaultNoneText.
func WithNoneText(text string) FieldOption {
	return func(f *Field) {
		f.noneText = textOrDefault(text, DefaultNoneText)
	}
}

// WithUnsupportedText sets the marker shown after a rejection. Blank text
// restores DefaultUnsupportedText.
func WithUnsupportedText(text string) FieldOption {
	return func(f *Field) {
		f.unsupportedText = textOrDefault(text, DefaultUnsupportedText)
	}
}

func textOrDefault(text, fallback string) string {
	if text = strings.TrimSpace(text); text != "" {
		return text
	}
	return fallback
}

func NewField(policy hotkey.Policy, opts ...FieldOption) *Field {
	f := &Field{
		policy:          policy,
		resolver:        hotkey.Symbolic,
		noneText:        DefaultNoneText,
		unsupportedText: DefaultUnsupportedText,
	}
	f.Apply(opts...)
	return f
}

// Apply reconfigures the field with opts. The bound value is kept.
func (f *Field) Apply(opts ...FieldOption) {
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
}

// Press decides ev under the field's policy and applies the outcome.
// changed reports whether the bound value differs afterwards.
func (f *Field) Press(ev hotkey.KeyEvent) (decision hotkey.Decision, changed bool) {
	decision = hotkey.Decide(ev, f.policy)
	if decision.Outcome == hotkey.Ignore {
		return decision, false
	}
	prev := f.value
	f.value = hotkey.None
	f.indicator = IndicatorEmpty
	switch decision.Outcome {
	case hotkey.Accept:
		f.value = decision.HotKey
		f.indicator = IndicatorValue
	case hotkey.Reject:
		f.indicator = IndicatorUnsupported
	}
	return decision, prev != f.value
}

// SetValue replaces the bound value, e.g. when the host loads a stored
// binding. It reports whether the value changed.
func (f *Field) SetValue(h hotkey.HotKey) bool {
	prev := f.value
	f.value = h
	f.indicator = IndicatorValue
	if h.IsNone() {
		f.value = hotkey.None
		f.indicator = IndicatorEmpty
	}
	return prev != f.value
}

// Clear resets the value to None, as emptying the text does.
func (f *Field) Clear() bool {
	return f.SetValue(hotkey.None)
}

func (f *Field) Value() hotkey.HotKey {
	return f.value
}

func (f *Field) Indicator() Indicator {
	return f.indicator
}

// Text is the display string: the rendered value, the placeholder, or
// the unsupported marker after a rejection.
func (f *Field) Text() string {
	if f.indicator == IndicatorUnsupported {
		return f.unsupportedText
	}
	return f.value.RenderWithPlaceholder(f.resolver, f.noneText)
}

func (f *Field) Policy() hotkey.Policy {
	return f.policy
}

// SetPolicy swaps the policy used by subsequent presses. The bound value
// is kept even if the new policy would reject it.
func (f *Field) SetPolicy(policy hotkey.Policy) {
	f.policy = policy
}

func (f *Field) Resolver() hotkey.KeyNameResolver {
	return f.resolver
}

func (f *Field) SetResolver(resolver hotkey.KeyNameResolver) {
	if resolver == nil {
		resolver = hotkey.Symbolic
	}
	f.resolver = resolver
}
