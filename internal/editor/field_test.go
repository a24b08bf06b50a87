package editor

import (
	"testing"

	"hotkeyedit/internal/hotkey"
)

func ctrlResolver() hotkey.KeyNameResolver {
	return hotkey.ResolverFunc(func(k hotkey.Key) (string, bool) {
		switch k {
		case hotkey.KeyK:
			return "K", true
		case hotkey.KeyLeftCtrl:
			return "Ctrl", true
		}
		return "", false
	})
}

func ctrlOnlyPolicy() hotkey.Policy {
	return hotkey.Policy{
		MinRequired: hotkey.ModControl,
		KeyRange:    hotkey.KeyRangeLettersDigitsFunctions,
		Excluded:    hotkey.NewKeySet(),
		Clear:       hotkey.DefaultClearKeys(),
	}
}

func TestFieldCapturesCtrlK(t *testing.T) {
	field := NewField(ctrlOnlyPolicy(), WithResolver(ctrlResolver()))
	decision, changed := field.Press(hotkey.KeyEvent{Key: hotkey.KeyK, Modifiers: hotkey.ModControl})
	if decision.Outcome != hotkey.Accept || !changed {
		t.Fatalf("expected accepted change, got %+v changed=%v", decision, changed)
	}
	if got, want := field.Value(), hotkey.New(hotkey.KeyK, hotkey.ModControl); got != want {
		t.Fatalf("value: got=%v want=%v", got, want)
	}
	if got := field.Text(); got != "Ctrl+K" {
		t.Fatalf("text: got=%q want=%q", got, "Ctrl+K")
	}
}

func TestFieldRejectResetsValueAndFlagsUnsupported(t *testing.T) {
	field := NewField(ctrlOnlyPolicy())
	field.SetValue(hotkey.New(hotkey.KeyK, hotkey.ModControl))

	_, changed := field.Press(hotkey.KeyEvent{Key: hotkey.KeyNumPad5, Modifiers: hotkey.ModControl})
	if !changed {
		t.Fatalf("expected reject to discard the value")
	}
	if field.Value() != hotkey.None {
		t.Fatalf("value: got=%v want=None", field.Value())
	}
	if field.Indicator() != IndicatorUnsupported || field.Text() != DefaultUnsupportedText {
		t.Fatalf("expected unsupported indicator, got %s %q", field.Indicator(), field.Text())
	}
}

func TestFieldIgnoreKeepsValue(t *testing.T) {
	field := NewField(ctrlOnlyPolicy())
	want := hotkey.New(hotkey.KeyF5, hotkey.ModControl)
	field.SetValue(want)

	decision, changed := field.Press(hotkey.KeyEvent{Key: hotkey.KeyLeftShift, Modifiers: hotkey.ModControl | hotkey.ModShift})
	if decision.Outcome != hotkey.Ignore || changed {
		t.Fatalf("expected ignore without change, got %+v changed=%v", decision, changed)
	}
	if field.Value() != want || field.Text() != "Ctrl+F5" {
		t.Fatalf("value changed by ignored key: %v %q", field.Value(), field.Text())
	}
}

func TestFieldClearKey(t *testing.T) {
	field := NewField(ctrlOnlyPolicy(), WithNoneText("(none)"))
	field.SetValue(hotkey.New(hotkey.KeyA, hotkey.ModControl))

	decision, changed := field.Press(hotkey.KeyEvent{Key: hotkey.KeyEscape})
	if decision.Outcome != hotkey.Clear || !changed {
		t.Fatalf("expected clear, got %+v changed=%v", decision, changed)
	}
	if field.Text() != "(none)" || field.Indicator() != IndicatorEmpty {
		t.Fatalf("text: got=%q indicator=%s", field.Text(), field.Indicator())
	}
}

func TestFieldApplyBlankTextRestoresDefaults(t *testing.T) {
	field := NewField(ctrlOnlyPolicy(), WithNoneText("(none)"), WithUnsupportedText("Nope"))
	field.Apply(WithNoneText(""), WithUnsupportedText("  "))
	if got := field.Text(); got != DefaultNoneText {
		t.Fatalf("none text: got=%q want=%q", got, DefaultNoneText)
	}
	field.Press(hotkey.KeyEvent{Key: hotkey.KeyQ})
	if got := field.Text(); got != DefaultUnsupportedText {
		t.Fatalf("unsupported text: got=%q want=%q", got, DefaultUnsupportedText)
	}
}

func TestFieldOnlyLastValidCombinationShows(t *testing.T) {
	field := NewField(ctrlOnlyPolicy())
	events := []hotkey.KeyEvent{
		{Key: hotkey.KeyA, Modifiers: hotkey.ModControl},
		{Key: hotkey.KeyB},
		{Key: hotkey.KeyC, Modifiers: hotkey.ModControl | hotkey.ModAlt},
		{Key: hotkey.KeyLeftAlt, Modifiers: hotkey.ModControl | hotkey.ModAlt},
	}
	for _, ev := range events {
		field.Press(ev)
	}
	if got, want := field.Value(), hotkey.New(hotkey.KeyC, hotkey.ModControl|hotkey.ModAlt); got != want {
		t.Fatalf("value: got=%v want=%v", got, want)
	}
}

func TestFieldSetValueNormalizesNone(t *testing.T) {
	field := NewField(ctrlOnlyPolicy())
	if field.SetValue(hotkey.New(hotkey.KeyNone, hotkey.ModControl)) {
		t.Fatalf("modifier-only value must collapse to None")
	}
	if field.Value() != hotkey.None || field.Text() != DefaultNoneText {
		t.Fatalf("unexpected state: %v %q", field.Value(), field.Text())
	}
	if !field.SetValue(hotkey.New(hotkey.KeyD1, hotkey.ModAlt)) {
		t.Fatalf("expected change")
	}
	if !field.Clear() || field.Value() != hotkey.None {
		t.Fatalf("clear failed")
	}
}

func TestFieldSetPolicyAppliesToNextPress(t *testing.T) {
	field := NewField(hotkey.DefaultPolicy())
	ev := hotkey.KeyEvent{Key: hotkey.KeyK, Modifiers: hotkey.ModControl}
	if d, _ := field.Press(ev); d.Outcome != hotkey.Reject {
		t.Fatalf("default policy: got=%s want=reject", d.Outcome)
	}
	field.SetPolicy(ctrlOnlyPolicy())
	if d, _ := field.Press(ev); d.Outcome != hotkey.Accept {
		t.Fatalf("ctrl policy: got=%s want=accept", d.Outcome)
	}
}
