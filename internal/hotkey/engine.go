package hotkey

import "fmt"

// Outcome is the result class of a single capture decision.
type Outcome uint8

const (
	// Ignore leaves the current value untouched.
	Ignore Outcome = iota
	Accept
	Clear
	// Reject discards the value and flags the combination as unsupported.
	Reject
)

func (o Outcome) String() string {
	switch o {
	case Ignore:
		return "ignore"
	case Accept:
		return "accept"
	case Clear:
		return "clear"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Reason names the guard that produced a Decision.
type Reason string

const (
	ReasonNoKey            Reason = "no_key"
	ReasonMetaNotAllowed   Reason = "meta_not_allowed"
	ReasonClearKey         Reason = "clear_key"
	ReasonModifierKey      Reason = "modifier_key"
	ReasonStructuralKey    Reason = "structural_key"
	ReasonMissingModifiers Reason = "missing_modifiers"
	ReasonExcludedKey      Reason = "excluded_key"
	ReasonOutsideKeyRange  Reason = "outside_key_range"
	ReasonAccepted         Reason = "accepted"
)

// KeyEvent is one raw key-down together with the modifiers held at the
// time. When Key is KeySystem the real key is in SystemKey.
type KeyEvent struct {
	Key       Key
	SystemKey Key
	Modifiers ModifierSet
}

// EffectiveKey resolves the KeySystem indirection.
func (ev KeyEvent) EffectiveKey() Key {
	if ev.Key == KeySystem {
		return ev.SystemKey
	}
	return ev.Key
}

// Decision is the result of Decide. HotKey is set only for Accept.
type Decision struct {
	Outcome Outcome `json:"outcome" toml:"outcome"`
	Key     Key     `json:"key" toml:"key"`
	HotKey  HotKey  `json:"hotkey" toml:"hotkey"`
	Reason  Reason  `json:"reason" toml:"reason"`
}

// structuralKeys are never valid primary keys and never clear the value.
var structuralKeys = NewKeySet(KeyTab, KeyClear, KeyInsert, KeyApps, KeyOemClear)

// Decide runs the capture guards in order and returns the first that
// fires. It is pure: the same event and policy always produce the same
// Decision.
func Decide(ev KeyEvent, policy Policy) Decision {
	key := ev.EffectiveKey()
	mods := ev.Modifiers
	decision := func(outcome Outcome, reason Reason) Decision {
		return Decision{Outcome: outcome, Key: key, Reason: reason}
	}

	if key == KeyNone {
		return decision(Ignore, ReasonNoKey)
	}
	if (mods.Has(ModMeta) || key.IsMeta()) && !policy.AllowMeta {
		return decision(Reject, ReasonMetaNotAllowed)
	}
	if mods.IsNone() && policy.Clear.Contains(key) {
		return decision(Clear, ReasonClearKey)
	}
	if key.IsModifier() {
		return decision(Ignore, ReasonModifierKey)
	}
	if structuralKeys.Contains(key) {
		return decision(Ignore, ReasonStructuralKey)
	}
	if !mods.Has(policy.MinRequired) {
		return decision(Reject, ReasonMissingModifiers)
	}
	if policy.Excluded.Contains(key) {
		return decision(Reject, ReasonExcludedKey)
	}
	if !policy.KeyRange.Contains(key) {
		return decision(Reject, ReasonOutsideKeyRange)
	}
	out := decision(Accept, ReasonAccepted)
	out.HotKey = New(key, mods)
	return out
}
