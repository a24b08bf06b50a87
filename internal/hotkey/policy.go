package hotkey

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// KeyRange selects which primary keys a policy will accept.
type KeyRange uint8

const (
	KeyRangeAll KeyRange = iota
	// KeyRangeLettersDigitsFunctions accepts A-Z, D0-D9 and F1-F12 only.
	// Numeric-pad digits are outside the range.
	KeyRangeLettersDigitsFunctions
)

var ErrUnknownKeyRange = errors.New("unknown key range")

func (r KeyRange) String() string {
	switch r {
	case KeyRangeAll:
		return "all"
	case KeyRangeLettersDigitsFunctions:
		return "letters_digits_functions"
	default:
		return fmt.Sprintf("KeyRange(%d)", uint8(r))
	}
}

// Contains reports whether k falls inside the range.
func (r KeyRange) Contains(k Key) bool {
	if r == KeyRangeLettersDigitsFunctions {
		return k.IsLetter() || k.IsDigit() || k.IsFunction()
	}
	return true
}

func (r KeyRange) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *KeyRange) UnmarshalText(text []byte) error {
	parsed, err := ParseKeyRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func ParseKeyRange(raw string) (KeyRange, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all", "all_keys":
		return KeyRangeAll, nil
	case "letters_digits_functions", "letters-digits-functions", "whitelist":
		return KeyRangeLettersDigitsFunctions, nil
	}
	return KeyRangeAll, fmt.Errorf("%w: %q", ErrUnknownKeyRange, raw)
}

// RequiredAll is the "all" preset: every modifier except Meta.
const RequiredAll = ModControl | ModShift | ModAlt

// ParseMinRequired accepts the presets none, ctrl+shift+alt, ctrl+alt,
// ctrl+shift and all, as well as any other modifier list.
func ParseMinRequired(raw string) (ModifierSet, error) {
	if strings.EqualFold(strings.TrimSpace(raw), "all") {
		return RequiredAll, nil
	}
	return ParseModifiers(raw)
}

// KeySet is an unordered set of keys. The nil set is empty.
type KeySet map[Key]struct{}

func NewKeySet(keys ...Key) KeySet {
	set := make(KeySet, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// ParseKeySet builds a set from key names, failing on the first unknown
// name.
func ParseKeySet(names []string) (KeySet, error) {
	set := make(KeySet, len(names))
	for _, name := range names {
		k, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		set[k] = struct{}{}
	}
	return set, nil
}

func (s KeySet) Contains(k Key) bool {
	_, ok := s[k]
	return ok
}

func (s KeySet) Len() int {
	return len(s)
}

// Keys returns the members in enumeration order.
func (s KeySet) Keys() []Key {
	out := make([]Key, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Names returns the symbolic names of the members in enumeration order.
func (s KeySet) Names() []string {
	keys := s.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}

// Policy parameterises Decide. It is read-only while a capture runs and
// may be replaced between captures.
type Policy struct {
	MinRequired ModifierSet
	KeyRange    KeyRange
	// Excluded keys are rejected under any modifier combination.
	Excluded KeySet
	// Clear keys reset the value when pressed with no modifier held.
	Clear     KeySet
	AllowMeta bool
}

// DefaultClearKeys returns the keys that clear the value when pressed
// alone.
func DefaultClearKeys() KeySet {
	return NewKeySet(
		KeyEscape,
		KeySpace,
		KeyBack,
		KeyDelete,
		KeyTab,
		KeyInsert,
		KeyScroll,
		KeyNumLock,
		KeyEnter,
		KeyPause,
		KeyClear,
	)
}

// DefaultPolicy requires Ctrl+Shift+Alt, accepts letters, digits and
// F1-F12, and clears on DefaultClearKeys.
func DefaultPolicy() Policy {
	return Policy{
		MinRequired: ModControl | ModShift | ModAlt,
		KeyRange:    KeyRangeLettersDigitsFunctions,
		Excluded:    NewKeySet(),
		Clear:       DefaultClearKeys(),
	}
}
