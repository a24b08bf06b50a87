package hotkey

// KeyNameResolver maps a key to a display label. Implementations must be
// pure lookups; a false result means the key has no label and callers
// fall back to the symbolic name.
type KeyNameResolver interface {
	KeyName(Key) (string, bool)
}

// ResolverFunc adapts a function to KeyNameResolver.
type ResolverFunc func(Key) (string, bool)

func (f ResolverFunc) KeyName(k Key) (string, bool) {
	return f(k)
}

// Symbolic resolves every ordinary key to its symbolic name and leaves
// modifier keys unresolved so prefixes use the short labels.
var Symbolic KeyNameResolver = ResolverFunc(func(k Key) (string, bool) {
	if k == KeyNone || !k.Valid() || k.IsModifier() {
		return "", false
	}
	return k.String(), true
})
