package editor

import "sync"

// Suppressor withholds system-wide hotkey delivery while the editor has
// focus. The returned release must undo the suppression; the editor calls
// it at most once.
type Suppressor interface {
	Suppress() (release func(), err error)
}

// SuppressorFunc adapts a function to Suppressor.
type SuppressorFunc func() (func(), error)

func (f SuppressorFunc) Suppress() (func(), error) {
	return f()
}

type nopSuppressor struct{}

func (nopSuppressor) Suppress() (func(), error) {
	return func() {}, nil
}

// releaseOnce wraps release so repeated calls are harmless.
func releaseOnce(release func()) func() {
	if release == nil {
		return func() {}
	}
	var once sync.Once
	return func() { once.Do(release) }
}
