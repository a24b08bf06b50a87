package main

import "golang.design/x/hotkey/mainthread"

// macOS delivers hotkey events on the main thread only.
func runOnMainThread(fn func()) {
	mainthread.Init(fn)
}
