//go:build !windows

package keyname

import "hotkeyedit/internal/hotkey"

// Platform returns nil off Windows; Default then uses the English table.
func Platform() hotkey.KeyNameResolver {
	return nil
}
