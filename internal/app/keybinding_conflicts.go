package app

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

const (
	keyScopeNormal = "normal"
	keyScopeEditor = "editor"
	keyScopeHelp   = "help"
)

type KeybindingConflict struct {
	Key      string
	Scope    string
	Commands []string
}

func (c KeybindingConflict) ToastMessage() string {
	return fmt.Sprintf(
		"keybinding conflict: %s in %s (%s)",
		c.Key,
		c.Scope,
		strings.Join(c.Commands, ", "),
	)
}

// DetectKeybindingConflicts reports keys bound to more than one command
// within a scope.
func DetectKeybindingConflicts(bindings *Keybindings) []KeybindingConflict {
	if bindings == nil {
		bindings = DefaultKeybindings()
	}
	type scopeKey struct {
		scope string
		key   string
	}
	commandsByScopeKey := map[scopeKey][]string{}
	for _, command := range KnownKeybindingCommands() {
		bound := strings.TrimSpace(bindings.KeyFor(command, defaultKeybindingByCommand[command]))
		if bound == "" {
			continue
		}
		for _, scope := range keybindingScopesFor(command) {
			k := scopeKey{scope: scope, key: bound}
			commandsByScopeKey[k] = append(commandsByScopeKey[k], command)
		}
	}
	conflicts := make([]KeybindingConflict, 0)
	for scoped, commands := range commandsByScopeKey {
		if len(commands) < 2 {
			continue
		}
		slices.Sort(commands)
		conflicts = append(conflicts, KeybindingConflict{
			Key:      scoped.key,
			Scope:    scoped.scope,
			Commands: commands,
		})
	}
	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].Scope != conflicts[j].Scope {
			return conflicts[i].Scope < conflicts[j].Scope
		}
		if conflicts[i].Key != conflicts[j].Key {
			return conflicts[i].Key < conflicts[j].Key
		}
		return strings.Join(conflicts[i].Commands, ",") < strings.Join(conflicts[j].Commands, ",")
	})
	return conflicts
}

func (m *Model) enqueueStartupKeybindingConflictToasts(conflicts []KeybindingConflict) {
	for _, conflict := range conflicts {
		m.enqueueStartupToast(toastLevelError, conflict.ToastMessage())
	}
}

// keybindingScopesFor lists where command is dispatched. The editor scope
// only sees the commands that must work while a capture is running.
func keybindingScopesFor(command string) []string {
	switch command {
	case KeyCommandForceQuit:
		return []string{keyScopeNormal, keyScopeEditor, keyScopeHelp}
	case KeyCommandReleaseFocus:
		return []string{keyScopeEditor}
	case KeyCommandHelp, KeyCommandQuit:
		return []string{keyScopeNormal, keyScopeHelp}
	default:
		return []string{keyScopeNormal}
	}
}
