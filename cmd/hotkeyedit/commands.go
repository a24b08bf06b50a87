package main

import (
	"context"
	"io"
	"os"

	"hotkeyedit/internal/app"
	"hotkeyedit/internal/globalhotkey"
	"hotkeyedit/internal/hotkey"
)

type commandRunner interface {
	Run(args []string) error
}

type commandWiring struct {
	stdout       io.Writer
	stderr       io.Writer
	runUI        func(ctx context.Context, opts app.RunOptions) (hotkey.HotKey, error)
	newRegistrar func() globalhotkey.Registrar
	version      string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:       stdout,
		stderr:       stderr,
		runUI:        app.Run,
		newRegistrar: newNativeRegistrar,
		version:      buildVersion(),
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"edit":   NewEditCommand(wiring.stdout, wiring.stderr, wiring.runUI, wiring.newRegistrar, wiring.version),
		"decide": NewDecideCommand(wiring.stdout, wiring.stderr),
		"render": NewRenderCommand(wiring.stdout, wiring.stderr),
		"config": NewConfigCommand(wiring.stdout, wiring.stderr),
		"keys":   NewKeysCommand(wiring.stdout, wiring.stderr),
	}
}
