package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"hotkeyedit/internal/app"
	"hotkeyedit/internal/globalhotkey"
	"hotkeyedit/internal/hotkey"
	"hotkeyedit/internal/logging"
)

type EditCommand struct {
	stdout       io.Writer
	stderr       io.Writer
	runUI        func(ctx context.Context, opts app.RunOptions) (hotkey.HotKey, error)
	newRegistrar func() globalhotkey.Registrar
	version      string
}

func NewEditCommand(
	stdout, stderr io.Writer,
	runUI func(ctx context.Context, opts app.RunOptions) (hotkey.HotKey, error),
	newRegistrar func() globalhotkey.Registrar,
	version string,
) *EditCommand {
	return &EditCommand{
		stdout:       stdout,
		stderr:       stderr,
		runUI:        runUI,
		newRegistrar: newRegistrar,
		version:      version,
	}
}

func (c *EditCommand) Run(args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	configPath := fs.String("config", "", "config file (toml or yaml)")
	value := fs.String("value", "", "initial hotkey, e.g. ctrl+alt+shift+k")
	noWatch := fs.Bool("no-watch", false, "do not reload the config file when it changes")
	noGlobal := fs.Bool("no-global", false, "do not register [global] hotkeys")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if c.runUI == nil {
		return errors.New("ui runner is not configured")
	}

	initial, err := hotkey.ParseHotKey(*value)
	if err != nil {
		return err
	}
	cfg, resolvedPath, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	logger, closer, err := logging.OpenFile(logPath, cfg.LogLevel())
	if err != nil {
		fmt.Fprintf(c.stderr, "logging disabled: %v\n", err)
		logger = logging.Nop()
	}
	if closer != nil {
		defer closer.Close()
	}
	logger = logger.With(logging.F("run", logging.NewSessionID()))
	logger.Info("edit_start", logging.F("version", c.version), logging.F("config", resolvedPath))

	var registrar globalhotkey.Registrar
	if cfg.Global.Enabled && !*noGlobal {
		if c.newRegistrar != nil {
			registrar = c.newRegistrar()
		}
		if registrar == nil {
			fmt.Fprintln(c.stderr, "global hotkeys are not supported by this build; rebuild with -tags hotkeyedit_x11")
			logger.Warn("global_hotkeys_unavailable")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	final, err := c.runUI(ctx, app.RunOptions{
		Config:     cfg,
		ConfigPath: resolvedPath,
		Initial:    initial,
		Registrar:  registrar,
		Logger:     logger,
		Watch:      !*noWatch,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, final.String())
	return nil
}
