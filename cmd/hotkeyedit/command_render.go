package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"hotkeyedit/internal/hotkey"
)

type RenderCommand struct {
	stdout io.Writer
	stderr io.Writer
}

func NewRenderCommand(stdout, stderr io.Writer) *RenderCommand {
	return &RenderCommand{
		stdout: stdout,
		stderr: stderr,
	}
}

func (c *RenderCommand) Run(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	configPath := fs.String("config", "", "config file (toml or yaml)")
	symbolic := fs.Bool("symbolic", false, "use symbolic key names instead of display labels")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("hotkey is required")
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	var resolver hotkey.KeyNameResolver = hotkey.Symbolic
	if !*symbolic {
		resolver, err = cfg.KeyLabels()
		if err != nil {
			return err
		}
	}
	for _, raw := range fs.Args() {
		h, err := hotkey.ParseHotKey(raw)
		if err != nil {
			return err
		}
		text := h.RenderWithPlaceholder(resolver, cfg.Display.NoneText)
		fmt.Fprintln(c.stdout, strings.TrimSpace(text))
	}
	return nil
}
