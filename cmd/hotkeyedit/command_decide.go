package main

import (
	"errors"
	"flag"
	"io"
	"strings"

	"hotkeyedit/internal/editor"
	"hotkeyedit/internal/hotkey"
)

type DecideCommand struct {
	stdout io.Writer
	stderr io.Writer
}

type decideOutput struct {
	Event    decideEventOutput `json:"event" toml:"event"`
	Decision hotkey.Decision   `json:"decision" toml:"decision"`
	Value    hotkey.HotKey     `json:"value" toml:"value"`
	Text     string            `json:"text" toml:"text"`
	Showing  string            `json:"showing" toml:"showing"`
}

type decideEventOutput struct {
	Key       hotkey.Key         `json:"key" toml:"key"`
	SystemKey *hotkey.Key        `json:"system_key,omitempty" toml:"system_key,omitempty"`
	Modifiers hotkey.ModifierSet `json:"modifiers" toml:"modifiers"`
}

func NewDecideCommand(stdout, stderr io.Writer) *DecideCommand {
	return &DecideCommand{
		stdout: stdout,
		stderr: stderr,
	}
}

func (c *DecideCommand) Run(args []string) error {
	fs := flag.NewFlagSet("decide", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	configPath := fs.String("config", "", "config file (toml or yaml)")
	keyName := fs.String("key", "", "key pressed, e.g. q or f5")
	mods := fs.String("mods", "", "modifiers held, e.g. ctrl+alt+shift")
	systemKey := fs.String("system", "", "real key of a system key event, e.g. f10")
	value := fs.String("value", "", "value bound before the press")
	format := fs.String("format", outputFormatJSON, "output format: json|toml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolvedFormat, err := resolveOutputFormat(*format)
	if err != nil {
		return err
	}
	ev, err := parseKeyEvent(*keyName, *mods, *systemKey)
	if err != nil {
		return err
	}
	initial, err := hotkey.ParseHotKey(*value)
	if err != nil {
		return err
	}
	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	policy, err := cfg.CapturePolicy()
	if err != nil {
		return err
	}
	labels, err := cfg.KeyLabels()
	if err != nil {
		return err
	}

	field := editor.NewField(policy,
		editor.WithResolver(labels),
		editor.WithNoneText(cfg.Display.NoneText),
		editor.WithUnsupportedText(cfg.Display.UnsupportedText),
	)
	field.SetValue(initial)
	decision, _ := field.Press(ev)

	out := decideOutput{
		Event: decideEventOutput{
			Key:       ev.Key,
			Modifiers: ev.Modifiers,
		},
		Decision: decision,
		Value:    field.Value(),
		Text:     field.Text(),
		Showing:  field.Indicator().String(),
	}
	if ev.Key == hotkey.KeySystem {
		out.Event.SystemKey = &ev.SystemKey
	}
	return writeOutput(c.stdout, resolvedFormat, out)
}

func parseKeyEvent(keyName, mods, systemKey string) (hotkey.KeyEvent, error) {
	var ev hotkey.KeyEvent
	modifiers, err := hotkey.ParseModifiers(mods)
	if err != nil {
		return ev, err
	}
	ev.Modifiers = modifiers
	if strings.TrimSpace(systemKey) != "" {
		shadowed, err := hotkey.ParseKey(systemKey)
		if err != nil {
			return ev, err
		}
		ev.Key = hotkey.KeySystem
		ev.SystemKey = shadowed
		return ev, nil
	}
	if strings.TrimSpace(keyName) == "" {
		return ev, errors.New("--key or --system is required")
	}
	key, err := hotkey.ParseKey(keyName)
	if err != nil {
		return ev, err
	}
	ev.Key = key
	return ev, nil
}
