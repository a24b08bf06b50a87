package main

import (
	"flag"
	"io"

	"hotkeyedit/internal/app"
	"hotkeyedit/internal/config"
)

type ConfigCommand struct {
	stdout io.Writer
	stderr io.Writer
}

type configOutput struct {
	ConfigPath      string            `json:"config_path,omitempty" toml:"config_path,omitempty"`
	KeybindingsPath string            `json:"keybindings_path,omitempty" toml:"keybindings_path,omitempty"`
	LogPath         string            `json:"log_path,omitempty" toml:"log_path,omitempty"`
	Config          config.Config     `json:"config" toml:"config"`
	Keybindings     map[string]string `json:"keybindings,omitempty" toml:"keybindings,omitempty"`
}

func NewConfigCommand(stdout, stderr io.Writer) *ConfigCommand {
	return &ConfigCommand{
		stdout: stdout,
		stderr: stderr,
	}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("default", false, "print default config values")
	configPath := fs.String("config", "", "config file (toml or yaml)")
	format := fs.String("format", outputFormatJSON, "output format: json|toml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolvedFormat, err := resolveOutputFormat(*format)
	if err != nil {
		return err
	}
	payload, err := c.buildOutput(*defaults, *configPath)
	if err != nil {
		return err
	}
	return writeOutput(c.stdout, resolvedFormat, payload)
}

func (c *ConfigCommand) buildOutput(defaults bool, path string) (configOutput, error) {
	var cfg config.Config
	var resolvedPath string
	var err error
	if defaults {
		cfg = config.Default()
		resolvedPath, err = config.ConfigPath()
	} else {
		cfg, resolvedPath, err = loadConfig(path)
	}
	if err != nil {
		return configOutput{}, err
	}

	keybindingsPath, err := cfg.ResolveKeybindingsPath()
	if err != nil {
		return configOutput{}, err
	}
	logPath, err := cfg.LogPath()
	if err != nil {
		return configOutput{}, err
	}
	var bindings *app.Keybindings
	if defaults {
		bindings = app.DefaultKeybindings()
	} else {
		bindings, err = app.LoadKeybindings(keybindingsPath)
		if err != nil {
			return configOutput{}, err
		}
	}
	return configOutput{
		ConfigPath:      resolvedPath,
		KeybindingsPath: keybindingsPath,
		LogPath:         logPath,
		Config:          cfg,
		Keybindings:     bindings.Bindings(),
	}, nil
}
