package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"

	"hotkeyedit/internal/globalhotkey"
	"hotkeyedit/internal/hotkey"
	"hotkeyedit/internal/keyname"
	"hotkeyedit/internal/logging"
)

const (
	defaultMinRequired = "ctrl+shift+alt"
	defaultKeyRange    = "letters_digits_functions"
	defaultFieldWidth  = 28
)

// Navigation keys stay available to the host UI.
var defaultExcludedKeys = []string{"Up", "Down", "Left", "Right", "PageDown", "PageUp"}

type Config struct {
	Policy  PolicyConfig  `toml:"policy" yaml:"policy" json:"policy"`
	Display DisplayConfig `toml:"display" yaml:"display" json:"display"`
	Logging LoggingConfig `toml:"logging" yaml:"logging" json:"logging"`
	UI      UIConfig      `toml:"ui" yaml:"ui" json:"ui"`
	Global  GlobalConfig  `toml:"global" yaml:"global" json:"global"`
}

type PolicyConfig struct {
	MinRequiredModifiers string   `toml:"min_required_modifiers" yaml:"min_required_modifiers" json:"min_required_modifiers"`
	KeyRange             string   `toml:"key_range" yaml:"key_range" json:"key_range"`
	ExcludedKeys         []string `toml:"excluded_keys" yaml:"excluded_keys" json:"excluded_keys"`
	ClearKeys            []string `toml:"clear_keys" yaml:"clear_keys" json:"clear_keys"`
	AllowMetaKey         bool     `toml:"allow_meta_key" yaml:"allow_meta_key" json:"allow_meta_key"`
}

type DisplayConfig struct {
	NoneText        string            `toml:"none_text" yaml:"none_text" json:"none_text"`
	UnsupportedText string            `toml:"unsupported_text" yaml:"unsupported_text" json:"unsupported_text"`
	Width           int               `toml:"width" yaml:"width" json:"width"`
	KeyLabels       map[string]string `toml:"key_labels,omitempty" yaml:"key_labels,omitempty" json:"key_labels,omitempty"`
}

type LoggingConfig struct {
	Level string `toml:"level" yaml:"level" json:"level"`
	Path  string `toml:"path,omitempty" yaml:"path,omitempty" json:"path,omitempty"`
}

type UIConfig struct {
	Keybindings UIKeybindingsConfig `toml:"keybindings" yaml:"keybindings" json:"keybindings"`
}

type UIKeybindingsConfig struct {
	Path string `toml:"path,omitempty" yaml:"path,omitempty" json:"path,omitempty"`
}

type GlobalConfig struct {
	Enabled bool                 `toml:"enabled" yaml:"enabled" json:"enabled"`
	Hotkeys []GlobalHotkeyConfig `toml:"hotkeys,omitempty" yaml:"hotkeys,omitempty" json:"hotkeys,omitempty"`
}

type GlobalHotkeyConfig struct {
	Label string `toml:"label" yaml:"label" json:"label"`
	Keys  string `toml:"keys" yaml:"keys" json:"keys"`
}

func Default() Config {
	return Config{
		Policy: PolicyConfig{
			MinRequiredModifiers: defaultMinRequired,
			KeyRange:             defaultKeyRange,
			ExcludedKeys:         append([]string{}, defaultExcludedKeys...),
			ClearKeys:            hotkey.DefaultClearKeys().Names(),
		},
		Display: DisplayConfig{
			NoneText:        hotkey.NoneText,
			UnsupportedText: "Unsupported",
			Width:           defaultFieldWidth,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the config file under DataDir, falling back to defaults when
// it does not exist.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFromPath(path)
}

// LoadFromPath overlays the file at path on the defaults. Files ending in
// .yaml or .yml are read as YAML, anything else as TOML.
func LoadFromPath(path string) (Config, error) {
	cfg := Default()
	read := readTOML
	if isYAML(path) {
		read = readYAML
	}
	if err := read(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate parses every key and modifier name in the configuration.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.CapturePolicy(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.KeyLabels(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.GlobalBindings(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// CapturePolicy builds the capture policy described by [policy].
func (c Config) CapturePolicy() (hotkey.Policy, error) {
	minRequired, err := hotkey.ParseMinRequired(c.Policy.MinRequiredModifiers)
	if err != nil {
		return hotkey.Policy{}, fmt.Errorf("policy.min_required_modifiers: %w", err)
	}
	keyRange, err := hotkey.ParseKeyRange(c.Policy.KeyRange)
	if err != nil {
		return hotkey.Policy{}, fmt.Errorf("policy.key_range: %w", err)
	}
	excluded, err := hotkey.ParseKeySet(c.Policy.ExcludedKeys)
	if err != nil {
		return hotkey.Policy{}, fmt.Errorf("policy.excluded_keys: %w", err)
	}
	clearKeys, err := hotkey.ParseKeySet(c.Policy.ClearKeys)
	if err != nil {
		return hotkey.Policy{}, fmt.Errorf("policy.clear_keys: %w", err)
	}
	return hotkey.Policy{
		MinRequired: minRequired,
		KeyRange:    keyRange,
		Excluded:    excluded,
		Clear:       clearKeys,
		AllowMeta:   c.Policy.AllowMetaKey,
	}, nil
}

// KeyLabels returns the display resolver: the platform names, then the
// English table with [display.key_labels] applied.
func (c Config) KeyLabels() (hotkey.KeyNameResolver, error) {
	table := keyname.English()
	if len(c.Display.KeyLabels) > 0 {
		overridden, err := table.WithOverrides(c.Display.KeyLabels)
		if err != nil {
			return nil, fmt.Errorf("display.key_labels: %w", err)
		}
		return keyname.Chain(overridden, keyname.Platform()), nil
	}
	return keyname.Chain(keyname.Platform(), table), nil
}

// GlobalBindings parses [global] hotkeys. The result is empty when global
// hotkeys are disabled.
func (c Config) GlobalBindings() ([]globalhotkey.Binding, error) {
	if !c.Global.Enabled {
		return nil, nil
	}
	out := make([]globalhotkey.Binding, 0, len(c.Global.Hotkeys))
	for i, entry := range c.Global.Hotkeys {
		h, err := hotkey.ParseHotKey(entry.Keys)
		if err != nil {
			return nil, fmt.Errorf("global.hotkeys[%d]: %w", i, err)
		}
		if h.IsNone() {
			return nil, fmt.Errorf("global.hotkeys[%d]: keys are required", i)
		}
		label := strings.TrimSpace(entry.Label)
		if label == "" {
			label = h.String()
		}
		out = append(out, globalhotkey.Binding{Label: label, HotKey: h})
	}
	return out, nil
}

func (c Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Logging.Level)
}

// LogPath returns the configured log file, defaulting to UILogPath.
func (c Config) LogPath() (string, error) {
	if path := strings.TrimSpace(c.Logging.Path); path != "" {
		return resolveConfigPath(path)
	}
	return UILogPath()
}

func (c Config) FieldWidth() int {
	if c.Display.Width <= 0 {
		return defaultFieldWidth
	}
	return c.Display.Width
}

func (c Config) ResolveKeybindingsPath() (string, error) {
	path := strings.TrimSpace(c.UI.Keybindings.Path)
	if path == "" {
		return KeybindingsPath()
	}
	return resolveConfigPath(path)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func readTOML(path string, out any) error {
	data, err := readConfigFile(path)
	if err != nil || data == nil {
		return err
	}
	return toml.Unmarshal(data, out)
}

func readYAML(path string, out any) error {
	data, err := readConfigFile(path)
	if err != nil || data == nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

// readConfigFile returns nil data for a missing or blank file.
func readConfigFile(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	return data, nil
}
