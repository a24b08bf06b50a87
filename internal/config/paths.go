package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const appDirName = ".hotkeyedit"

// DataDir returns the base data directory for hotkeyedit.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the path to the TOML configuration file.
func ConfigPath() (string, error) {
	return dataFile("config.toml")
}

// KeybindingsPath returns the default path of the TUI keybinding overrides.
func KeybindingsPath() (string, error) {
	return dataFile("keybindings.json")
}

// UILogPath returns the path of the TUI log file.
func UILogPath() (string, error) {
	return dataFile("ui.log")
}

func dataFile(name string) (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, name), nil
}

// resolveConfigPath expands "~/" and anchors relative paths in DataDir.
func resolveConfigPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is required")
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, path), nil
}
