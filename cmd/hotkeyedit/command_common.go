package main

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"hotkeyedit/internal/config"
)

const version = "dev"

const (
	outputFormatJSON = "json"
	outputFormatTOML = "toml"
)

type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}

// loadConfig reads path, or the default config file when path is empty.
// It returns the resolved path alongside the configuration.
func loadConfig(path string) (config.Config, string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		resolved, err := config.ConfigPath()
		if err != nil {
			return config.Config{}, "", err
		}
		path = resolved
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return config.Config{}, "", err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, path, nil
}

func writeOutput(out io.Writer, format string, payload any) error {
	switch format {
	case outputFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case outputFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.New("unsupported format")
	}
}

func resolveOutputFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", outputFormatJSON:
		return outputFormatJSON, nil
	case outputFormatTOML:
		return outputFormatTOML, nil
	default:
		return "", errors.New("invalid format: must be json or toml")
	}
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
	}

	exe, err := os.Executable()
	if err == nil {
		file, err := os.Open(exe)
		if err == nil {
			defer file.Close()
			hasher := sha256.New()
			if _, err := io.Copy(hasher, file); err == nil {
				sum := hasher.Sum(nil)
				return fmt.Sprintf("bin-%x", sum[:6])
			}
		}
	}

	return version
}
