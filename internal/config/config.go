// Package config loads and saves the demo visualizer's hand-edited
// settings: where a layout snapshot lives on disk, the container size to
// open it at, and the log level to run with.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/treykane/multisplitter/internal/logging"
)

var log = logging.New(logging.ComponentConfig)

const (
	configDirName  = ".multisplitter"
	configFileName = "config.toml"
)

// ErrNotConfigured is returned by Load when no config file exists yet.
var ErrNotConfigured = errors.New("multisplitter: not configured")

// Config stores the demo visualizer's user-editable settings.
type Config struct {
	LayoutPath         string `toml:"layout_path"`
	ContainerWidth     int    `toml:"container_width"`
	ContainerHeight    int    `toml:"container_height"`
	SeparatorThickness int    `toml:"separator_thickness"`
	LogLevel           string `toml:"log_level"`
}

// DefaultLayoutPath returns the default location a layout snapshot is
// saved to and loaded from.
func DefaultLayoutPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, "layout.json"), nil
}

func defaultConfig() (Config, error) {
	layoutPath, err := DefaultLayoutPath()
	if err != nil {
		return Config{}, err
	}
	return Config{
		LayoutPath:         layoutPath,
		ContainerWidth:     120,
		ContainerHeight:    40,
		SeparatorThickness: 1,
		LogLevel:           "info",
	}, nil
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Exists reports whether the config file exists.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Load reads and validates the saved configuration, filling in defaults
// for any field left at its zero value.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("no config file found, caller should initialize one", "path", path)
			return Config{}, ErrNotConfigured
		}
		return Config{}, err
	}

	cfg, err := defaultConfig()
	if err != nil {
		return Config{}, err
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, err
	}

	layoutPath, err := NormalizePath(cfg.LayoutPath)
	if err != nil {
		return Config{}, err
	}
	cfg.LayoutPath = layoutPath

	return cfg, nil
}

// Save writes configuration to disk as hand-editable TOML.
func Save(cfg Config) error {
	layoutPath, err := NormalizePath(cfg.LayoutPath)
	if err != nil {
		return err
	}
	cfg.LayoutPath = layoutPath

	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return err
	}
	log.Info("saved config", "path", path, "layout_path", cfg.LayoutPath)
	return nil
}

// NormalizePath expands a leading "~" and resolves the result to an
// absolute, cleaned path.
func NormalizePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("multisplitter: path is required")
	}

	expanded, err := expandHome(trimmed)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
