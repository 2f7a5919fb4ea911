package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds tzboard's runtime settings.
type Config struct {
	DBPath   string
	LogPath  string
	LogLevel string
	Tick     string
	Theme    string
	Zones    []string
}

const (
	defaultConfigPath = "~/.config/tzboard/config.toml"
	defaultDBPath     = "~/.local/share/tzboard/tzboard.db"
	defaultLogPath    = "~/.local/share/tzboard/tzboard.log"
	defaultLogLevel   = "info"
	defaultTick       = "* * * * *"
	defaultTheme      = "Nightfox"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DBPath   string   `toml:"db_path"`
		LogPath  string   `toml:"log_path"`
		LogLevel string   `toml:"log_level"`
		Tick     string   `toml:"tick"`
		Theme    string   `toml:"theme"`
		Zones    []string `toml:"zones"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.DBPath); v != "" {
		cfg.DBPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(raw.Tick); v != "" {
		cfg.Tick = v
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		cfg.Theme = v
	}
	for _, z := range raw.Zones {
		if z = strings.TrimSpace(z); z != "" {
			cfg.Zones = append(cfg.Zones, z)
		}
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		DBPath:   mustExpand(defaultDBPath),
		LogPath:  mustExpand(defaultLogPath),
		LogLevel: defaultLogLevel,
		Tick:     defaultTick,
		Theme:    defaultTheme,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
