package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields Reserva reads from its config file.
type Config struct {
	APIBind        string
	DataDir        string
	BootstrapPath  string
	PageSize       int
	PollSeconds    int
	DebounceMS     int
	RequestTimeout time.Duration
}

const (
	defaultConfigPath     = "~/.config/reserva/config.toml"
	defaultDataDir        = "~/.local/share/reserva"
	defaultAPIBind        = "127.0.0.1:3001"
	defaultPageSize       = 10
	defaultPollSeconds    = 30
	defaultDebounceMS     = 400
	defaultTimeoutSeconds = 5
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBind:        defaultAPIBind,
		DataDir:        mustExpand(defaultDataDir),
		PageSize:       defaultPageSize,
		PollSeconds:    defaultPollSeconds,
		DebounceMS:     defaultDebounceMS,
		RequestTimeout: defaultTimeoutSeconds * time.Second,
	}

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
		APIBind        string `toml:"api_bind"`
		DataDir        string `toml:"data_dir"`
		BootstrapPath  string `toml:"bootstrap_path"`
		PageSize       int    `toml:"page_size"`
		PollSeconds    int    `toml:"poll_seconds"`
		DebounceMS     int    `toml:"debounce_ms"`
		TimeoutSeconds int    `toml:"request_timeout_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if bind := strings.TrimSpace(raw.APIBind); bind != "" {
		cfg.APIBind = bind
	}
	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}
	if boot := strings.TrimSpace(raw.BootstrapPath); boot != "" {
		cfg.BootstrapPath = mustExpand(boot)
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.PollSeconds > 0 {
		cfg.PollSeconds = raw.PollSeconds
	}
	if raw.DebounceMS > 0 {
		cfg.DebounceMS = raw.DebounceMS
	}
	if raw.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}

	return cfg, nil
}

// Debounce returns the free-text filter quiet period.
func (c Config) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return defaultDebounceMS * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// PollInterval returns the background refresh cadence.
func (c Config) PollInterval() time.Duration {
	if c.PollSeconds <= 0 {
		return defaultPollSeconds * time.Second
	}
	return time.Duration(c.PollSeconds) * time.Second
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
