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

// Config captures the fields kview needs to reach its backend.
type Config struct {
	APIBind     string
	LogDir      string
	PollSeconds int
	PageSize    int
}

const (
	defaultConfigPath  = "~/.config/kview/config.toml"
	defaultLogDir      = "~/.local/state/kview"
	defaultAPIBind     = "127.0.0.1:8591"
	defaultPollSeconds = 5
	defaultPageSize    = 25
)

// Load locates and parses the kview config, falling back to defaults
// when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBind:     defaultAPIBind,
		LogDir:      mustExpand(defaultLogDir),
		PollSeconds: defaultPollSeconds,
		PageSize:    defaultPageSize,
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
		APIBind     string `toml:"api_bind"`
		LogDir      string `toml:"log_dir"`
		PollSeconds int    `toml:"poll_seconds"`
		PageSize    int    `toml:"page_size"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if bind := strings.TrimSpace(raw.APIBind); bind != "" {
		cfg.APIBind = bind
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if raw.PollSeconds > 0 {
		cfg.PollSeconds = raw.PollSeconds
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}

	return cfg, nil
}

// LogPath returns the path of kview's own log file.
func (c Config) LogPath() string {
	dir := c.LogDir
	if strings.TrimSpace(dir) == "" {
		dir = mustExpand(defaultLogDir)
	}
	return filepath.Join(dir, "kview.log")
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
