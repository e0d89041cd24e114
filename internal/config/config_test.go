package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBind != defaultAPIBind {
		t.Fatalf("APIBind = %q, want %q", cfg.APIBind, defaultAPIBind)
	}
	if cfg.PollSeconds != defaultPollSeconds {
		t.Fatalf("PollSeconds = %d, want %d", cfg.PollSeconds, defaultPollSeconds)
	}
	if cfg.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.PageSize, defaultPageSize)
	}
	if !strings.HasSuffix(cfg.LogPath(), "kview.log") {
		t.Fatalf("LogPath = %q", cfg.LogPath())
	}
}

func TestLoad_ReadsExplicitFile(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "config.toml")
	content := "api_bind = \"10.0.0.5:9000\"\npoll_seconds = 10\npage_size = 50\n"
	if err := os.WriteFile(cfgFile, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBind != "10.0.0.5:9000" {
		t.Fatalf("APIBind = %q", cfg.APIBind)
	}
	if cfg.PollSeconds != 10 || cfg.PageSize != 50 {
		t.Fatalf("PollSeconds/PageSize = %d/%d, want 10/50", cfg.PollSeconds, cfg.PageSize)
	}
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "config.toml")
	if err := os.WriteFile(cfgFile, []byte("api_bind = [broken"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(cfgFile); err == nil {
		t.Fatalf("Load succeeded on malformed config")
	}
}

func TestLoad_IgnoresNonPositiveNumbers(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "config.toml")
	if err := os.WriteFile(cfgFile, []byte("poll_seconds = -1\npage_size = 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PollSeconds != defaultPollSeconds || cfg.PageSize != defaultPageSize {
		t.Fatalf("PollSeconds/PageSize = %d/%d, want defaults", cfg.PollSeconds, cfg.PageSize)
	}
}
