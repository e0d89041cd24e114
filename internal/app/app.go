package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/davess/kview/internal/config"
	"github.com/davess/kview/internal/kube"
	"github.com/davess/kview/internal/prefs"
	"github.com/davess/kview/internal/state"
	"github.com/davess/kview/internal/ui"
)

// Options configure the kview application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/kview/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
}

// Run boots the kview TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	logger := newLogger(cfg)

	client, err := kube.NewClient(cfg.APIBind)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	StartPoller(ctx, store, client, interval, logger)

	// Populate the store once before the UI starts so the first frame has
	// data when the backend is up.
	_ = refresh(ctx, store, client)

	uiOpts := ui.Options{
		Context:    ctx,
		Store:      store,
		PollTick:   interval,
		PageSize:   cfg.PageSize,
		ThemeName:  userPrefs.Theme,
		Visibility: prefs.NewStore(opts.PrefsPath),
		APIBind:    cfg.APIBind,
	}
	return ui.Run(uiOpts)
}

// newLogger writes structured logs to the config's log file. The TUI
// owns the terminal, so stderr is not an option; when the file cannot
// be opened logging is discarded rather than failing startup.
func newLogger(cfg config.Config) *log.Logger {
	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}
	logger := log.New(file)
	logger.SetReportTimestamp(true)
	return logger
}
