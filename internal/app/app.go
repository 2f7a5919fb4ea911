package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/five82/tzboard/internal/boltstore"
	"github.com/five82/tzboard/internal/config"
	appLog "github.com/five82/tzboard/internal/log"
	"github.com/five82/tzboard/internal/snapshot"
	"github.com/five82/tzboard/internal/state"
	"github.com/five82/tzboard/internal/ui"
	"github.com/five82/tzboard/internal/zone"
)

// Options configure the tzboard application.
type Options struct {
	ConfigPath string
	DBPath     string // empty uses the config's db_path
	Ephemeral  bool   // keep the board in memory only
	Dump       bool   // print the board as YAML instead of starting the UI
	Out        io.Writer
}

// Run boots the tzboard TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}

	closeLog, err := setupLogging(cfg, opts.Dump)
	if err != nil {
		return err
	}
	defer closeLog()

	saver, loader, closeStore, err := openStore(cfg, opts.Ephemeral)
	if err != nil {
		return err
	}
	defer closeStore()

	store := state.Restore(ctx, loader, state.Options{
		Saver:  saver,
		Picker: zone.NewRandomPicker(cfg.Zones),
	})

	if opts.Dump {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		return Dump(out, store.Board())
	}

	program := ui.NewProgram(ui.Options{
		Context:   ctx,
		Store:     store,
		ThemeName: cfg.Theme,
	})

	if err := StartTicker(ctx, cfg.Tick, func(t time.Time) {
		program.Send(ui.TickMsg(t))
	}); err != nil {
		return err
	}

	appLog.Info("tzboard started", "zones", len(store.Entries()), "tick", cfg.Tick)
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", err)
	}
	appLog.Info("tzboard stopped")
	return nil
}

// setupLogging sends log lines to the configured file. The UI owns the
// terminal, so nothing is written to stderr while it runs.
func setupLogging(cfg config.Config, dump bool) (func(), error) {
	level, err := appLog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	appLog.SetLevel(level)

	if dump {
		appLog.SetOutput(io.Discard)
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o700); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	appLog.SetOutput(f)
	return func() {
		appLog.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

func openStore(cfg config.Config, ephemeral bool) (snapshot.Saver, snapshot.Loader, func(), error) {
	if ephemeral {
		mem := &snapshot.MemoryStore{}
		return mem, mem, func() {}, nil
	}
	db, err := boltstore.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open board store: %w", err)
	}
	appLog.Info("board store opened", "path", db.Path())
	return db, db, func() {
		if err := db.Close(); err != nil {
			appLog.Error("close board store failed", err)
		}
	}, nil
}
