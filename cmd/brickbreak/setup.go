package main

import (
	"fmt"
	"os"

	"github.com/vovakirdan/brickbreak/internal/breakout"
	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/storage"
)

// loadConfig loads the config named by --config or found on the search path.
func loadConfig() (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// openStore opens the database. Play still works without one, so failures
// are logged and a nil store is returned.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// resolveLayout picks the layout from --layout, --layout-file or the config,
// and returns it with the name used in session records.
func resolveLayout(cfg config.Config, store *storage.Store) (breakout.Layout, string, error) {
	var (
		layout breakout.Layout
		name   string
	)

	switch {
	case flagLayoutFile != "":
		f, err := os.Open(flagLayoutFile)
		if err != nil {
			return nil, "", fmt.Errorf("cannot open layout file: %w", err)
		}
		defer f.Close()
		if layout, err = breakout.ParseLayout(f); err != nil {
			return nil, "", err
		}
		name = flagLayoutFile

	case flagLayout != "":
		if store == nil {
			return nil, "", fmt.Errorf("layout %q needs the database", flagLayout)
		}
		rows, err := store.Layout(flagLayout)
		if err != nil {
			return nil, "", err
		}
		layout, name = breakout.Layout(rows), flagLayout

	default:
		layout, name = breakout.Layout(cfg.Layout), "config"
	}

	cols, rows := breakout.BlockGeometry{
		Width:   cfg.Blocks.Width,
		Height:  cfg.Blocks.Height,
		Padding: cfg.Blocks.Padding,
	}.Cells(cfg.Screen.Width, cfg.Screen.Height)
	if err := layout.Validate(cols, rows); err != nil {
		logger.Warn("layout does not fit the playfield", "layout", name, "error", err)
	}
	logger.Debug("layout selected", "layout", name, "blocks", layout.Count())

	return layout, name, nil
}

// newSimulation builds a simulation from the config and the selected layout.
func newSimulation(cfg config.Config, layout breakout.Layout) *breakout.Simulation {
	sim := breakout.New(cfg)
	sim.SetLayout(layout)
	return sim
}

// recordSession stores the session's counters. Failures are only logged.
func recordSession(store *storage.Store, rec storage.Session, sim *breakout.Simulation) {
	stats := sim.Stats()
	rec.Frames = stats.Frames
	rec.Resets = stats.Resets
	rec.Destroyed = stats.Destroyed
	rec.Escaped = sim.State() == breakout.StateQuit

	logger.Info("session ended",
		"id", rec.ID,
		"host", rec.Host,
		"frames", rec.Frames,
		"resets", rec.Resets,
		"destroyed", rec.Destroyed,
	)
	if store == nil {
		return
	}
	if err := store.SaveSession(rec); err != nil {
		logger.Warn("could not save session", "id", rec.ID, "error", err)
	}
}

func currentUser() string {
	return os.Getenv("USER")
}
