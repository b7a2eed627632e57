package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/platform/window"
	"github.com/vovakirdan/brickbreak/internal/storage"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play at the configured tick rate.

Controls:
  Left/A, Right/D  - Move the paddle while held
  R                - Rebuild the level
  Esc              - Quit (exit status 1)

Examples:
  brickbreak window
  brickbreak window --scale 2`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	layout, name, err := resolveLayout(cfg, store)
	if err != nil {
		return err
	}

	sim := newSimulation(cfg, layout)
	rec := storage.NewSession("window", currentUser(), name)

	runErr := window.Run(sim, cfg, flagScale)
	recordSession(store, rec, sim)
	return runErr
}
