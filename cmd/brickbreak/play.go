package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreak/internal/platform/tui"
	"github.com/vovakirdan/brickbreak/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play in the current terminal. The 640x600 playfield is scaled to the
terminal size.

Controls:
  Left/A, Right/D  - Move the paddle
  R                - Rebuild the level
  Esc              - Quit (exit status 1)

Terminals report key presses but not releases, so a direction counts as
held for terminal.hold_ticks frames after its last press or auto-repeat.

Examples:
  brickbreak play
  brickbreak play --layout castle
  brickbreak play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
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

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sim := newSimulation(cfg, layout)
	rec := storage.NewSession("terminal", currentUser(), name)

	runErr := tui.Run(sim, cfg, width, height)
	recordSession(store, rec, sim)
	return runErr
}
