package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/breakout"
	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/platform/tui"
	"github.com/vovakirdan/brickbreak/internal/storage"
)

var (
	flagFrames   int
	flagScript   string
	flagRealtime bool
	flagCols     int
	flagRows     int
	flagPrint    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run frames headless and print the result",
	Long: `Run the simulation without a display and print the final state.

The script is a comma separated list of action:frames steps. Actions are
left, right, none and reset. The last step repeats until --frames is
reached.

Examples:
  brickbreak simulate --frames 600
  brickbreak simulate --frames 900 --script left:60,none:30,right:120
  brickbreak simulate --frames 120 --print --cols 64 --rows 30`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to run")
	simulateCmd.Flags().StringVar(&flagScript, "script", "none:1", "Held input script (action:frames,...)")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the configured tick rate")
	simulateCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the final frame as text")
	simulateCmd.Flags().IntVar(&flagCols, "cols", 64, "Columns of the printed frame")
	simulateCmd.Flags().IntVar(&flagRows, "rows", 30, "Rows of the printed frame")
}

// scriptStep holds one action for a number of frames.
type scriptStep struct {
	action core.Action
	frames int
}

// scriptInput replays a parsed script, repeating the last step.
type scriptInput struct {
	steps []scriptStep
	frame int
}

func (s *scriptInput) Poll() core.InputFrame {
	if len(s.steps) == 0 {
		return core.NewInputFrame()
	}
	step := s.steps[0]
	s.frame++
	if s.frame >= step.frames && len(s.steps) > 1 {
		s.steps = s.steps[1:]
		s.frame = 0
	}
	return core.NewInputFrame(step.action)
}

func parseScript(text string) ([]scriptStep, error) {
	var steps []scriptStep
	for part := range strings.SplitSeq(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, count, ok := strings.Cut(part, ":")
		if !ok {
			count = "1"
		}

		var action core.Action
		switch strings.ToLower(name) {
		case "left":
			action = core.ActionLeft
		case "right":
			action = core.ActionRight
		case "reset":
			action = core.ActionReset
		case "none", "":
			action = core.ActionNone
		default:
			return nil, fmt.Errorf("unknown action %q", name)
		}

		n, err := strconv.Atoi(count)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid frame count %q for %s", count, name)
		}
		steps = append(steps, scriptStep{action: action, frames: n})
	}
	return steps, nil
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStoreIfNeeded()
	if store != nil {
		defer store.Close()
	}

	layout, _, err := resolveLayout(cfg, store)
	if err != nil {
		return err
	}

	steps, err := parseScript(flagScript)
	if err != nil {
		return err
	}

	sim := newSimulation(cfg, layout)
	canvas := tui.NewCellCanvas(cfg.Screen.Width, cfg.Screen.Height, max(flagCols, 1), max(flagRows, 1))

	var pacer breakout.Pacer = breakout.NoPacer{}
	if flagRealtime {
		ticker := breakout.NewTickerPacer(cfg.Screen.TickRate)
		defer ticker.Stop()
		pacer = ticker
	}

	loop := breakout.NewLoop(sim, &scriptInput{steps: steps}, canvas, pacer)
	if err := loop.RunFrames(flagFrames); err != nil {
		return err
	}

	snap := sim.Snapshot()
	stats := sim.Stats()
	logger.Info("simulation finished",
		"frames", stats.Frames,
		"resets", stats.Resets,
		"destroyed", stats.Destroyed,
		"blocks", snap.BlockCount,
		"hash", fmt.Sprintf("%016x", snap.Hash()),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ball    %.3f,%.3f  velocity %.3f,%.3f\n", snap.BallX, snap.BallY, snap.BallVX, snap.BallVY)
	fmt.Fprintf(out, "paddle  %.3f,%.3f  velocity %.3f\n", snap.PaddleX, snap.PaddleY, snap.PaddleVX)
	fmt.Fprintf(out, "blocks  %d remaining, %d destroyed\n", snap.BlockCount, stats.Destroyed)
	fmt.Fprintf(out, "hash    %016x\n", snap.Hash())
	if flagPrint {
		fmt.Fprintln(out, canvas.Screen().String())
	}
	return nil
}

// openStoreIfNeeded opens the database only when a saved layout is requested.
func openStoreIfNeeded() *storage.Store {
	if flagLayout == "" {
		return nil
	}
	return openStore()
}
