package config

import (
	_ "embed"

	"github.com/vovakirdan/brickbreak/internal/core"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// DefaultLayout is the reference block layout.
var DefaultLayout = []string{
	".--------.",
	".-........",
	".-........",
	".-........",
	".-........",
	".-........",
	".-........",
	".--------.",
	"..........",
	".--------.",
	".-......-.",
	".-......-.",
	".-......-.",
	".-......-.",
	".-......-.",
	".-......-.",
	".--------.",
	"..........",
	".-------..",
	".-.....-..",
	".-......-.",
	".-......-.",
	".-.....-..",
	".-------..",
	"..........",
	".-------..",
	".-........",
	".-........",
	".-........",
	".-------..",
	".-........",
	".-........",
	".-........",
	".-------..",
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:    640,
			Height:   600,
			TickRate: 60,
		},
		Physics: PhysicsConfig{
			SpeedScale:  1.1,
			Sensitivity: 0.3,
			Friction:    0.1,
			VelocityCap: 3,
		},
		Ball: BallConfig{
			Size:     3,
			Start:    core.V(315, 450),
			Velocity: core.V(0, -1),
		},
		Paddle: PaddleConfig{
			Width:  30,
			Height: 3,
			Start:  core.V(290, 550),
		},
		Blocks: BlockConfig{
			Width:   60,
			Height:  14,
			Padding: 1,
		},
		Colors: ColorConfig{
			Background: core.ColorBlack,
			Ball:       core.ColorGreen,
			Paddle:     core.ColorBlue,
			Block:      core.ColorRed,
		},
		Quirks: QuirksConfig{
			HorizontalBounceUsesVY: true,
			OneSidedVelocityCap:    true,
		},
		Terminal: TerminalConfig{
			HoldTicks: 30,
		},
		Layout: append([]string(nil), DefaultLayout...),
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
