// Package config provides YAML-based configuration loading for brickbreak.
// Every tunable constant of the simulation lives here so hosts and tests can
// build a Simulation from a single value.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// Config contains all configuration for a brickbreak session.
type Config struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Blocks   BlockConfig    `yaml:"blocks"`
	Colors   ColorConfig    `yaml:"colors"`
	Quirks   QuirksConfig   `yaml:"quirks"`
	Terminal TerminalConfig `yaml:"terminal"`
	Layout   []string       `yaml:"layout"`
}

// ScreenConfig defines the playfield size in pixels and the frame rate.
type ScreenConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"` // Frames per second
}

// PhysicsConfig defines the motion constants.
type PhysicsConfig struct {
	SpeedScale  float64 `yaml:"speed_scale"`
	Sensitivity float64 `yaml:"sensitivity"`
	Friction    float64 `yaml:"friction"`
	VelocityCap float64 `yaml:"velocity_cap"`
}

// BallConfig defines the ball's size and initial motion.
type BallConfig struct {
	Size     int       `yaml:"size"`
	Start    core.Vec2 `yaml:"start"`
	Velocity core.Vec2 `yaml:"velocity"`
}

// PaddleConfig defines the paddle's size and initial position.
type PaddleConfig struct {
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	Start  core.Vec2 `yaml:"start"`
}

// BlockConfig defines block cell geometry.
type BlockConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Padding int `yaml:"padding"`
}

// ColorConfig assigns a fill colour to each kind of entity.
type ColorConfig struct {
	Background core.Color `yaml:"background"`
	Ball       core.Color `yaml:"ball"`
	Paddle     core.Color `yaml:"paddle"`
	Block      core.Color `yaml:"block"`
}

// QuirksConfig toggles the reference behaviours that look like bugs.
// Both default to true; false selects the corrected behaviour.
type QuirksConfig struct {
	// HorizontalBounceUsesVY tests the horizontal bound with the y velocity.
	HorizontalBounceUsesVY bool `yaml:"horizontal_bounce_uses_vy"`
	// OneSidedVelocityCap clamps inherited velocity from above only.
	OneSidedVelocityCap bool `yaml:"one_sided_velocity_cap"`
}

// TerminalConfig tunes the terminal host.
type TerminalConfig struct {
	// HoldTicks is how many frames a key counts as held after its last press.
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate reports every field that cannot drive a simulation.
func (c Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Screen.TickRate))
	}
	if c.Physics.Friction < 0 || c.Physics.Friction > 1 {
		errs = append(errs, fmt.Errorf("friction must be within [0, 1], got %g", c.Physics.Friction))
	}
	if c.Physics.VelocityCap <= 0 {
		errs = append(errs, fmt.Errorf("velocity_cap must be positive, got %g", c.Physics.VelocityCap))
	}
	if c.Ball.Size <= 0 {
		errs = append(errs, fmt.Errorf("ball size must be positive, got %d", c.Ball.Size))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %dx%d", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Width > c.Screen.Width {
		errs = append(errs, fmt.Errorf("paddle width %d exceeds screen width %d", c.Paddle.Width, c.Screen.Width))
	}
	if c.Blocks.Width <= 0 || c.Blocks.Height <= 0 {
		errs = append(errs, fmt.Errorf("block size must be positive, got %dx%d", c.Blocks.Width, c.Blocks.Height))
	}
	if c.Blocks.Padding < 0 {
		errs = append(errs, fmt.Errorf("block padding must not be negative, got %d", c.Blocks.Padding))
	}
	if c.Terminal.HoldTicks < 1 {
		errs = append(errs, fmt.Errorf("hold_ticks must be at least 1, got %d", c.Terminal.HoldTicks))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
