package breakout

import "github.com/vovakirdan/brickbreak/internal/config"

// Physics holds the motion constants shared by the ball and paddle.
type Physics struct {
	ScreenW, ScreenH int

	SpeedScale  float64 // Ball speed multiplier on paddle hits
	Sensitivity float64 // Paddle acceleration per held frame
	Friction    float64 // Paddle velocity decay per idle frame
	VelocityCap float64 // Upper bound after inheriting paddle velocity

	// ParityBounce tests the horizontal wall with the y velocity.
	ParityBounce bool
	// OneSidedCap clamps inherited velocity from above only.
	OneSidedCap bool
}

// PhysicsFrom extracts the physics constants from a config.
func PhysicsFrom(cfg config.Config) Physics {
	return Physics{
		ScreenW:      cfg.Screen.Width,
		ScreenH:      cfg.Screen.Height,
		SpeedScale:   cfg.Physics.SpeedScale,
		Sensitivity:  cfg.Physics.Sensitivity,
		Friction:     cfg.Physics.Friction,
		VelocityCap:  cfg.Physics.VelocityCap,
		ParityBounce: cfg.Quirks.HorizontalBounceUsesVY,
		OneSidedCap:  cfg.Quirks.OneSidedVelocityCap,
	}
}

// DefaultPhysics returns the reference constants.
func DefaultPhysics() Physics {
	return PhysicsFrom(config.DefaultConfig())
}
