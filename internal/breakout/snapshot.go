package breakout

import "math"

// Snapshot contains the complete simulation state for replay checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame uint64
	State int

	BallX, BallY   float64
	BallVX, BallVY float64

	PaddleX, PaddleY float64
	PaddleVX         float64

	// Remaining block positions, flattened as X, Y pairs in load order.
	BlockCount int
	BlockData  []int
}

// Snapshot returns the current state.
func (s *Simulation) Snapshot() Snapshot {
	ballPos, ballVel := s.ball.Position(), s.ball.Velocity()
	paddlePos, paddleVel := s.paddle.Position(), s.paddle.Velocity()

	blocks := s.level.Blocks()
	blockData := make([]int, 0, len(blocks)*2)
	for _, b := range blocks {
		r := b.Rect()
		blockData = append(blockData, r.X, r.Y)
	}

	return Snapshot{
		Frame:      s.frame,
		State:      int(s.state),
		BallX:      ballPos.X,
		BallY:      ballPos.Y,
		BallVX:     ballVel.X,
		BallVY:     ballVel.Y,
		PaddleX:    paddlePos.X,
		PaddleY:    paddlePos.Y,
		PaddleVX:   paddleVel.X,
		BlockCount: len(blocks),
		BlockData:  blockData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PaddleX, snap.PaddleY, snap.PaddleVX} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.BlockCount) //#nosec G115 -- hash computation
	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
