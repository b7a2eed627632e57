package breakout

// Side indicates which edge midpoint of a probe fell inside a target.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Horizontal reports whether the side is left or right.
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Vertical reports whether the side is top or bottom.
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

// Collides samples the four edge midpoints of probe against target's rectangle
// and returns the first one inside it, in the order left, right, top, bottom.
//
// This is a point-sample test, not a rectangle overlap: a fast probe can pass
// through a thin target between frames, and when two midpoints are inside the
// earlier side in the order wins.
func Collides(probe, target Collidable) Side {
	p := probe.Rect()
	t := target.Rect()

	switch {
	case t.Contains(p.MidLeft()):
		return SideLeft
	case t.Contains(p.MidRight()):
		return SideRight
	case t.Contains(p.MidTop()):
		return SideTop
	case t.Contains(p.MidBottom()):
		return SideBottom
	}
	return SideNone
}
