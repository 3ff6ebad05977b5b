// Package sim is the Block Hop simulation core: level geometry, entity rules,
// the fixed-step update and the level progression machine.
// It has no terminal or timing dependencies; a driver calls World.Step once
// per frame and reads World.Snapshot to draw.
package sim

// Rect is an axis-aligned rectangle in world pixels. Y grows downwards.
type Rect struct {
	X, Y float64
	W, H float64
}

// R is shorthand for building a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal centre.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return Intersects(r, other)
}

// Intersects reports strict overlap on both axes. Rectangles that only share
// an edge do not intersect.
func Intersects(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Resolution is the outcome of resolving the player against one platform.
type Resolution int

const (
	ResolveNone    Resolution = iota // no overlap, or no rule matched
	ResolveLanded                    // snapped on top
	ResolveCeiling                   // snapped below the underside
	ResolveLeft                      // stopped against the platform's left face
	ResolveRight                     // stopped against the platform's right face
)

func (r Resolution) String() string {
	switch r {
	case ResolveLanded:
		return "landed"
	case ResolveCeiling:
		return "ceiling"
	case ResolveLeft:
		return "left-face"
	case ResolveRight:
		return "right-face"
	default:
		return "none"
	}
}

// ResolvePlatform pushes the player out of platform when they overlap.
// Exactly one rule applies, chosen from the velocity and position before the
// correction, in this order: landing, underside, left face, right face.
// This is a positional heuristic rather than a swept test, so a fast player
// can resolve against the "wrong" face; the order is part of the game feel.
func ResolvePlatform(p *Player, platform Rect) Resolution {
	if !Intersects(p.Rect, platform) {
		return ResolveNone
	}
	switch {
	case p.VY > 0 && p.Y < platform.Y:
		p.Y = platform.Y - p.H
		p.VY = 0
		p.OnGround = true
		p.JustLanded = true
		return ResolveLanded
	case p.VY < 0 && p.Y > platform.Y:
		p.Y = platform.Bottom()
		p.VY = 0
		return ResolveCeiling
	case p.VX > 0 && p.X < platform.X:
		p.X = platform.X - p.W
		p.VX = 0
		return ResolveLeft
	case p.VX < 0 && p.X > platform.X:
		p.X = platform.Right()
		p.VX = 0
		return ResolveRight
	}
	return ResolveNone
}
