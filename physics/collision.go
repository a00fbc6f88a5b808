package physics

import "math"

// Direction is the side of the entity that touched an obstacle.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionTop
	DirectionBottom
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionTop:
		return "top"
	case DirectionBottom:
		return "bottom"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Overlaps reports whether the centers of a and b are closer than their
// combined half extents on both axes. Touching edges do not overlap.
func Overlaps(a, b Shape) bool {
	d := a.Center().Sub(b.Center())
	half := a.Half().Add(b.Half())
	return math.Abs(d.X) < half.X && math.Abs(d.Y) < half.Y
}

// Resolve pushes e out of s along one axis, applies the contact response and
// returns the contacted side. A non-overlapping pair is left untouched.
//
// The vertical axis wins whenever its penetration is not deeper than the
// horizontal one, which keeps shallow landings from snagging on platform edges.
func Resolve(e *Entity, s Shape) Direction {
	if e == nil {
		return DirectionNone
	}

	d := e.Center().Sub(s.Center())
	half := e.Half().Add(s.Half())
	if math.Abs(d.X) >= half.X || math.Abs(d.Y) >= half.Y {
		return DirectionNone
	}

	offsetX := half.X - math.Abs(d.X)
	offsetY := half.Y - math.Abs(d.Y)

	var dir Direction
	if offsetX >= offsetY {
		if d.Y > 0 {
			dir = DirectionTop
			e.Y += offsetY
		} else {
			dir = DirectionBottom
			e.Y -= offsetY
		}
	} else {
		if d.X > 0 {
			dir = DirectionLeft
			e.X += offsetX
		} else {
			dir = DirectionRight
			e.X -= offsetX
		}
	}

	ApplyCollision(e, dir)
	return dir
}

// ApplyCollision sets the velocity and flags for a contact on side dir.
func ApplyCollision(e *Entity, dir Direction) {
	if e == nil {
		return
	}

	switch dir {
	case DirectionLeft, DirectionRight:
		e.VelX = 0
		e.Jumping = false
	case DirectionBottom:
		e.Grounded = true
		e.Jumping = false
	case DirectionTop:
		// Head hits bounce instead of clamping.
		e.VelY *= -1
	}
}
