package physics

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

var (
	ErrInvalidExtent = errors.New("physics: width and height must be non-negative")
	ErrInvalidSpeed  = errors.New("physics: speed must be non-negative")
)

// Shape is an axis-aligned rectangle anchored at its top-left corner.
type Shape struct {
	X, Y          float64
	Width, Height float64
}

// NewShape returns a Shape, rejecting negative extents.
func NewShape(x, y, width, height float64) (Shape, error) {
	if width < 0 || height < 0 {
		return Shape{}, fmt.Errorf("shape %vx%v at (%v,%v): %w", width, height, x, y, ErrInvalidExtent)
	}
	return Shape{X: x, Y: y, Width: width, Height: height}, nil
}

// MustShape is NewShape for fixed geometry known to be valid.
func MustShape(x, y, width, height float64) Shape {
	s, err := NewShape(x, y, width, height)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Shape) Center() cp.Vector {
	return cp.Vector{X: s.X + s.Width/2, Y: s.Y + s.Height/2}
}

func (s Shape) Half() cp.Vector {
	return cp.Vector{X: s.Width / 2, Y: s.Height / 2}
}

// BB returns the shape bounds with B/T matching screen-space top/bottom.
func (s Shape) BB() cp.BB {
	return cp.BB{L: s.X, B: s.Y, R: s.X + s.Width, T: s.Y + s.Height}
}
