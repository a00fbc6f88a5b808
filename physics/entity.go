package physics

import "fmt"

// Entity is a Shape that moves.
type Entity struct {
	Shape

	VelX, VelY float64
	// Speed caps horizontal velocity and scales the jump impulse.
	Speed float64

	Jumping  bool
	Grounded bool
}

// NewEntity creates an entity at rest with both motion flags cleared.
func NewEntity(x, y, width, height, speed float64) (Entity, error) {
	shape, err := NewShape(x, y, width, height)
	if err != nil {
		return Entity{}, fmt.Errorf("entity: %w", err)
	}
	if speed < 0 {
		return Entity{}, fmt.Errorf("entity speed %v: %w", speed, ErrInvalidSpeed)
	}
	return Entity{Shape: shape, Speed: speed}, nil
}
