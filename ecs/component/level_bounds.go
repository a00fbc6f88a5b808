package component

// LevelBounds stores the size of the drawing surface in world pixels.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
