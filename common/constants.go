package common

// Defaults for the built-in world. Prefabs may override all of them.
const (
	WorldWidth  = 300.0
	AspectRatio = 0.5

	Friction = 0.8
	Gravity  = 0.3

	PlayerSize  = 5.0
	PlayerSpeed = 3.0

	WallThickness = 2.0

	TPS = 60

	// Window pixels per world pixel.
	Scale = 4

	// Terminals report presses but never releases.
	TerminalHoldTicks = 6
)
