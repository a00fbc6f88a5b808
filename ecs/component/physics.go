package component

import "github.com/milk9111/boxplatformer/physics"

// Body is a moving rectangle integrated every tick.
type Body = physics.Entity

var BodyComponent = NewComponent[Body]()

// Obstacle is a static rectangle. Bodies are resolved against obstacles in
// ascending Order.
type Obstacle struct {
	Shape physics.Shape
	Order int
}

var ObstacleComponent = NewComponent[Obstacle]()

// Contacts records the sides a body touched during the last tick.
type Contacts struct {
	Sides []physics.Direction
}

var ContactsComponent = NewComponent[Contacts]()
