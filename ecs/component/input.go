package component

import "github.com/milk9111/boxplatformer/physics"

// Input stores the intents held for the current tick, already in apply order.
type Input struct {
	Intents []physics.Intent
}

var InputComponent = NewComponent[Input]()
