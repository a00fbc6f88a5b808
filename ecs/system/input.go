package system

import (
	"github.com/milk9111/boxplatformer/ecs"
	"github.com/milk9111/boxplatformer/ecs/component"
	"github.com/milk9111/boxplatformer/physics"
)

// IntentSystem applies each body's held intents, in the order stored on its
// Input component.
type IntentSystem struct{}

func NewIntentSystem() *IntentSystem {
	return &IntentSystem{}
}

func (i *IntentSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, in *component.Input, body *component.Body) {
		for _, intent := range in.Intents {
			physics.ApplyIntent(body, intent)
		}
	})
}

// GroundResetSystem clears Grounded so only this tick's contacts can set it.
type GroundResetSystem struct{}

func NewGroundResetSystem() *GroundResetSystem {
	return &GroundResetSystem{}
}

func (g *GroundResetSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.BodyComponent.Kind(), func(_ ecs.Entity, body *component.Body) {
		body.Grounded = false
	})
}
