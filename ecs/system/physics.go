package system

import (
	"github.com/milk9111/boxplatformer/ecs"
	"github.com/milk9111/boxplatformer/ecs/component"
	"github.com/milk9111/boxplatformer/physics"
)

// PhysicsSystem integrates every body. It must run after CollisionSystem.
type PhysicsSystem struct {
	integrator physics.Integrator
}

func NewPhysicsSystem(integrator physics.Integrator) *PhysicsSystem {
	return &PhysicsSystem{integrator: integrator}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.BodyComponent.Kind(), func(_ ecs.Entity, body *component.Body) {
		ps.integrator.Step(body)
	})
}
