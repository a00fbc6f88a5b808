package system

import (
	"sort"

	"github.com/milk9111/boxplatformer/ecs"
	"github.com/milk9111/boxplatformer/ecs/component"
	"github.com/milk9111/boxplatformer/physics"
)

// CollisionSystem resolves every body against every obstacle in obstacle
// order. Later contacts overwrite position and flags set by earlier ones.
type CollisionSystem struct {
	obstacles []ecs.Entity
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (cs *CollisionSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}

	cs.obstacles = append(cs.obstacles[:0], w.Query(component.ObstacleComponent.Kind())...)
	sort.SliceStable(cs.obstacles, func(i, j int) bool {
		oi, _ := ecs.Get(w, cs.obstacles[i], component.ObstacleComponent.Kind())
		oj, _ := ecs.Get(w, cs.obstacles[j], component.ObstacleComponent.Kind())
		return oi.Order < oj.Order
	})

	ecs.ForEach(w, component.BodyComponent.Kind(), func(e ecs.Entity, body *component.Body) {
		contacts, hasContacts := ecs.Get(w, e, component.ContactsComponent.Kind())
		if hasContacts {
			contacts.Sides = contacts.Sides[:0]
		}

		for _, oe := range cs.obstacles {
			obstacle, ok := ecs.Get(w, oe, component.ObstacleComponent.Kind())
			if !ok {
				continue
			}
			side := physics.Resolve(body, obstacle.Shape)
			if side == physics.DirectionNone {
				continue
			}
			if hasContacts {
				contacts.Sides = append(contacts.Sides, side)
			}
			w.Events().Push(ecs.CollisionEvent{Entity: e, Obstacle: oe, Side: side})
		}
	})
}
