package sim

import (
	"image/color"

	"github.com/milk9111/boxplatformer/ecs"
	"github.com/milk9111/boxplatformer/ecs/component"
	"github.com/milk9111/boxplatformer/physics"
	"github.com/milk9111/boxplatformer/prefabs"
)

func fillOf(c *prefabs.YAMLColor) *component.Fill {
	if c == nil || c.Color == nil {
		return &component.Fill{Color: color.Black}
	}
	return &component.Fill{Color: c.Color}
}

func spawnObstacle(w *ecs.World, shape physics.Shape, order int, c *prefabs.YAMLColor) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ObstacleComponent.Kind(), &component.Obstacle{Shape: shape, Order: order}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.FillComponent.Kind(), fillOf(c)); err != nil {
		return 0, err
	}
	return e, nil
}

func spawnPlayer(w *ecs.World, body physics.Entity, c *prefabs.YAMLColor) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &body); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ContactsComponent.Kind(), &component.Contacts{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.FillComponent.Kind(), fillOf(c)); err != nil {
		return 0, err
	}
	return e, nil
}
