package system

import (
	"math"
	"strings"
	"testing"

	"github.com/milk9111/boxplatformer/ecs"
	"github.com/milk9111/boxplatformer/ecs/component"
	"github.com/milk9111/boxplatformer/physics"
)

func addBody(t *testing.T, w *ecs.World, body physics.Entity) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &body); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.ContactsComponent.Kind(), &component.Contacts{}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		t.Fatal(err)
	}
	return e
}

func addObstacle(t *testing.T, w *ecs.World, s physics.Shape, order int) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ObstacleComponent.Kind(), &component.Obstacle{Shape: s, Order: order}); err != nil {
		t.Fatal(err)
	}
	return e
}

func body(t *testing.T, w *ecs.World, e ecs.Entity) *component.Body {
	t.Helper()
	b, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no body", e)
	}
	return b
}

func TestCollisionSystemFollowsObstacleOrder(t *testing.T) {
	w := ecs.NewWorld()
	// Created out of order; Order decides which contact resolves last.
	floor := addObstacle(t, w, physics.MustShape(0, 20, 40, 2), 1)
	wall := addObstacle(t, w, physics.MustShape(0, 0, 2, 40), 0)
	e := addBody(t, w, physics.Entity{Shape: physics.Shape{X: 1, Y: 18, Width: 5, Height: 5}, Speed: 3, VelX: -1})

	NewCollisionSystem().Update(w)

	evts := w.Events().Drain()
	if len(evts) != 2 {
		t.Fatalf("expected 2 contacts, got %v", evts)
	}
	if evts[0].Obstacle != wall || evts[0].Side != physics.DirectionLeft {
		t.Fatalf("first contact = %+v, want wall/left", evts[0])
	}
	if evts[1].Obstacle != floor || evts[1].Side != physics.DirectionBottom {
		t.Fatalf("second contact = %+v, want floor/bottom", evts[1])
	}

	b := body(t, w, e)
	if b.X != 2 || b.Y != 15 || !b.Grounded || b.VelX != 0 {
		t.Fatalf("body = %+v", *b)
	}

	contacts, _ := ecs.Get(w, e, component.ContactsComponent.Kind())
	if len(contacts.Sides) != 2 {
		t.Fatalf("contacts = %v", contacts.Sides)
	}
}

func TestGroundResetThenPhysics(t *testing.T) {
	w := ecs.NewWorld()
	e := addBody(t, w, physics.Entity{Shape: physics.Shape{X: 10, Y: 10, Width: 5, Height: 5}, Speed: 3, Grounded: true})

	sched := ecs.NewScheduler(
		NewGroundResetSystem(),
		NewCollisionSystem(),
		NewPhysicsSystem(physics.Integrator{Friction: 0.8, Gravity: 0.3}),
	)
	sched.Update(w)

	b := body(t, w, e)
	if b.Grounded {
		t.Fatalf("grounded should be cleared with no contacts")
	}
	if math.Abs(b.VelY-0.3) > 1e-9 || math.Abs(b.Y-10.3) > 1e-9 {
		t.Fatalf("expected free fall step, got %+v", *b)
	}
}

func TestIntentSystemAppliesInOrder(t *testing.T) {
	w := ecs.NewWorld()
	e := addBody(t, w, physics.Entity{Shape: physics.Shape{Width: 5, Height: 5}, Speed: 3, Grounded: true})
	in := &component.Input{Intents: []physics.Intent{physics.IntentUp, physics.IntentRight, physics.IntentLeft}}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), in); err != nil {
		t.Fatal(err)
	}

	NewIntentSystem().Update(w)

	b := body(t, w, e)
	if !b.Jumping || b.VelY != -6 || b.VelX != 0 {
		t.Fatalf("body = %+v", *b)
	}
}

func TestIntentSystemSkipsBodiesWithoutInput(t *testing.T) {
	w := ecs.NewWorld()
	e := addBody(t, w, physics.Entity{Shape: physics.Shape{Width: 5, Height: 5}, Speed: 3})
	NewIntentSystem().Update(w)
	if b := body(t, w, e); b.VelX != 0 || b.VelY != 0 {
		t.Fatalf("body without input moved: %+v", *b)
	}
}

func TestPlayerStateText(t *testing.T) {
	w := ecs.NewWorld()
	if PlayerStateText(w) != "" {
		t.Fatalf("expected empty text without a player")
	}
	addObstacle(t, w, physics.MustShape(0, 20, 40, 2), 0)
	addBody(t, w, physics.Entity{Shape: physics.Shape{X: 10, Y: 18, Width: 5, Height: 5}, Speed: 3})
	NewCollisionSystem().Update(w)

	text := PlayerStateText(w)
	if !strings.Contains(text, "Grounded: true") || !strings.Contains(text, "Contacts: bottom") {
		t.Fatalf("unexpected text %q", text)
	}
}
