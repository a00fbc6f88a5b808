// Package sim runs the per-tick platformer simulation.
package sim

import (
	"fmt"

	"github.com/milk9111/boxplatformer/ecs"
	"github.com/milk9111/boxplatformer/ecs/component"
	"github.com/milk9111/boxplatformer/ecs/system"
	"github.com/milk9111/boxplatformer/input"
	"github.com/milk9111/boxplatformer/physics"
	"github.com/milk9111/boxplatformer/prefabs"
	"go.uber.org/zap"
)

// Simulation owns the world built from a WorldSpec and advances it one tick
// at a time.
type Simulation struct {
	spec      *prefabs.WorldSpec
	world     *ecs.World
	scheduler *ecs.Scheduler
	player    ecs.Entity
	ticks     uint64
	log       *zap.SugaredLogger
}

// New builds the world: obstacles first, in resolution order, then the player.
func New(spec *prefabs.WorldSpec, log *zap.SugaredLogger) (*Simulation, error) {
	if spec == nil {
		spec = prefabs.DefaultWorldSpec()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	w := ecs.NewWorld()

	bounds := ecs.CreateEntity(w)
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: spec.Width, Height: spec.Height()}); err != nil {
		return nil, fmt.Errorf("sim: level bounds: %w", err)
	}

	shapes, err := spec.Shapes()
	if err != nil {
		return nil, fmt.Errorf("sim: obstacles: %w", err)
	}
	for i, shape := range shapes {
		if _, err := spawnObstacle(w, shape, i, spec.Colors.Obstacle); err != nil {
			return nil, fmt.Errorf("sim: obstacle %d: %w", i, err)
		}
	}

	body, err := spec.Body()
	if err != nil {
		return nil, fmt.Errorf("sim: player: %w", err)
	}
	player, err := spawnPlayer(w, body, spec.Colors.Player)
	if err != nil {
		return nil, fmt.Errorf("sim: player: %w", err)
	}

	s := &Simulation{
		spec:  spec,
		world: w,
		scheduler: ecs.NewScheduler(
			system.NewIntentSystem(),
			system.NewGroundResetSystem(),
			system.NewCollisionSystem(),
			system.NewPhysicsSystem(spec.Integrator()),
		),
		player: player,
		log:    log,
	}
	log.Infow("world built", "name", spec.Name, "width", spec.Width, "height", spec.Height(), "obstacles", len(shapes))
	return s, nil
}

// Tick runs one step with the given held keys and returns its contacts.
// state is only read.
func (s *Simulation) Tick(state input.State) []ecs.CollisionEvent {
	if s == nil {
		return nil
	}

	intents := input.Intents(state, s.spec.Keys)
	ecs.ForEach(s.world, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		in.Intents = append(in.Intents[:0], intents...)
	})

	s.world.Events().Clear()
	s.scheduler.Update(s.world)
	s.ticks++

	contacts := s.world.Events().Drain()
	for _, c := range contacts {
		s.log.Debugw("contact", "tick", s.ticks, "entity", c.Entity, "obstacle", c.Obstacle, "side", c.Side)
	}
	return contacts
}

func (s *Simulation) World() *ecs.World {
	return s.world
}

func (s *Simulation) Spec() *prefabs.WorldSpec {
	return s.spec
}

func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// Player returns a copy of the player body.
func (s *Simulation) Player() (physics.Entity, bool) {
	b, ok := ecs.Get(s.world, s.player, component.BodyComponent.Kind())
	if !ok {
		return physics.Entity{}, false
	}
	return *b, true
}

// Bodies returns copies of every body in entity order.
func (s *Simulation) Bodies() []physics.Entity {
	var out []physics.Entity
	ecs.ForEach(s.world, component.BodyComponent.Kind(), func(_ ecs.Entity, b *component.Body) {
		out = append(out, *b)
	})
	return out
}

// Obstacles returns the static shapes in resolution order.
func (s *Simulation) Obstacles() []physics.Shape {
	ents := s.world.Query(component.ObstacleComponent.Kind())
	out := make([]physics.Shape, len(ents))
	for _, e := range ents {
		o, _ := ecs.Get(s.world, e, component.ObstacleComponent.Kind())
		if o.Order >= 0 && o.Order < len(out) {
			out[o.Order] = o.Shape
		}
	}
	return out
}
