// Package script drives the player from a tengo script instead of a keyboard.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/boxplatformer/physics"
	"github.com/milk9111/boxplatformer/prefabs"
)

const DefaultScript = "hop.tengo"

var inputVars = []string{"tick", "x", "y", "vel_x", "vel_y", "grounded", "jumping", "speed", "width", "height"}

// outputVars are read after each run, in intent apply order.
var outputVars = []string{"up", "right", "left"}

// Autopilot runs a compiled script once per tick. Globals persist between
// runs, so scripts can keep memory in the state map.
type Autopilot struct {
	name     string
	compiled *tengo.Compiled
}

// Load compiles a script from disk or the embedded scripts directory.
func Load(name string) (*Autopilot, error) {
	if name == "" {
		name = DefaultScript
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return Compile(name, src)
}

func Compile(name string, src []byte) (*Autopilot, error) {
	s := tengo.NewScript(src)
	for _, v := range inputVars {
		_ = s.Add(v, 0)
	}
	for _, v := range outputVars {
		_ = s.Add(v, false)
	}
	_ = s.Add("state", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &Autopilot{name: name, compiled: compiled}, nil
}

func (a *Autopilot) Name() string {
	return a.name
}

// Intents runs the script for one tick and returns the requested intents in
// apply order.
func (a *Autopilot) Intents(tick uint64, body physics.Entity, width, height float64) ([]physics.Intent, error) {
	inputs := map[string]any{
		"tick":     int64(tick),
		"x":        body.X,
		"y":        body.Y,
		"vel_x":    body.VelX,
		"vel_y":    body.VelY,
		"grounded": body.Grounded,
		"jumping":  body.Jumping,
		"speed":    body.Speed,
		"width":    width,
		"height":   height,
	}
	for name, v := range inputs {
		if err := a.compiled.Set(name, v); err != nil {
			return nil, fmt.Errorf("script: %s: set %s: %w", a.name, name, err)
		}
	}
	// Outputs reset every tick; a script that sets nothing holds nothing.
	for _, name := range outputVars {
		if err := a.compiled.Set(name, false); err != nil {
			return nil, fmt.Errorf("script: %s: set %s: %w", a.name, name, err)
		}
	}

	if err := a.compiled.Run(); err != nil {
		return nil, fmt.Errorf("script: %s: run: %w", a.name, err)
	}

	var intents []physics.Intent
	for _, name := range outputVars {
		if !a.compiled.Get(name).Bool() {
			continue
		}
		if intent, ok := physics.ParseIntent(name); ok {
			intents = append(intents, intent)
		}
	}
	return intents, nil
}
