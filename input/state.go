// Package input turns key events into motion intents.
//
// State is a value: hosts own it, update it with Press and Release as events
// arrive, and hand a copy to the simulation once per tick.
package input

import "github.com/hajimehoshi/ebiten/v2"

// State holds one flag per key code.
type State struct {
	held [ebiten.KeyMax + 1]bool
}

func valid(k ebiten.Key) bool {
	return k >= 0 && k <= ebiten.KeyMax
}

// Press returns s with k held. Out-of-range keys are ignored.
func Press(s State, k ebiten.Key) State {
	if valid(k) {
		s.held[k] = true
	}
	return s
}

// Release returns s with k released.
func Release(s State, k ebiten.Key) State {
	if valid(k) {
		s.held[k] = false
	}
	return s
}

func (s State) Held(k ebiten.Key) bool {
	return valid(k) && s.held[k]
}

// HeldKeys lists held keys in key-code order.
func (s State) HeldKeys() []ebiten.Key {
	var keys []ebiten.Key
	for k, ok := range s.held {
		if ok {
			keys = append(keys, ebiten.Key(k))
		}
	}
	return keys
}
