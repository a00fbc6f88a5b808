package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boxplatformer/physics"
)

// Bindings maps keys to intents. Any bound key triggers its intent.
type Bindings struct {
	Up    []ebiten.Key `yaml:"up" toml:"up"`
	Left  []ebiten.Key `yaml:"left" toml:"left"`
	Right []ebiten.Key `yaml:"right" toml:"right"`
}

func DefaultBindings() Bindings {
	return Bindings{
		Up:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
	}
}

func anyHeld(s State, keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.Held(k) {
			return true
		}
	}
	return false
}

// Intents returns the held intents in apply order: up, right, left.
func Intents(s State, b Bindings) []physics.Intent {
	intents := make([]physics.Intent, 0, 3)
	if anyHeld(s, b.Up) {
		intents = append(intents, physics.IntentUp)
	}
	if anyHeld(s, b.Right) {
		intents = append(intents, physics.IntentRight)
	}
	if anyHeld(s, b.Left) {
		intents = append(intents, physics.IntentLeft)
	}
	return intents
}

// FromIntents builds a State holding the first key bound to each intent. It is
// how non-keyboard sources (scripts) feed the same path as real keys.
func FromIntents(b Bindings, intents ...physics.Intent) State {
	var s State
	for _, intent := range intents {
		var keys []ebiten.Key
		switch intent {
		case physics.IntentUp:
			keys = b.Up
		case physics.IntentLeft:
			keys = b.Left
		case physics.IntentRight:
			keys = b.Right
		}
		if len(keys) > 0 {
			s = Press(s, keys[0])
		}
	}
	return s
}
