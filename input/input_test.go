package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boxplatformer/physics"
)

func TestPressReleaseArePure(t *testing.T) {
	var s State
	pressed := Press(s, ebiten.KeyArrowUp)
	if s.Held(ebiten.KeyArrowUp) {
		t.Fatalf("Press mutated its input")
	}
	if !pressed.Held(ebiten.KeyArrowUp) {
		t.Fatalf("expected ArrowUp held")
	}

	twice := Press(pressed, ebiten.KeyArrowUp)
	if twice != pressed {
		t.Fatalf("Press should be idempotent")
	}

	released := Release(Release(twice, ebiten.KeyArrowUp), ebiten.KeyArrowUp)
	if released.Held(ebiten.KeyArrowUp) || released != s {
		t.Fatalf("Release should clear the key")
	}
}

func TestOutOfRangeKeysIgnored(t *testing.T) {
	var s State
	for _, k := range []ebiten.Key{-1, ebiten.KeyMax + 1, 10000} {
		if got := Press(s, k); got != s || got.Held(k) {
			t.Fatalf("key %d should be ignored", k)
		}
	}
}

func TestIntentsOrder(t *testing.T) {
	b := DefaultBindings()
	cases := []struct {
		name string
		keys []ebiten.Key
		want []physics.Intent
	}{
		{"none", nil, nil},
		{"unbound_only", []ebiten.Key{ebiten.KeySpace, ebiten.KeyS, ebiten.KeyArrowDown}, nil},
		{"wasd", []ebiten.Key{ebiten.KeyA, ebiten.KeyW}, []physics.Intent{physics.IntentUp, physics.IntentLeft}},
		{"left", []ebiten.Key{ebiten.KeyArrowLeft}, []physics.Intent{physics.IntentLeft}},
		{"all", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyArrowUp},
			[]physics.Intent{physics.IntentUp, physics.IntentRight, physics.IntentLeft}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var s State
			for _, k := range c.keys {
				s = Press(s, k)
			}
			got := Intents(s, b)
			if len(got) != len(c.want) {
				t.Fatalf("Intents = %v, want %v", got, c.want)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Fatalf("Intents = %v, want %v", got, c.want)
				}
			}
		})
	}
}

func TestCustomBindings(t *testing.T) {
	b := Bindings{Up: []ebiten.Key{ebiten.KeyW, ebiten.KeySpace}, Left: []ebiten.Key{ebiten.KeyA}, Right: []ebiten.Key{ebiten.KeyD}}
	s := Press(State{}, ebiten.KeySpace)
	got := Intents(s, b)
	if len(got) != 1 || got[0] != physics.IntentUp {
		t.Fatalf("Intents = %v, want [up]", got)
	}
	if len(Intents(Press(State{}, ebiten.KeyArrowUp), b)) != 0 {
		t.Fatalf("arrow keys should be unbound")
	}
}

func TestFromIntents(t *testing.T) {
	b := DefaultBindings()
	s := FromIntents(b, physics.IntentRight, physics.IntentUp, physics.IntentNone)
	if !s.Held(ebiten.KeyArrowRight) || !s.Held(ebiten.KeyArrowUp) || s.Held(ebiten.KeyArrowLeft) {
		t.Fatalf("unexpected held keys %v", s.HeldKeys())
	}
	if len(s.HeldKeys()) != 2 {
		t.Fatalf("expected 2 held keys, got %v", s.HeldKeys())
	}
}
