package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/boxplatformer/input"
	"github.com/milk9111/boxplatformer/physics"
	"github.com/milk9111/boxplatformer/prefabs"
)

func TestTerminalKeysReachIntents(t *testing.T) {
	spec, err := prefabs.LoadWorldSpec(prefabs.DefaultWorld)
	if err != nil {
		t.Fatalf("LoadWorldSpec: %v", err)
	}

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want physics.Intent
	}{
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), physics.IntentLeft},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), physics.IntentRight},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), physics.IntentUp},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), physics.IntentLeft},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), physics.IntentUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, b := range []input.Bindings{spec.Keys, input.DefaultBindings()} {
				h := &host{latch: input.NewLatch(spec.Terminal.HoldTicks)}
				h.handle(tt.ev)
				got := input.Intents(h.keys, b)
				if len(got) != 1 || got[0] != tt.want {
					t.Fatalf("intents = %v, want [%v]", got, tt.want)
				}
			}
		})
	}
}

func TestTerminalKeyReleasesAfterHold(t *testing.T) {
	h := &host{latch: input.NewLatch(2)}
	h.handle(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))

	h.keys = h.latch.Advance(h.keys)
	if len(input.Intents(h.keys, input.DefaultBindings())) != 1 {
		t.Fatalf("key released after one tick")
	}
	h.keys = h.latch.Advance(h.keys)
	if got := input.Intents(h.keys, input.DefaultBindings()); len(got) != 0 {
		t.Fatalf("intents = %v after hold ran out", got)
	}
}
