package script

import (
	"testing"

	"github.com/milk9111/boxplatformer/physics"
)

func TestDefaultScriptWalksAndHops(t *testing.T) {
	a, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a.Name() != DefaultScript {
		t.Fatalf("name = %q", a.Name())
	}

	body := physics.Entity{Shape: physics.Shape{X: 150, Y: 143, Width: 5, Height: 5}, Speed: 3, Grounded: true}
	got, err := a.Intents(0, body, 300, 150)
	if err != nil {
		t.Fatalf("Intents: %v", err)
	}
	if len(got) != 2 || got[0] != physics.IntentUp || got[1] != physics.IntentRight {
		t.Fatalf("tick 0 intents = %v, want [up right]", got)
	}

	// Near the right wall the script turns around, and remembers it.
	body.X = 295
	body.Grounded = false
	got, _ = a.Intents(10, body, 300, 150)
	if len(got) != 1 || got[0] != physics.IntentLeft {
		t.Fatalf("intents at right wall = %v, want [left]", got)
	}
	body.X = 150
	got, _ = a.Intents(11, body, 300, 150)
	if len(got) != 1 || got[0] != physics.IntentLeft {
		t.Fatalf("intents after turning = %v, want [left]", got)
	}
}

func TestOutputsResetEachTick(t *testing.T) {
	a, err := Compile("once", []byte(`if tick == 0 { right = true }`))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	body := physics.Entity{Speed: 3}
	if got, _ := a.Intents(0, body, 100, 50); len(got) != 1 {
		t.Fatalf("tick 0 intents = %v", got)
	}
	if got, _ := a.Intents(1, body, 100, 50); len(got) != 0 {
		t.Fatalf("tick 1 intents = %v, want none", got)
	}
}

func TestScriptErrors(t *testing.T) {
	if _, err := Compile("bad", []byte(`right = `)); err == nil {
		t.Fatalf("expected compile error")
	}

	a, err := Compile("boom", []byte(`z := 1 / tick`))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := a.Intents(0, physics.Entity{}, 100, 50); err == nil {
		t.Fatalf("expected runtime error for division by zero")
	}

	if _, err := Load("missing.tengo"); err == nil {
		t.Fatalf("expected load error")
	}
}
