package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLatchReleasesAfterHold(t *testing.T) {
	l := NewLatch(3)
	s := l.Press(State{}, ebiten.KeyArrowRight)

	for tick := 0; tick < 3; tick++ {
		if !s.Held(ebiten.KeyArrowRight) {
			t.Fatalf("tick %d: key released too early", tick)
		}
		s = l.Advance(s)
	}
	if s.Held(ebiten.KeyArrowRight) {
		t.Fatalf("key should be released after 3 ticks")
	}
}

func TestLatchRepressExtendsHold(t *testing.T) {
	l := NewLatch(2)
	s := l.Press(State{}, ebiten.KeyArrowUp)
	s = l.Advance(s)
	s = l.Press(s, ebiten.KeyArrowUp)
	s = l.Advance(s)
	if !s.Held(ebiten.KeyArrowUp) {
		t.Fatalf("repress should restart the countdown")
	}
	s = l.Advance(s)
	if s.Held(ebiten.KeyArrowUp) {
		t.Fatalf("key should be released")
	}
}

func TestLatchIgnoresInvalidKeysAndClampsHold(t *testing.T) {
	l := NewLatch(0)
	if got := l.Press(State{}, -5); got != (State{}) {
		t.Fatalf("invalid key changed state")
	}
	s := l.Press(State{}, ebiten.KeyArrowLeft)
	if s = l.Advance(s); s.Held(ebiten.KeyArrowLeft) {
		t.Fatalf("hold of 0 should behave like 1")
	}
}
