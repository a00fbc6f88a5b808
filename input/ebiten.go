package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poller converts ebiten's per-frame key transitions into Press/Release calls.
type Poller struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

// Poll applies this frame's key transitions to s.
func (p *Poller) Poll(s State) State {
	p.released = inpututil.AppendJustReleasedKeys(p.released[:0])
	for _, k := range p.released {
		s = Release(s, k)
	}
	p.pressed = inpututil.AppendJustPressedKeys(p.pressed[:0])
	for _, k := range p.pressed {
		s = Press(s, k)
	}
	return s
}
