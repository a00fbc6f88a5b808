package input

import "github.com/hajimehoshi/ebiten/v2"

// Latch synthesizes releases for sources that only report presses, such as
// terminals: a pressed key stays held for a fixed number of ticks after its
// most recent press.
type Latch struct {
	hold      int
	remaining map[ebiten.Key]int
}

func NewLatch(holdTicks int) *Latch {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &Latch{hold: holdTicks, remaining: make(map[ebiten.Key]int)}
}

// Press holds k and restarts its countdown.
func (l *Latch) Press(s State, k ebiten.Key) State {
	if !valid(k) {
		return s
	}
	l.remaining[k] = l.hold
	return Press(s, k)
}

// Advance counts one tick down and releases keys whose hold ran out. Call it
// after the tick that consumed s.
func (l *Latch) Advance(s State) State {
	for k, n := range l.remaining {
		n--
		if n > 0 {
			l.remaining[k] = n
			continue
		}
		delete(l.remaining, k)
		s = Release(s, k)
	}
	return s
}
