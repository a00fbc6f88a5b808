package sim

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/milk9111/boxplatformer/input"
)

// Driver is the cooperative tick loop. Hosts call Step once per frame and
// schedule another frame only while it returns true. Stop may be called from
// any goroutine.
type Driver struct {
	sim  *Simulation
	stop atomic.Bool
}

func NewDriver(s *Simulation) *Driver {
	return &Driver{sim: s}
}

// Step ticks the simulation unless a stop was requested and reports whether
// the host should schedule the next frame.
func (d *Driver) Step(state input.State) bool {
	if d.stop.Load() {
		return false
	}
	d.sim.Tick(state)
	return !d.stop.Load()
}

func (d *Driver) Stop() {
	d.stop.Store(true)
}

func (d *Driver) Stopped() bool {
	return d.stop.Load()
}

func (d *Driver) Simulation() *Simulation {
	return d.sim
}

// Swap replaces the simulation, e.g. after a reset or a prefab reload. Call it
// from the goroutine that calls Step.
func (d *Driver) Swap(s *Simulation) {
	if s != nil {
		d.sim = s
	}
}

// RunTimer drives d from a fixed-rate ticker, for hosts without their own
// frame scheduling. source supplies the held keys before each tick and after,
// if set, runs once the tick completes. It returns nil once d is stopped and
// ctx.Err() on cancellation.
func RunTimer(ctx context.Context, d *Driver, tps int, source func() input.State, after func()) error {
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			var state input.State
			if source != nil {
				state = source()
			}
			next := d.Step(state)
			if after != nil {
				after()
			}
			if !next {
				return nil
			}
		}
	}
}
