package physics

// Integrator advances an entity by one tick.
type Integrator struct {
	Friction float64
	Gravity  float64
}

// Step must run after the tick's collision pass: Grounded has to reflect this
// tick's contacts and resolution has already moved the entity out of obstacles.
func (in Integrator) Step(e *Entity) {
	if e == nil {
		return
	}

	e.VelX *= in.Friction
	e.VelY += in.Gravity
	if e.Grounded {
		e.VelY = 0
	}

	e.X += e.VelX
	e.Y += e.VelY
}
