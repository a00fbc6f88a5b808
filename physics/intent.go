package physics

// Intent is a motion request produced by held input.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentLeft
	IntentRight
)

var intentNames = map[string]Intent{
	"up":    IntentUp,
	"left":  IntentLeft,
	"right": IntentRight,
}

// ParseIntent maps "up", "left" and "right" to intents.
func ParseIntent(name string) (Intent, bool) {
	intent, ok := intentNames[name]
	return intent, ok
}

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	default:
		return "none"
	}
}

// ApplyIntent changes velocity and jump state only; position is left for the integrator.
func ApplyIntent(e *Entity, intent Intent) {
	if e == nil {
		return
	}

	switch intent {
	case IntentUp:
		if !e.Jumping && e.Grounded {
			e.Jumping = true
			e.Grounded = false
			e.VelY = -e.Speed * 2
		}
	case IntentRight:
		if e.VelX < e.Speed {
			e.VelX++
		}
	case IntentLeft:
		if e.VelX > -e.Speed {
			e.VelX--
		}
	}
}
