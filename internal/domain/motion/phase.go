package motion

// DashPhase is the observable dash state
type DashPhase int

const (
	PhaseIdle DashPhase = iota
	// PhaseDashing is the dash window before the arming timer expires
	PhaseDashing
	// PhaseArming is the rest of the dash window after the arming timer expired
	PhaseArming
)

// String returns the string representation of the phase
func (p DashPhase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseDashing:
		return "Dashing"
	case PhaseArming:
		return "Arming"
	default:
		return "Unknown"
	}
}

// State is a value copy of the controller state
type State struct {
	Facing          float64
	MovementEnabled bool
	Grounded        bool
	CanDash         bool
	Dashing         bool
	Attacking       bool
	Phase           DashPhase
	AttackDirection Vec2
	LastAttack      Vec2
	MovementVector  Vec2
	RawInputVector  Vec2
}
