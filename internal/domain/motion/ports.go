package motion

// Button is a discrete input button
type Button int

const (
	ButtonJump Button = iota
	ButtonDash
	ButtonAttack
)

// String returns the button name
func (b Button) String() string {
	switch b {
	case ButtonJump:
		return "Jump"
	case ButtonDash:
		return "Dash"
	case ButtonAttack:
		return "Attack"
	default:
		return "Unknown"
	}
}

// LayerMask selects collision layers, one bit per layer
type LayerMask uint32

// InputSource is the per-tick input snapshot the controller reads
type InputSource interface {
	// Axis returns the smoothed directional input, roughly [-1,1] per axis
	Axis() Vec2
	// RawAxis returns the unsmoothed directional input, {-1,0,1} per axis
	RawAxis() Vec2
	// Pressed reports whether the button went down this tick
	Pressed(b Button) bool
	// Held reports whether the button is currently down
	Held(b Button) bool
}

// PhysicsBody is the rigid body and transform owned by the character.
// The controller never integrates motion itself; it only reads and writes
// velocity, gravity scale and orientation.
type PhysicsBody interface {
	Velocity() Vec2
	SetVelocity(v Vec2)
	GravityScale() float64
	SetGravityScale(s float64)
	// Gravity returns the world vertical gravity (negative is down)
	Gravity() float64
	Position() Vec2
	// Facing returns the horizontal orientation scale of the entity
	Facing() float64
	SetFacing(sign float64)
	// OverlapCircle reports whether a circle overlaps any collider on mask
	OverlapCircle(center Vec2, radius float64, mask LayerMask) bool
}

// PresentationSink receives animation parameters and visual effect triggers
type PresentationSink interface {
	SetBool(p Param, v bool)
	SetFloat(p Param, v float64)
	// WorldToViewport converts a world position to [0,1] screen space
	WorldToViewport(world Vec2) Vec2
	// EmitRipple fires a one-shot ripple at a viewport position
	EmitRipple(viewport Vec2)
}

// Checker is implemented by collaborators that can become unavailable
// during a session. A non-nil Err fails the tick.
type Checker interface {
	Err() error
}

// InputState is a value snapshot of one tick of input.
// It implements InputSource.
type InputState struct {
	Move          Vec2
	RawMove       Vec2
	JumpPressed   bool
	JumpHeld      bool
	DashPressed   bool
	AttackPressed bool
}

// Axis implements InputSource
func (s InputState) Axis() Vec2 { return s.Move }

// RawAxis implements InputSource
func (s InputState) RawAxis() Vec2 { return s.RawMove }

// Pressed implements InputSource
func (s InputState) Pressed(b Button) bool {
	switch b {
	case ButtonJump:
		return s.JumpPressed
	case ButtonDash:
		return s.DashPressed
	case ButtonAttack:
		return s.AttackPressed
	}
	return false
}

// Held implements InputSource. Only the jump button tracks a held state.
func (s InputState) Held(b Button) bool {
	return b == ButtonJump && s.JumpHeld
}
