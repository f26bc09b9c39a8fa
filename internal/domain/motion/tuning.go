package motion

import "fmt"

// Tuning holds the controller constants
type Tuning struct {
	WalkSpeed float64
	JumpForce float64
	DashSpeed float64

	// DashDuration is the primary dash window in seconds
	DashDuration float64
	// DashArmingDelay is the arming sub-timer in seconds, shorter than DashDuration
	DashArmingDelay float64

	FallMultiplier    float64
	LowJumpMultiplier float64

	// Ground check, relative to the body position
	GroundOffset Vec2
	GroundRadius float64
	GroundMask   LayerMask

	// LockAttackUntilFinished makes the attack trigger raise the attacking gate.
	// Off by default: the trigger only drives the animation.
	LockAttackUntilFinished bool
}

// DefaultTuning returns the stock controller constants
func DefaultTuning() Tuning {
	return Tuning{
		WalkSpeed:         20,
		JumpForce:         10,
		DashSpeed:         50,
		DashDuration:      0.3,
		DashArmingDelay:   0.15,
		FallMultiplier:    2.5,
		LowJumpMultiplier: 2.0,
		GroundOffset:      Vec2{X: 0, Y: -0.5},
		GroundRadius:      0.25,
		GroundMask:        1,
	}
}

// Validate checks the tuning for values the controller cannot run with
func (t Tuning) Validate() error {
	switch {
	case t.WalkSpeed <= 0:
		return fmt.Errorf("%w: walk speed must be positive, got %v", ErrInvalidTuning, t.WalkSpeed)
	case t.JumpForce <= 0:
		return fmt.Errorf("%w: jump force must be positive, got %v", ErrInvalidTuning, t.JumpForce)
	case t.DashSpeed <= 0:
		return fmt.Errorf("%w: dash speed must be positive, got %v", ErrInvalidTuning, t.DashSpeed)
	case t.DashDuration <= 0:
		return fmt.Errorf("%w: dash duration must be positive, got %v", ErrInvalidTuning, t.DashDuration)
	case t.DashArmingDelay <= 0 || t.DashArmingDelay >= t.DashDuration:
		return fmt.Errorf("%w: dash arming delay must be in (0, %v), got %v",
			ErrInvalidTuning, t.DashDuration, t.DashArmingDelay)
	case t.FallMultiplier < 1:
		return fmt.Errorf("%w: fall multiplier must be >= 1, got %v", ErrInvalidTuning, t.FallMultiplier)
	case t.LowJumpMultiplier < 1:
		return fmt.Errorf("%w: low jump multiplier must be >= 1, got %v", ErrInvalidTuning, t.LowJumpMultiplier)
	case t.GroundRadius <= 0:
		return fmt.Errorf("%w: ground radius must be positive, got %v", ErrInvalidTuning, t.GroundRadius)
	case t.GroundMask == 0:
		return fmt.Errorf("%w: no ground layer configured", ErrInvalidTuning)
	}
	return nil
}
