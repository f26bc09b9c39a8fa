// Package motion implements the per-frame motion and action controller for a
// player-controlled 2D character: walking, jumping with jump-feel shaping, a
// timed dash, a directional attack and ground-contact detection.
//
// The controller is engine-agnostic. It reads an InputSource, reads and writes
// a PhysicsBody and publishes animation parameters to a PresentationSink.
// Everything runs on the caller's goroutine, one Tick per frame.
package motion

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/motionctl/internal/domain/timer"
)

// Controller owns the motion state of one character
type Controller struct {
	tuning Tuning
	input  InputSource
	body   PhysicsBody
	sink   PresentationSink
	timers *timer.Scheduler
	log    *zap.Logger

	facing          float64
	movementEnabled bool
	grounded        bool
	landedLatch     bool
	canDash         bool
	dashing         bool
	dashArmed       bool
	dashGen         uint64
	attacking       bool

	attackDirection Vec2
	lastAttack      Vec2
	movementVector  Vec2
	rawInputVector  Vec2

	dt  float64
	err error
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger used for state transitions
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l.Named("motion")
		}
	}
}

// WithScheduler makes the controller schedule its dash timers on s
func WithScheduler(s *timer.Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.timers = s
		}
	}
}

// New creates a controller. Missing collaborators and invalid tuning are
// configuration errors and fail immediately.
func New(t Tuning, in InputSource, body PhysicsBody, sink PresentationSink, opts ...Option) (*Controller, error) {
	if in == nil {
		return nil, ErrNilInput
	}
	if body == nil {
		return nil, ErrNilBody
	}
	if sink == nil {
		return nil, ErrNilSink
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		tuning:          t,
		input:           in,
		body:            body,
		sink:            sink,
		timers:          timer.NewScheduler(),
		log:             zap.NewNop(),
		movementEnabled: true,
		grounded:        true,
		canDash:         true,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.facing = signOf(body.Facing())
	c.attackDirection = Vec2{X: c.facing}
	return c, nil
}

// Tick advances the controller by dt seconds. A non-nil error is fatal: the
// controller stops and every later Tick returns the same error.
func (c *Controller) Tick(dt float64) error {
	if c.err != nil {
		return c.err
	}
	if err := c.checkCollaborators(); err != nil {
		c.err = err
		c.log.Error("tick aborted", zap.Error(err))
		return err
	}

	// a non-positive or NaN delta is a zero-length frame
	if !(dt > 0) {
		dt = 0
	}
	c.dt = dt
	c.timers.AdvanceSeconds(dt)

	c.movementVector = c.input.Axis()
	c.rawInputVector = c.input.RawAxis()

	c.walk()
	c.attack(c.ResolveAttackDirection(c.attackDirection, c.rawInputVector))
	c.shapeJump()

	if c.input.Pressed(ButtonJump) && c.grounded {
		c.sink.SetBool(ParamJumping, true)
		c.jump()
	}

	if c.input.Pressed(ButtonDash) && !c.dashing && c.canDash {
		c.startDash(c.facing, 0)
	}

	c.detectLanding()
	c.publishVerticalVelocity()
	c.checkGround()

	c.timers.RunDue()
	return nil
}

func (c *Controller) checkCollaborators() error {
	for _, v := range []any{c.input, c.body, c.sink} {
		if ch, ok := v.(Checker); ok {
			if err := ch.Err(); err != nil {
				return fmt.Errorf("%w: %w", ErrCollaborator, err)
			}
		}
	}
	return nil
}

// publishVerticalVelocity drives the airborne animation blend and clears the
// jump flag once grounded and not rising
func (c *Controller) publishVerticalVelocity() {
	v := -1.0
	if c.body.Velocity().Y > 0 {
		v = 1
	}

	if !c.grounded {
		c.sink.SetFloat(ParamVerticalVelocity, v)
		return
	}
	if v == -1 {
		c.FinishJump()
	}
}

// SetMovementEnabled gates horizontal locomotion, e.g. during cutscenes
func (c *Controller) SetMovementEnabled(enabled bool) {
	c.movementEnabled = enabled
}

// SetTuning replaces the tuning between ticks. Timers already scheduled keep
// the durations they were started with.
func (c *Controller) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.tuning = t
	c.log.Info("tuning updated",
		zap.Float64("walkSpeed", t.WalkSpeed),
		zap.Float64("jumpForce", t.JumpForce),
		zap.Float64("dashSpeed", t.DashSpeed))
	return nil
}

// Tuning returns the active tuning
func (c *Controller) Tuning() Tuning { return c.tuning }

// Grounded reports the result of the last ground check
func (c *Controller) Grounded() bool { return c.grounded }

// CanDash reports whether a dash may be triggered
func (c *Controller) CanDash() bool { return c.canDash }

// Dashing reports whether the dash window is open
func (c *Controller) Dashing() bool { return c.dashing }

// Attacking reports the attack gate
func (c *Controller) Attacking() bool { return c.attacking }

// Facing returns +1 or -1
func (c *Controller) Facing() float64 { return c.facing }

// MovementEnabled reports the locomotion gate
func (c *Controller) MovementEnabled() bool { return c.movementEnabled }

// AttackDirection returns the last movement direction used to aim attacks
func (c *Controller) AttackDirection() Vec2 { return c.attackDirection }

// LastAttack returns the direction published by the last accepted attack
func (c *Controller) LastAttack() Vec2 { return c.lastAttack }

// MovementVector returns the smoothed input read this tick
func (c *Controller) MovementVector() Vec2 { return c.movementVector }

// RawInputVector returns the raw input read this tick
func (c *Controller) RawInputVector() Vec2 { return c.rawInputVector }

// Err returns the fatal error that stopped the controller, if any
func (c *Controller) Err() error { return c.err }

// Phase returns the dash phase
func (c *Controller) Phase() DashPhase {
	switch {
	case !c.dashing:
		return PhaseIdle
	case c.dashArmed:
		return PhaseArming
	default:
		return PhaseDashing
	}
}

// Snapshot returns a copy of the controller state
func (c *Controller) Snapshot() State {
	return State{
		Facing:          c.facing,
		MovementEnabled: c.movementEnabled,
		Grounded:        c.grounded,
		CanDash:         c.canDash,
		Dashing:         c.dashing,
		Attacking:       c.attacking,
		Phase:           c.Phase(),
		AttackDirection: c.attackDirection,
		LastAttack:      c.lastAttack,
		MovementVector:  c.movementVector,
		RawInputVector:  c.rawInputVector,
	}
}
