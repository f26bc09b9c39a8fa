package motion

import "go.uber.org/zap"

// shapeJump adds the jump-feel correction on top of the body's own gravity:
// falls are faster, and releasing jump while rising cuts the jump short.
func (c *Controller) shapeJump() {
	v := c.body.Velocity()
	g := c.body.Gravity()

	switch {
	case v.Y < 0:
		v.Y += g * (c.tuning.FallMultiplier - 1) * c.dt
	case v.Y > 0 && !c.input.Held(ButtonJump):
		v.Y += g * (c.tuning.LowJumpMultiplier - 1) * c.dt
	default:
		return
	}
	c.body.SetVelocity(v)
}

// jump replaces the vertical velocity with the jump impulse
func (c *Controller) jump() {
	v := c.body.Velocity()
	v = Vec2{X: v.X, Y: 0}.Add(Vec2{Y: c.tuning.JumpForce})
	c.body.SetVelocity(v)
	c.log.Debug("jump", zap.Float64("vy", v.Y))
}

// FinishJump clears the jumping animation flag
func (c *Controller) FinishJump() {
	c.sink.SetBool(ParamJumping, false)
}
