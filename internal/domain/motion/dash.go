package motion

import (
	"go.uber.org/zap"

	"github.com/younwookim/motionctl/internal/domain/timer"
)

// startDash launches a dash along (x, y). Two one-shot timers are scheduled
// from the same instant: arming after DashArmingDelay and the end of the dash
// after DashDuration. Neither can be cancelled.
func (c *Controller) startDash(x, y float64) {
	c.sink.SetBool(ParamDashing, true)
	c.sink.EmitRipple(c.sink.WorldToViewport(c.body.Position()))

	c.body.SetVelocity(Zero)
	c.body.SetVelocity(Zero.Add(Vec2{X: x, Y: y}.Normalized().Scale(c.tuning.DashSpeed)))

	c.dashGen++
	gen := c.dashGen
	c.dashArmed = false

	c.timers.After(timer.Seconds(c.tuning.DashArmingDelay), func() { c.armDash(gen) })

	c.body.SetGravityScale(0)
	c.dashing = true

	c.timers.After(timer.Seconds(c.tuning.DashDuration), func() { c.endDash(gen) })

	c.log.Debug("dash started",
		zap.Uint64("dash", gen),
		zap.Float64("dir", x),
		zap.Bool("grounded", c.grounded))
}

// armDash runs when the arming timer expires. It disables dashing until the
// next landing and ends the dash animation early.
func (c *Controller) armDash(gen uint64) {
	if c.grounded {
		c.log.Debug("dash armed on ground", zap.Uint64("dash", gen))
	}
	c.canDash = false
	c.sink.SetBool(ParamDashing, false)

	if gen == c.dashGen {
		c.dashArmed = true
	}
}

// endDash runs when the primary timer expires, even if a landing already
// ended the dash.
func (c *Controller) endDash(gen uint64) {
	c.body.SetGravityScale(1)
	c.dashing = false
	c.FinishDash()

	if gen == c.dashGen {
		c.dashArmed = false
	}
	c.log.Debug("dash ended", zap.Uint64("dash", gen))
}

// FinishDash clears the dashing animation flag. Safe to call at any time.
func (c *Controller) FinishDash() {
	c.sink.SetBool(ParamDashing, false)
}
