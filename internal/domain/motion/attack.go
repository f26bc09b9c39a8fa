package motion

import "go.uber.org/zap"

// ResolveAttackDirection combines the last movement direction with the raw
// input. A stationary character with vertical input attacks straight up or
// down; otherwise the horizontal part comes from the movement direction.
func (c *Controller) ResolveAttackDirection(moveDir, raw Vec2) Vec2 {
	if c.body.Velocity().X == 0 && raw.Y != 0 {
		return Vec2{X: 0, Y: raw.Y}
	}
	return Vec2{X: moveDir.X, Y: raw.Y}
}

func (c *Controller) attack(dir Vec2) {
	if !c.input.Pressed(ButtonAttack) {
		return
	}
	if c.attacking || c.dashing {
		return
	}

	c.sink.SetFloat(ParamAttackX, dir.X)
	c.sink.SetFloat(ParamAttackY, dir.Y)
	c.sink.SetBool(ParamAttacking, true)
	c.lastAttack = dir

	if c.tuning.LockAttackUntilFinished {
		c.attacking = true
	}
	c.log.Debug("attack", zap.Float64("x", dir.X), zap.Float64("y", dir.Y))
}

// FinishAttack ends the attack animation and reopens the attack gate.
// Typically driven by an animation-complete event.
func (c *Controller) FinishAttack() {
	c.sink.SetBool(ParamAttacking, false)
	c.attacking = false
}
