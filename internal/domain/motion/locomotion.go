package motion

// walk applies horizontal locomotion and keeps facing in sync with input
func (c *Controller) walk() {
	if !c.movementEnabled || c.dashing {
		return
	}

	move := c.movementVector
	v := c.body.Velocity()
	c.body.SetVelocity(Vec2{X: move.X * c.tuning.WalkSpeed, Y: v.Y})

	if move.X != 0 {
		if c.grounded {
			c.sink.SetBool(ParamWalking, true)
		} else {
			c.sink.SetBool(ParamJumping, true)
		}

		if move.X < 0 && c.facing > 0 {
			c.turn(-1)
		} else if move.X > 0 && c.facing < 0 {
			c.turn(1)
		}
		return
	}

	// Vertical-only input aims attacks straight up or down
	if move.Y != 0 {
		c.attackDirection = c.ResolveAttackDirection(move, Vec2{Y: signOf(move.Y)})
	}
	c.sink.SetBool(ParamWalking, false)
}

// turn flips the facing and re-aims attacks along the new direction
func (c *Controller) turn(sign float64) {
	c.attackDirection = c.ResolveAttackDirection(Vec2{X: sign}, c.rawInputVector)
	c.facing = sign
	c.body.SetFacing(sign)
}
