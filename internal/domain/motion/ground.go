package motion

// checkGround samples the ground circle below the body
func (c *Controller) checkGround() {
	center := c.body.Position().Add(c.tuning.GroundOffset)
	c.grounded = c.body.OverlapCircle(center, c.tuning.GroundRadius, c.tuning.GroundMask)
}

// detectLanding fires land once per contiguous grounded run
func (c *Controller) detectLanding() {
	if c.grounded && !c.landedLatch {
		c.land()
		c.landedLatch = true
	}
	if !c.grounded && c.landedLatch {
		c.landedLatch = false
	}
}

func (c *Controller) land() {
	c.canDash = true
	c.dashing = false
	c.sink.SetBool(ParamJumping, false)
	c.log.Debug("landed")
}
