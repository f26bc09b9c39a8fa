// Package presentation turns controller output into things on screen:
// animation flags, the camera and visual effects.
package presentation

import "github.com/younwookim/motionctl/internal/domain/motion"

// Camera is a screen-sized window onto the stage. X and Y are the top-left
// corner in stage pixels (y-down). World positions are y-up.
type Camera struct {
	X, Y   float64
	W, H   int
	stageW int
	stageH int
}

// NewCamera creates a camera of w×h pixels clamped to a stage of stageW×stageH
func NewCamera(w, h, stageW, stageH int) *Camera {
	return &Camera{W: w, H: h, stageW: stageW, stageH: stageH}
}

// Follow centers the camera on a world position, clamped to the stage
func (c *Camera) Follow(world motion.Vec2) {
	c.X = clamp(world.X-float64(c.W)/2, 0, float64(c.stageW-c.W))
	c.Y = clamp(-world.Y-float64(c.H)/2, 0, float64(c.stageH-c.H))
}

// WorldToScreen converts a world position to screen pixels
func (c *Camera) WorldToScreen(world motion.Vec2) (float64, float64) {
	return world.X - c.X, -world.Y - c.Y
}

// WorldToViewport converts a world position to [0,1] viewport space with
// the origin at the bottom-left corner
func (c *Camera) WorldToViewport(world motion.Vec2) motion.Vec2 {
	sx, sy := c.WorldToScreen(world)
	return motion.Vec2{
		X: sx / float64(c.W),
		Y: 1 - sy/float64(c.H),
	}
}

// ViewportToScreen converts viewport space back to screen pixels
func (c *Camera) ViewportToScreen(v motion.Vec2) (float64, float64) {
	return v.X * float64(c.W), (1 - v.Y) * float64(c.H)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
