package chipmunk

import (
	"errors"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/motionctl/internal/domain/motion"
)

// ErrDetached is returned by Body.Err after the body left its space
var ErrDetached = errors.New("chipmunk body detached")

// Body adapts a chipmunk body to motion.PhysicsBody
type Body struct {
	world *World
	body  *cp.Body
	shape *cp.Shape
	group uint

	gravityScale float64
	facing       float64
	detached     bool
}

var _ motion.PhysicsBody = (*Body)(nil)

// Detach removes the body from its space
func (b *Body) Detach() {
	if b.detached {
		return
	}
	b.world.space.RemoveShape(b.shape)
	b.world.space.RemoveBody(b.body)
	b.detached = true
}

// Err implements motion.Checker
func (b *Body) Err() error {
	if b.detached {
		return ErrDetached
	}
	return nil
}

func (b *Body) Velocity() motion.Vec2 {
	v := b.body.Velocity()
	return motion.Vec2{X: v.X, Y: v.Y}
}

func (b *Body) SetVelocity(v motion.Vec2) {
	b.body.SetVelocity(v.X, v.Y)
}

func (b *Body) GravityScale() float64 {
	return b.gravityScale
}

func (b *Body) SetGravityScale(s float64) {
	b.gravityScale = s
}

func (b *Body) Gravity() float64 {
	return b.world.Gravity()
}

func (b *Body) Position() motion.Vec2 {
	p := b.body.Position()
	return motion.Vec2{X: p.X, Y: p.Y}
}

// SetPosition teleports the body
func (b *Body) SetPosition(p motion.Vec2) {
	b.body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
}

func (b *Body) Facing() float64 {
	return b.facing
}

func (b *Body) SetFacing(sign float64) {
	if sign < 0 {
		b.facing = -1
		return
	}
	b.facing = 1
}

func (b *Body) OverlapCircle(center motion.Vec2, radius float64, mask motion.LayerMask) bool {
	return b.world.overlapCircle(cp.Vector{X: center.X, Y: center.Y}, radius, uint(mask), b.group)
}
