package system

import (
	"errors"
	"math"

	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/domain/motion"
)

// ErrNoBody is returned by TileBody.Err once the body has been detached
var ErrNoBody = errors.New("tile body detached")

// TileBody adapts an entity.Body in a tile stage to motion.PhysicsBody.
// The motion world is y-up in pixels; the stage is y-down.
type TileBody struct {
	body    *entity.Body
	physics *PhysicsSystem
}

var _ motion.PhysicsBody = (*TileBody)(nil)

// NewTileBody wraps body, simulated by physics
func NewTileBody(body *entity.Body, physics *PhysicsSystem) *TileBody {
	return &TileBody{body: body, physics: physics}
}

// Body returns the wrapped entity body
func (b *TileBody) Body() *entity.Body {
	return b.body
}

// Detach drops the wrapped body. Later ticks of a controller using b fail.
func (b *TileBody) Detach() {
	b.body = nil
}

// Err implements motion.Checker
func (b *TileBody) Err() error {
	if b.body == nil || b.physics == nil || b.physics.Stage() == nil {
		return ErrNoBody
	}
	return nil
}

// Step runs the physics system on the wrapped body
func (b *TileBody) Step(dt float64) {
	if b.Err() != nil {
		return
	}
	b.physics.Update(b.body, dt)
}

func (b *TileBody) Velocity() motion.Vec2 {
	return motion.Vec2{
		X: b.body.VX / entity.PositionScale,
		Y: -b.body.VY / entity.PositionScale,
	}
}

func (b *TileBody) SetVelocity(v motion.Vec2) {
	b.body.VX = v.X * entity.PositionScale
	b.body.VY = -v.Y * entity.PositionScale
}

func (b *TileBody) GravityScale() float64 {
	return b.body.GravityScale
}

func (b *TileBody) SetGravityScale(s float64) {
	b.body.GravityScale = s
}

func (b *TileBody) Gravity() float64 {
	return -b.physics.Gravity()
}

// Position returns the hitbox center
func (b *TileBody) Position() motion.Vec2 {
	x, y := b.body.Center()
	return motion.Vec2{X: x, Y: -y}
}

func (b *TileBody) Facing() float64 {
	return b.body.ScaleX
}

func (b *TileBody) SetFacing(sign float64) {
	mag := math.Abs(b.body.ScaleX)
	if mag == 0 {
		mag = 1
	}
	if sign < 0 {
		b.body.ScaleX = -mag
		return
	}
	b.body.ScaleX = mag
}

func (b *TileBody) OverlapCircle(center motion.Vec2, radius float64, mask motion.LayerMask) bool {
	return b.physics.Stage().OverlapsCircle(center.X, -center.Y, radius, entity.Layer(mask))
}
