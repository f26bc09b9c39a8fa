// Package chipmunk runs motion bodies on the chipmunk2d rigid body engine.
// The space is y-up in pixels, matching the motion world.
package chipmunk

import (
	"math"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

// World owns a chipmunk space built from a tile stage
type World struct {
	space   *cp.Space
	gravity float64
	log     *zap.Logger

	nextGroup uint
	statics   int
}

// NewWorld creates a space with static colliders for every layered tile
func NewWorld(settings config.PhysicsSettings, stage *entity.Stage, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}

	space := cp.NewSpace()
	if settings.Iterations > 0 {
		space.Iterations = uint(settings.Iterations)
	}
	space.SetGravity(cp.Vector{X: 0, Y: -settings.Gravity})

	w := &World{
		space:   space,
		gravity: settings.Gravity,
		log:     log.Named("chipmunk"),
	}
	if stage != nil {
		w.buildStatics(stage)
	}
	w.log.Debug("world built", zap.Int("statics", w.statics))
	return w
}

// Space exposes the underlying chipmunk space
func (w *World) Space() *cp.Space {
	return w.space
}

// Gravity returns the vertical gravity (negative is down)
func (w *World) Gravity() float64 {
	return -w.gravity
}

// Step advances the simulation by dt seconds
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// buildStatics merges horizontal runs of identical tiles into single boxes
func (w *World) buildStatics(stage *entity.Stage) {
	ts := float64(stage.TileSize)
	for ty := 0; ty < stage.Height; ty++ {
		for tx := 0; tx < stage.Width; {
			tile := stage.GetTile(tx, ty)
			if tile.Layer == 0 {
				tx++
				continue
			}

			run := 1
			for tx+run < stage.Width && stage.GetTile(tx+run, ty) == tile {
				run++
			}

			bb := cp.BB{
				L: float64(tx) * ts,
				B: -float64(ty+1) * ts,
				R: float64(tx+run) * ts,
				T: -float64(ty) * ts,
			}
			shape := cp.NewBox2(w.space.StaticBody, bb, 0)
			shape.SetFriction(0.8)
			shape.SetSensor(!tile.Solid)
			shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(tile.Layer), cp.ALL_CATEGORIES))
			w.space.AddShape(shape)
			w.statics++

			tx += run
		}
	}
}

// AddBody adds a box body centered at (x, y), never rotating
func (w *World) AddBody(x, y, width, height float64) *Body {
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	w.nextGroup++
	group := w.nextGroup
	shape.SetFilter(cp.NewShapeFilter(group, uint(entity.LayerPlayer), cp.ALL_CATEGORIES))

	w.space.AddBody(body)
	w.space.AddShape(shape)

	b := &Body{
		world:        w,
		body:         body,
		shape:        shape,
		group:        group,
		gravityScale: 1,
		facing:       1,
	}
	body.SetVelocityUpdateFunc(func(cb *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(cb, gravity.Mult(b.gravityScale), damping, dt)
	})
	return b
}

// overlapCircle reports whether any shape on mask lies within radius of center,
// ignoring shapes in the caller's group
func (w *World) overlapCircle(center cp.Vector, radius float64, mask uint, group uint) bool {
	filter := cp.NewShapeFilter(group, cp.ALL_CATEGORIES, mask)
	info := w.space.PointQueryNearest(center, radius, filter)
	return info != nil && info.Shape != nil
}
