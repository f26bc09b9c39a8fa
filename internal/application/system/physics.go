package system

import (
	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

// PhysicsSystem integrates tile-world bodies: gravity, then movement with
// substep collision against solid tiles
type PhysicsSystem struct {
	settings config.PhysicsSettings
	stage    *entity.Stage
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(settings config.PhysicsSettings, stage *entity.Stage) *PhysicsSystem {
	return &PhysicsSystem{
		settings: settings,
		stage:    stage,
	}
}

// Gravity returns the downward gravity in px/s²
func (s *PhysicsSystem) Gravity() float64 {
	return s.settings.Gravity
}

// Stage returns the stage bodies collide with
func (s *PhysicsSystem) Stage() *entity.Stage {
	return s.stage
}

// Update applies one step of physics to the body
func (s *PhysicsSystem) Update(body *entity.Body, dt float64) {
	s.applyGravity(body, dt)

	dx, dy := body.ApplyVelocity(dt)
	s.applyMovement(body, dx, dy)
}

// applyGravity accelerates the body downward by its gravity scale
func (s *PhysicsSystem) applyGravity(body *entity.Body, dt float64) {
	if body.GravityScale == 0 {
		return
	}

	body.VY += s.settings.Gravity * entity.PositionScale * body.GravityScale * dt

	maxFall := s.settings.MaxFallSpeed * entity.PositionScale
	if maxFall > 0 && body.VY > maxFall {
		body.VY = maxFall
	}
}

// applyMovement moves the body with substep collision detection
func (s *PhysicsSystem) applyMovement(body *entity.Body, dx, dy int) {
	body.OnGround = false
	body.OnCeiling = false
	body.OnWallLeft = false
	body.OnWallRight = false

	s.resolveOverlap(body)

	s.moveX(body, dx)
	s.moveY(body, dy)

	s.resolveOverlap(body)
}

// moveX moves the body horizontally one unit at a time
func (s *PhysicsSystem) moveX(body *entity.Body, dx int) {
	if dx == 0 {
		return
	}

	step := sign(dx)
	for i := 0; i < abs(dx); i++ {
		if s.collides(body, body.X+step, body.Y) {
			body.VX = 0
			if step > 0 {
				body.OnWallRight = true
			} else {
				body.OnWallLeft = true
			}
			return
		}
		body.X += step
	}
}

// moveY moves the body vertically one unit at a time
func (s *PhysicsSystem) moveY(body *entity.Body, dy int) {
	if dy == 0 {
		return
	}

	step := sign(dy)
	for i := 0; i < abs(dy); i++ {
		if s.collides(body, body.X, body.Y+step) {
			body.VY = 0
			if step > 0 {
				body.OnGround = true
			} else {
				body.OnCeiling = true
			}
			return
		}
		body.Y += step
	}
}

func (s *PhysicsSystem) collides(body *entity.Body, x, y int) bool {
	px, py, w, h := body.Rect(x, y)
	return s.isSolidRect(px, py, w, h)
}

// resolveOverlap pushes the body out of any solid tiles it overlaps.
// Returns false if the body was stuck and reset to the spawn point.
func (s *PhysicsSystem) resolveOverlap(body *entity.Body) bool {
	const maxPushOut = 8 // pixels per axis

	if !s.collides(body, body.X, body.Y) {
		return true
	}

	type pushOption struct {
		dx, dy   int
		distance int
	}
	var options []pushOption

	dirs := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, d := range dirs {
		for i := 1; i <= maxPushOut; i++ {
			ox := d[0] * i * entity.PositionScale
			oy := d[1] * i * entity.PositionScale
			if !s.collides(body, body.X+ox, body.Y+oy) {
				options = append(options, pushOption{ox, oy, i})
				break
			}
		}
	}

	if len(options) == 0 {
		body.SetPixelPos(s.stage.SpawnX, s.stage.SpawnY)
		body.VX = 0
		body.VY = 0
		return false
	}

	best := options[0]
	for _, opt := range options[1:] {
		if opt.distance < best.distance {
			best = opt
		}
	}

	body.X += best.dx
	body.Y += best.dy

	if best.dx > 0 {
		body.OnWallLeft = true
		body.VX = 0
	} else if best.dx < 0 {
		body.OnWallRight = true
		body.VX = 0
	}
	if best.dy > 0 {
		body.OnCeiling = true
		body.VY = 0
	} else if best.dy < 0 {
		body.OnGround = true
		body.VY = 0
	}
	return true
}

// isSolidRect checks if any tile in the pixel rect is solid
func (s *PhysicsSystem) isSolidRect(x, y, w, h int) bool {
	tileSize := s.stage.TileSize
	if tileSize <= 0 {
		tileSize = 16
	}

	startTX := floorDiv(x, tileSize)
	endTX := floorDiv(x+w-1, tileSize)
	startTY := floorDiv(y, tileSize)
	endTY := floorDiv(y+h-1, tileSize)

	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			if s.stage.GetTile(tx, ty).Solid {
				return true
			}
		}
	}

	return false
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
