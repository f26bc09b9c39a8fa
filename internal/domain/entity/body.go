package entity

// PositionScale is the internal position scale factor.
// 1 pixel = 100 internal units. This provides 0.01 pixel precision.
const PositionScale = 100

// Body is a tile-world body. Screen convention: y grows downward.
// Position is stored at 100x scale for sub-pixel precision without floats.
// Velocity is stored as float in 100x scale units per second.
type Body struct {
	X, Y   int     // 100x scaled top-left of the hitbox
	VX, VY float64 // 100x scaled velocity (units per second)

	GravityScale float64
	// ScaleX is the horizontal orientation scale; its sign is the facing
	ScaleX float64

	Hitbox HitboxRect

	OnGround    bool
	OnCeiling   bool
	OnWallLeft  bool
	OnWallRight bool
}

// HitboxRect represents a hitbox rectangle relative to the body position
type HitboxRect struct {
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// NewBody creates a body at pixel coordinates with unit gravity facing right
func NewBody(x, y int, hitbox HitboxRect) *Body {
	return &Body{
		X:            x * PositionScale,
		Y:            y * PositionScale,
		GravityScale: 1,
		ScaleX:       1,
		Hitbox:       hitbox,
	}
}

// PixelX returns the pixel X position (internal X / PositionScale)
func (b *Body) PixelX() int {
	return b.X / PositionScale
}

// PixelY returns the pixel Y position (internal Y / PositionScale)
func (b *Body) PixelY() int {
	return b.Y / PositionScale
}

// SetPixelPos sets the position from pixel coordinates (converts to 100x scale)
func (b *Body) SetPixelPos(x, y int) {
	b.X = x * PositionScale
	b.Y = y * PositionScale
}

// FacingRight reports whether the orientation scale is non-negative
func (b *Body) FacingRight() bool {
	return b.ScaleX >= 0
}

// Rect returns the hitbox in pixel coordinates at the given internal position
func (b *Body) Rect(x, y int) (px, py, w, h int) {
	return x/PositionScale + b.Hitbox.OffsetX, y/PositionScale + b.Hitbox.OffsetY, b.Hitbox.Width, b.Hitbox.Height
}

// Center returns the hitbox center in pixels
func (b *Body) Center() (float64, float64) {
	x := float64(b.X)/PositionScale + float64(b.Hitbox.OffsetX) + float64(b.Hitbox.Width)/2
	y := float64(b.Y)/PositionScale + float64(b.Hitbox.OffsetY) + float64(b.Hitbox.Height)/2
	return x, y
}

// ApplyVelocity applies velocity to position, returning integer units to move.
// With 100x scale, no remainder accumulation is needed as precision is built-in.
func (b *Body) ApplyVelocity(dt float64) (dx, dy int) {
	dx = int(b.VX * dt)
	dy = int(b.VY * dt)
	return dx, dy
}
