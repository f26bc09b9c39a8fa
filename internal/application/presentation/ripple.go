package presentation

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/motionctl/internal/domain/motion"
)

const (
	rippleLifetime  = 0.35 // seconds
	rippleMaxRadius = 28.0 // screen pixels
)

// Ripple is an expanding ring anchored in viewport space
type Ripple struct {
	Center   motion.Vec2
	Age      float64
	Lifetime float64
	MaxR     float64
}

// NewRipple creates a ripple at a viewport position
func NewRipple(center motion.Vec2) *Ripple {
	return &Ripple{Center: center, Lifetime: rippleLifetime, MaxR: rippleMaxRadius}
}

// Update ages the ripple and reports whether it is still alive
func (r *Ripple) Update(dt float64) bool {
	r.Age += dt
	return r.Alive()
}

// Alive reports whether the ripple has time left
func (r *Ripple) Alive() bool {
	return r.Age < r.Lifetime
}

// Progress returns 0 at birth and 1 at death
func (r *Ripple) Progress() float64 {
	if r.Lifetime <= 0 {
		return 1
	}
	return clamp(r.Age/r.Lifetime, 0, 1)
}

// Radius grows quickly then eases out
func (r *Ripple) Radius() float64 {
	t := r.Progress()
	return r.MaxR * (1 - (1-t)*(1-t))
}

// Alpha fades linearly
func (r *Ripple) Alpha() float64 {
	return 1 - r.Progress()
}

// Draw strokes the ring on screen
func (r *Ripple) Draw(screen *ebiten.Image, cam *Camera) {
	x, y := cam.ViewportToScreen(r.Center)
	a := uint8(255 * r.Alpha())
	c := color.RGBA{R: a, G: a, B: a, A: a}
	vector.StrokeCircle(screen, float32(x), float32(y), float32(r.Radius()), 2, c, true)
}
