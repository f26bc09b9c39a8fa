package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/motionctl/internal/domain/motion"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

// RawKeys is the raw keyboard state of one frame
type RawKeys struct {
	Left          bool
	Right         bool
	Up            bool
	Down          bool
	Jump          bool
	JumpPressed   bool
	DashPressed   bool
	AttackPressed bool
}

// Axis returns the raw direction, y-up, each component in {-1,0,1}
func (k RawKeys) Axis() motion.Vec2 {
	var v motion.Vec2
	if k.Right {
		v.X++
	}
	if k.Left {
		v.X--
	}
	if k.Up {
		v.Y++
	}
	if k.Down {
		v.Y--
	}
	return v
}

// AxisSmoother eases a digital axis toward its target over time
type AxisSmoother struct {
	Sensitivity float64 // units/s toward a pressed direction
	Gravity     float64 // units/s back to rest
	DeadZone    float64
	Snap        bool // reversing jumps to zero first

	value float64
}

// Value returns the current smoothed value
func (a *AxisSmoother) Value() float64 {
	return a.value
}

// Reset returns the axis to rest
func (a *AxisSmoother) Reset() {
	a.value = 0
}

// Update moves the axis toward target and returns the new value
func (a *AxisSmoother) Update(target, dt float64) float64 {
	if a.Snap && target != 0 && a.value != 0 && (target > 0) != (a.value > 0) {
		a.value = 0
	}

	if target != 0 {
		a.value = approach(a.value, target, a.Sensitivity*dt)
	} else {
		a.value = approach(a.value, 0, a.Gravity*dt)
	}

	if math.Abs(a.value) < a.DeadZone {
		a.value = 0
	}
	return a.value
}

func approach(v, target, step float64) float64 {
	if step <= 0 {
		return target
	}
	if v < target {
		return math.Min(v+step, target)
	}
	return math.Max(v-step, target)
}

// InputSystem turns keyboard state into motion input snapshots
type InputSystem struct {
	x, y AxisSmoother
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg config.InputConfig) *InputSystem {
	s := &InputSystem{}
	s.SetConfig(cfg)
	return s
}

// SetConfig updates smoothing without resetting the axes
func (s *InputSystem) SetConfig(cfg config.InputConfig) {
	for _, a := range []*AxisSmoother{&s.x, &s.y} {
		a.Sensitivity = cfg.Sensitivity
		a.Gravity = cfg.Gravity
		a.DeadZone = cfg.DeadZone
		a.Snap = cfg.Snap
	}
}

// Reset returns both axes to rest
func (s *InputSystem) Reset() {
	s.x.Reset()
	s.y.Reset()
}

// Poll reads the keyboard
func (s *InputSystem) Poll() RawKeys {
	return RawKeys{
		Left:          ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:         ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:            ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:          ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Jump:          ebiten.IsKeyPressed(ebiten.KeySpace),
		JumpPressed:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		DashPressed:   inpututil.IsKeyJustPressed(ebiten.KeyX) || inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft),
		AttackPressed: inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeyJ),
	}
}

// Read converts raw keys into a motion input snapshot, advancing smoothing by dt
func (s *InputSystem) Read(raw RawKeys, dt float64) motion.InputState {
	axis := raw.Axis()
	return motion.InputState{
		Move: motion.Vec2{
			X: s.x.Update(axis.X, dt),
			Y: s.y.Update(axis.Y, dt),
		},
		RawMove:       axis,
		JumpPressed:   raw.JumpPressed,
		JumpHeld:      raw.Jump,
		DashPressed:   raw.DashPressed,
		AttackPressed: raw.AttackPressed,
	}
}
