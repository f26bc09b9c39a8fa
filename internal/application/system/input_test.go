package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/motionctl/internal/domain/motion"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

func createTestInputConfig() config.InputConfig {
	return config.InputConfig{
		Sensitivity: 3,
		Gravity:     3,
		DeadZone:    0.001,
		Snap:        true,
	}
}

func TestRawKeys_Axis(t *testing.T) {
	tests := []struct {
		name string
		keys RawKeys
		want motion.Vec2
	}{
		{"none", RawKeys{}, motion.Vec2{}},
		{"right", RawKeys{Right: true}, motion.Vec2{X: 1}},
		{"left", RawKeys{Left: true}, motion.Vec2{X: -1}},
		{"left and right cancel", RawKeys{Left: true, Right: true}, motion.Vec2{}},
		{"up is positive", RawKeys{Up: true}, motion.Vec2{Y: 1}},
		{"down left", RawKeys{Down: true, Left: true}, motion.Vec2{X: -1, Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.keys.Axis())
		})
	}
}

func TestAxisSmoother(t *testing.T) {
	newAxis := func() *AxisSmoother {
		return &AxisSmoother{Sensitivity: 3, Gravity: 3, DeadZone: 0.001, Snap: true}
	}

	t.Run("ramps toward target and clamps", func(t *testing.T) {
		a := newAxis()

		assert.InDelta(t, 0.3, a.Update(1, 0.1), 1e-9)
		assert.InDelta(t, 0.6, a.Update(1, 0.1), 1e-9)
		assert.InDelta(t, 0.9, a.Update(1, 0.1), 1e-9)
		assert.Equal(t, 1.0, a.Update(1, 0.1))
	})

	t.Run("returns to rest on release", func(t *testing.T) {
		a := newAxis()
		a.Update(1, 1)
		require.Equal(t, 1.0, a.Value())

		assert.InDelta(t, 0.7, a.Update(0, 0.1), 1e-9)
		a.Update(0, 1)
		assert.Equal(t, 0.0, a.Value())
	})

	t.Run("snap zeroes before reversing", func(t *testing.T) {
		a := newAxis()
		a.Update(1, 0.2)

		assert.InDelta(t, -0.3, a.Update(-1, 0.1), 1e-9)
	})

	t.Run("without snap reverses gradually", func(t *testing.T) {
		a := newAxis()
		a.Snap = false
		a.Update(1, 0.2)

		assert.InDelta(t, 0.3, a.Update(-1, 0.1), 1e-9)
	})

	t.Run("dead zone clamps tiny values", func(t *testing.T) {
		a := newAxis()
		a.Sensitivity = 0.005

		assert.Equal(t, 0.0, a.Update(1, 0.1))
	})

	t.Run("zero sensitivity is instant", func(t *testing.T) {
		a := newAxis()
		a.Sensitivity = 0

		assert.Equal(t, -1.0, a.Update(-1, 0.016))
	})
}

func TestInputSystem_Read(t *testing.T) {
	sys := NewInputSystem(createTestInputConfig())

	state := sys.Read(RawKeys{Right: true, Up: true, Jump: true, JumpPressed: true}, 0.1)

	assert.InDelta(t, 0.3, state.Move.X, 1e-9)
	assert.InDelta(t, 0.3, state.Move.Y, 1e-9)
	assert.Equal(t, motion.Vec2{X: 1, Y: 1}, state.RawMove)
	assert.True(t, state.Pressed(motion.ButtonJump))
	assert.True(t, state.Held(motion.ButtonJump))
	assert.False(t, state.Pressed(motion.ButtonDash))

	state = sys.Read(RawKeys{Right: true, Jump: true, DashPressed: true, AttackPressed: true}, 0.1)

	assert.InDelta(t, 0.6, state.Move.X, 1e-9)
	assert.False(t, state.Pressed(motion.ButtonJump))
	assert.True(t, state.Held(motion.ButtonJump))
	assert.True(t, state.Pressed(motion.ButtonDash))
	assert.True(t, state.Pressed(motion.ButtonAttack))

	sys.Reset()
	state = sys.Read(RawKeys{}, 0.1)
	assert.Equal(t, motion.Vec2{}, state.Move)
}

func TestInputSystem_SetConfig(t *testing.T) {
	sys := NewInputSystem(createTestInputConfig())
	sys.Read(RawKeys{Right: true}, 0.1)

	cfg := createTestInputConfig()
	cfg.Sensitivity = 10
	sys.SetConfig(cfg)

	state := sys.Read(RawKeys{Right: true}, 0.05)
	assert.InDelta(t, 0.8, state.Move.X, 1e-9)
}
