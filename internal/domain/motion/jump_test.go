package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJump_Trigger(t *testing.T) {
	t.Run("grounded jump replaces vertical velocity", func(t *testing.T) {
		for _, vy := range []float64{-3, 0, 4} {
			r := newRig(t, nil)
			r.idle(t, 1)
			r.body.vel = Vec2{Y: vy}

			r.tick(t, InputState{JumpPressed: true, JumpHeld: true})

			assert.Equal(t, 10.0, r.body.vel.Y, "prior vy %v", vy)
			assert.True(t, r.sink.bools[ParamJumping])
		}
	})

	t.Run("keeps horizontal velocity", func(t *testing.T) {
		r := newRig(t, nil)
		r.idle(t, 1)

		r.tick(t, InputState{Move: Vec2{X: 1}, RawMove: Vec2{X: 1}, JumpPressed: true, JumpHeld: true})

		assert.Equal(t, Vec2{X: 20, Y: 10}, r.body.vel)
	})

	t.Run("airborne jump is ignored", func(t *testing.T) {
		r := newRig(t, nil)
		r.airborne(t)

		r.tick(t, InputState{JumpPressed: true, JumpHeld: true})

		assert.Equal(t, 0.0, r.body.vel.Y)
	})
}

func TestJump_FeelShaping(t *testing.T) {
	tests := []struct {
		name     string
		vy       float64
		held     bool
		expected float64
	}{
		{"falling gets extra gravity", -5, false, -5 + testGravity*(2.5-1)*0.1},
		{"falling while held still gets extra gravity", -5, true, -5 + testGravity*(2.5-1)*0.1},
		{"rising with jump held is untouched", 5, true, 5},
		{"rising after release is cut", 5, false, 5 + testGravity*(2.0-1)*0.1},
		{"apex is untouched", 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, nil)
			r.dt = 0.1
			r.airborne(t)
			r.body.vel = Vec2{Y: tt.vy}

			r.tick(t, InputState{JumpHeld: tt.held})

			assert.InDelta(t, tt.expected, r.body.vel.Y, 1e-9)
		})
	}
}

func TestJump_FlagClearedOnLanding(t *testing.T) {
	r := newRig(t, nil)
	r.idle(t, 1)
	r.tick(t, InputState{JumpPressed: true, JumpHeld: true})
	r.body.onGround = false
	r.idle(t, 2)
	r.sink.bools[ParamJumping] = true

	r.body.onGround = true
	r.body.vel = Vec2{}
	r.idle(t, 2)

	assert.False(t, r.sink.bools[ParamJumping])
}

func TestFinishJump_Idempotent(t *testing.T) {
	r := newRig(t, nil)
	r.sink.bools[ParamJumping] = true

	r.c.FinishJump()
	r.c.FinishJump()

	assert.False(t, r.sink.bools[ParamJumping])
}
