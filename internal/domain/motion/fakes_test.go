package motion

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testGravity = -9.81

type fakeInput struct {
	InputState
	err error
}

func (f *fakeInput) Err() error { return f.err }

type overlapCall struct {
	center Vec2
	radius float64
	mask   LayerMask
}

type fakeBody struct {
	vel      Vec2
	gravity  float64
	scale    float64
	pos      Vec2
	facing   float64
	onGround bool
	overlaps []overlapCall
	err      error
}

func newFakeBody() *fakeBody {
	return &fakeBody{gravity: testGravity, scale: 1, facing: 1, onGround: true}
}

func (b *fakeBody) Velocity() Vec2 { return b.vel }
func (b *fakeBody) SetVelocity(v Vec2) { b.vel = v }
func (b *fakeBody) GravityScale() float64 { return b.scale }
func (b *fakeBody) SetGravityScale(s float64) { b.scale = s }
func (b *fakeBody) Gravity() float64 { return b.gravity }
func (b *fakeBody) Position() Vec2 { return b.pos }
func (b *fakeBody) Facing() float64 { return b.facing }
func (b *fakeBody) SetFacing(sign float64) { b.facing = sign }
func (b *fakeBody) Err() error { return b.err }
func (b *fakeBody) OverlapCircle(center Vec2, radius float64, mask LayerMask) bool {
	b.overlaps = append(b.overlaps, overlapCall{center: center, radius: radius, mask: mask})
	return b.onGround
}

type fakeSink struct {
	bools   map[Param]bool
	floats  map[Param]float64
	sets    map[Param]int
	ripples []Vec2
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		bools:  make(map[Param]bool),
		floats: make(map[Param]float64),
		sets:   make(map[Param]int),
	}
}

func (s *fakeSink) SetBool(p Param, v bool) {
	s.bools[p] = v
	s.sets[p]++
}

func (s *fakeSink) SetFloat(p Param, v float64) {
	s.floats[p] = v
	s.sets[p]++
}

func (s *fakeSink) WorldToViewport(world Vec2) Vec2 {
	return world.Scale(0.1)
}

func (s *fakeSink) EmitRipple(viewport Vec2) {
	s.ripples = append(s.ripples, viewport)
}

type rig struct {
	c    *Controller
	in   *fakeInput
	body *fakeBody
	sink *fakeSink
	logs *observer.ObservedLogs
	dt   float64
}

func newRig(t *testing.T, tune func(*Tuning)) *rig {
	t.Helper()

	tuning := DefaultTuning()
	if tune != nil {
		tune(&tuning)
	}

	core, logs := observer.New(zapcore.DebugLevel)
	r := &rig{
		in:   &fakeInput{},
		body: newFakeBody(),
		sink: newFakeSink(),
		logs: logs,
		dt:   0.05,
	}

	c, err := New(tuning, r.in, r.body, r.sink, WithLogger(zap.New(core)))
	require.NoError(t, err)
	r.c = c
	return r
}

// tick runs one frame with the given input, then clears the input
func (r *rig) tick(t *testing.T, in InputState) {
	t.Helper()
	r.in.InputState = in
	require.NoError(t, r.c.Tick(r.dt))
	r.in.InputState = InputState{}
}

func (r *rig) idle(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		r.tick(t, InputState{})
	}
}

// airborne makes the ground check miss and runs a tick so the controller sees it
func (r *rig) airborne(t *testing.T) {
	t.Helper()
	r.body.onGround = false
	r.tick(t, InputState{})
	require.False(t, r.c.Grounded())
}

func (r *rig) landings() int {
	return r.logs.FilterMessage("landed").Len()
}
