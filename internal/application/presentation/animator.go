package presentation

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/motionctl/internal/domain/motion"
)

// Animation clips, in priority order
const (
	ClipIdle   = "idle"
	ClipWalk   = "walk"
	ClipJump   = "jump"
	ClipFall   = "fall"
	ClipAttack = "attack"
	ClipDash   = "dash"
)

// Animator receives controller parameters and picks the clip to show.
// It implements motion.PresentationSink.
type Animator struct {
	bools   map[motion.Param]bool
	floats  map[motion.Param]float64
	camera  *Camera
	ripples []*Ripple
	emitted int
	log     *zap.Logger

	clip     string
	clipTime float64
	lengths  map[string]float64
	ended    bool
}

var _ motion.PresentationSink = (*Animator)(nil)

// NewAnimator creates an animator projecting effects through cam
func NewAnimator(cam *Camera, log *zap.Logger) *Animator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Animator{
		bools:  make(map[motion.Param]bool),
		floats: make(map[motion.Param]float64),
		camera: cam,
		log:    log.Named("animator"),
		clip:   ClipIdle,
		lengths: map[string]float64{
			ClipAttack: 0.25,
		},
	}
}

// SetClipLength makes clip one-shot: Update reports it once it has played
// for seconds. A zero length makes it looping.
func (a *Animator) SetClipLength(clip string, seconds float64) {
	if seconds <= 0 {
		delete(a.lengths, clip)
		return
	}
	a.lengths[clip] = seconds
}

func (a *Animator) SetBool(p motion.Param, v bool) {
	a.bools[p] = v
}

func (a *Animator) SetFloat(p motion.Param, v float64) {
	a.floats[p] = v
}

// Bool returns the last value set for p
func (a *Animator) Bool(p motion.Param) bool {
	return a.bools[p]
}

// Float returns the last value set for p
func (a *Animator) Float(p motion.Param) float64 {
	return a.floats[p]
}

func (a *Animator) WorldToViewport(world motion.Vec2) motion.Vec2 {
	return a.camera.WorldToViewport(world)
}

func (a *Animator) EmitRipple(viewport motion.Vec2) {
	a.ripples = append(a.ripples, NewRipple(viewport))
	a.emitted++
}

// Ripples returns the live ripples
func (a *Animator) Ripples() []*Ripple {
	return a.ripples
}

// Emitted returns how many ripples were ever emitted
func (a *Animator) Emitted() int {
	return a.emitted
}

// Clip returns the clip chosen by the last Update
func (a *Animator) Clip() string {
	return a.clip
}

// ClipTime returns how long the current clip has been playing
func (a *Animator) ClipTime() float64 {
	return a.clipTime
}

// Update ages effects and selects the clip for this frame. It returns the
// one-shot clip that finished during this update, or "".
func (a *Animator) Update(dt float64) string {
	alive := a.ripples[:0]
	for _, r := range a.ripples {
		if r.Update(dt) {
			alive = append(alive, r)
		}
	}
	for i := len(alive); i < len(a.ripples); i++ {
		a.ripples[i] = nil
	}
	a.ripples = alive

	clip := a.selectClip()
	if clip != a.clip {
		a.log.Debug("clip", zap.String("from", a.clip), zap.String("to", clip))
		a.clip = clip
		a.clipTime = 0
		a.ended = false
		return ""
	}

	a.clipTime += dt
	length, oneShot := a.lengths[clip]
	if oneShot && !a.ended && a.clipTime >= length {
		a.ended = true
		return clip
	}
	return ""
}

func (a *Animator) selectClip() string {
	switch {
	case a.bools[motion.ParamDashing]:
		return ClipDash
	case a.bools[motion.ParamAttacking]:
		return ClipAttack
	case a.bools[motion.ParamJumping]:
		if a.floats[motion.ParamVerticalVelocity] < 0 {
			return ClipFall
		}
		return ClipJump
	case a.bools[motion.ParamWalking]:
		return ClipWalk
	default:
		return ClipIdle
	}
}

// Reset clears all parameters and effects
func (a *Animator) Reset() {
	clear(a.bools)
	clear(a.floats)
	a.ripples = nil
	a.clip = ClipIdle
	a.clipTime = 0
	a.ended = false
}

// DrawEffects draws every live ripple
func (a *Animator) DrawEffects(screen *ebiten.Image) {
	for _, r := range a.ripples {
		r.Draw(screen, a.camera)
	}
}
