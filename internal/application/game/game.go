// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/motionctl/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	frames  uint64
	log     *zap.Logger
}

// Option configures a Game
type Option func(*Game)

// WithTickRate sets the fixed update rate in ticks per second
func WithTickRate(tps int) Option {
	return func(g *Game) {
		if tps > 0 {
			g.dt = 1.0 / float64(tps)
		}
	}
}

// WithLogger sets the logger used for scene transitions
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l.Named("game")
		}
	}
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, opts ...Option) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.frames++

	next, err := g.current.Update(g.dt)
	if err != nil {
		return fmt.Errorf("frame %d: %w", g.frames, err)
	}

	// Handle scene transition
	if next != nil {
		g.log.Debug("scene transition",
			zap.String("from", fmt.Sprintf("%T", g.current)),
			zap.String("to", fmt.Sprintf("%T", next)))
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions, deferring to the
// current scene when it implements scene.Layouter.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if l, ok := g.current.(scene.Layouter); ok {
		return l.Layout(outsideWidth, outsideHeight)
	}
	return g.screenW, g.screenH
}

// Close runs OnExit on the current scene. Call it once the run loop returns.
func (g *Game) Close() {
	g.current.OnExit()
}

// DT returns the fixed delta time passed to scenes
func (g *Game) DT() float64 {
	return g.dt
}

// Frames returns the number of Update calls so far
func (g *Game) Frames() uint64 {
	return g.frames
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
