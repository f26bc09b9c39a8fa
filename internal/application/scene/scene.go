// Package scene defines the screens the game loop switches between.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one game screen. The game loop calls Update and Draw on the
// current scene and switches when Update returns a non-nil next scene.
type Scene interface {
	// Update advances the scene by dt seconds. A non-nil error stops the game.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs every time the scene becomes current
	OnEnter()

	// OnExit runs when the scene is replaced or the game shuts down
	OnExit()
}

// Layouter is implemented by scenes that pick their own logical screen size
type Layouter interface {
	Layout(outsideWidth, outsideHeight int) (int, int)
}
