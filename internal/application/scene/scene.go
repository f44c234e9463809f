// Package scene defines the Scene interface for game screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The game loop delegates Update and Draw
// to the current scene; returning a scene from Update switches to it.
type Scene interface {
	// Update advances the scene by dt seconds, one simulation tick.
	// Returns the next scene, or nil to stay. An error ends the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, and when the game closes.
	OnExit()
}
