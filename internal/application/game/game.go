// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/lionheart/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	logger  *log.Logger
}

// New creates a new Game with the given initial scene running at rate
// ticks per second. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, rate int, logger *log.Logger) *Game {
	if rate <= 0 {
		rate = 60
	}
	if logger == nil {
		logger = log.Default()
	}
	ebiten.SetTPS(rate)
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(rate),
		logger:  logger,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.logger.Debug("scene transition", "from", fmt.Sprintf("%T", g.current), "to", fmt.Sprintf("%T", next))
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

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close leaves the current scene, flushing whatever it persists on exit.
func (g *Game) Close() {
	g.current.OnExit()
}

// DT returns the frame time handed to scenes.
func (g *Game) DT() float64 { return g.dt }
