package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/justmove/geom"
)

// handleInput processes window-level keyboard input. Movement keys are
// read separately through the action bindings.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Tuning panel toggle
	if rl.IsKeyPressed(rl.KeyTab) {
		g.showPanel = !g.showPanel
	}
}

// handleResize checks for window resize and propagates the new arena
// bounds to the movement system.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.movement.SetBounds(geom.Bounds{HalfWidth: w / 2, HalfHeight: h / 2})
}
