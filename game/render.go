package game

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Entity colors: a teal player and a row of salmon obstacles.
var (
	playerColor   = rl.NewColor(0, 131, 132, 255)
	obstacleColor = rl.NewColor(232, 131, 132, 255)
)

// Draw renders the frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	g.drawObstacles()
	g.drawPlayer()
	g.drawHUD()
	if g.showPanel {
		g.drawPanel()
	}

	rl.EndDrawing()
}

// toScreen converts a world position (arena center origin, Y up) to
// screen coordinates (top-left origin, Y down).
func (g *Game) toScreen(x, y float32) (float32, float32) {
	return g.screenWidth/2 + x, g.screenHeight/2 - y
}

// drawPlayer draws the controllable square rotated by its heading.
func (g *Game) drawPlayer() {
	query := g.playerFilter.Query()
	for query.Next() {
		pos, rot, ext, _ := query.Get()

		sx, sy := g.toScreen(pos.X, pos.Y)
		rect := rl.Rectangle{X: sx, Y: sy, Width: ext.HalfW * 2, Height: ext.HalfH * 2}
		origin := rl.Vector2{X: ext.HalfW, Y: ext.HalfH}

		// Heading is counter-clockwise in world space; screen Y points
		// down, so raylib's rotation runs the other way.
		degrees := -rot.Heading * 180 / math.Pi
		rl.DrawRectanglePro(rect, origin, degrees, playerColor)
	}
}

// drawObstacles draws the decorative obstacle row.
func (g *Game) drawObstacles() {
	query := g.obstacleFilter.Query()
	for query.Next() {
		pos, ext, _ := query.Get()

		sx, sy := g.toScreen(pos.X, pos.Y)
		rect := rl.Rectangle{X: sx, Y: sy, Width: ext.HalfW * 2, Height: ext.HalfH * 2}
		origin := rl.Vector2{X: ext.HalfW, Y: ext.HalfH}
		rl.DrawRectanglePro(rect, origin, 0, obstacleColor)
	}
}

// drawHUD draws the tick counter and player pose readout.
func (g *Game) drawHUD() {
	query := g.playerFilter.Query()
	for query.Next() {
		pos, rot, _, _ := query.Get()
		text := fmt.Sprintf("tick %d  pos (%.0f, %.0f)  heading %.2f", g.tick, pos.X, pos.Y, rot.Heading)
		rl.DrawText(text, 10, 10, 18, rl.DarkGray)
	}

	if g.paused {
		rl.DrawText("PAUSED", 10, 32, 18, rl.Maroon)
	}
	rl.DrawText(fmt.Sprintf("%d fps", rl.GetFPS()), 10, int32(g.screenHeight)-24, 18, rl.Gray)
}

// drawPanel draws the raygui tuning panel for live speed adjustment.
func (g *Game) drawPanel() {
	panelX := g.screenWidth - 230
	panelY := float32(10)

	speed, turnSpeed := g.movement.Speeds()

	rl.DrawText("Movement", int32(panelX), int32(panelY), 16, rl.DarkGray)
	panelY += 24

	rl.DrawText("Speed", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	newSpeed := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: 160, Height: 20},
		"0", "400",
		speed, 0, 400,
	)
	rl.DrawText(fmt.Sprintf("%.0f", speed), int32(panelX+170), int32(panelY+2), 14, rl.DarkGray)
	panelY += 28

	rl.DrawText("Turn speed", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	newTurnSpeed := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: 160, Height: 20},
		"0", "pi",
		turnSpeed, 0, math.Pi,
	)
	rl.DrawText(fmt.Sprintf("%.2f", turnSpeed), int32(panelX+170), int32(panelY+2), 14, rl.DarkGray)

	if newSpeed != speed || newTurnSpeed != turnSpeed {
		g.movement.SetSpeeds(newSpeed, newTurnSpeed)
	}
}
