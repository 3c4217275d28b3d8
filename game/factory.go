package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/justmove/components"
)

// spawnPlayer creates the controllable square at its configured start
// position with identity heading.
func (g *Game) spawnPlayer() ecs.Entity {
	cfg := g.cfg

	pos := components.Position{X: float32(cfg.Player.StartX), Y: float32(cfg.Player.StartY)}
	rot := components.Rotation{Heading: 0}
	ext := components.Extent{HalfW: cfg.Derived.PlayerHalf, HalfH: cfg.Derived.PlayerHalf}

	return g.playerMapper.NewEntity(&pos, &rot, &ext, &components.Player{})
}

// spawnObstacles creates the decorative obstacle row, centered
// horizontally above the arena center. The movement system never
// consults them.
func (g *Game) spawnObstacles() {
	cfg := g.cfg
	half := float32(cfg.Obstacles.Size) / 2

	for i := 0; i < cfg.Obstacles.Count; i++ {
		offset := float32(i) - float32(cfg.Obstacles.Count-1)/2
		pos := components.Position{
			X: offset * float32(cfg.Obstacles.Spacing),
			Y: float32(cfg.Obstacles.Y),
		}
		ext := components.Extent{HalfW: half, HalfH: half}

		g.obstacleMapper.NewEntity(&pos, &ext, &components.Obstacle{})
	}
}
