// Package game wires the ECS world, input, movement and rendering into
// the demo's per-frame loop.
package game

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/justmove/components"
	"github.com/pthm-cable/justmove/config"
	"github.com/pthm-cable/justmove/geom"
	"github.com/pthm-cable/justmove/input"
	"github.com/pthm-cable/justmove/systems"
	"github.com/pthm-cable/justmove/telemetry"
)

// Options holds game creation settings.
type Options struct {
	Headless  bool
	TracePath string // pose trace CSV ("" = disabled)
	LogPerf   bool
}

// Game holds the complete demo state.
type Game struct {
	world *ecs.World
	cfg   *config.Config

	// Entity mappers
	playerMapper   *ecs.Map4[components.Position, components.Rotation, components.Extent, components.Player]
	obstacleMapper *ecs.Map3[components.Position, components.Extent, components.Obstacle]

	// Render/lookup filters
	playerFilter   *ecs.Filter4[components.Position, components.Rotation, components.Extent, components.Player]
	obstacleFilter *ecs.Filter3[components.Position, components.Extent, components.Obstacle]

	// Systems
	movement *systems.MovementSystem

	// Input
	bindings input.Bindings
	script   *input.Script

	// Telemetry
	trace *telemetry.TraceWriter
	perf  *telemetry.PerfCollector

	// State
	tick      int32
	paused    bool
	headless  bool
	logPerf   bool
	showPanel bool

	// Window dimensions
	screenWidth, screenHeight float32
}

// NewGame creates a game from the global config and the given options.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	bindings, err := input.ParseBindings(cfg.Bindings)
	if err != nil {
		return nil, fmt.Errorf("parsing bindings: %w", err)
	}

	script, err := input.ParseScript(cfg.Script)
	if err != nil {
		return nil, fmt.Errorf("parsing input script: %w", err)
	}

	trace, err := telemetry.NewTraceWriter(opts.TracePath)
	if err != nil {
		return nil, err
	}
	if trace != nil {
		// Snapshot the effective config next to the trace so a run's
		// output is reproducible on its own.
		snapshot := filepath.Join(filepath.Dir(opts.TracePath), "config.yaml")
		if err := cfg.WriteYAML(snapshot); err != nil {
			return nil, fmt.Errorf("writing config snapshot: %w", err)
		}
	}

	world := ecs.NewWorld()

	g := &Game{
		world:          world,
		cfg:            cfg,
		playerMapper:   ecs.NewMap4[components.Position, components.Rotation, components.Extent, components.Player](world),
		obstacleMapper: ecs.NewMap3[components.Position, components.Extent, components.Obstacle](world),
		playerFilter:   ecs.NewFilter4[components.Position, components.Rotation, components.Extent, components.Player](world),
		obstacleFilter: ecs.NewFilter3[components.Position, components.Extent, components.Obstacle](world),
		bindings:       bindings,
		script:         script,
		trace:          trace,
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		headless:       opts.Headless,
		logPerf:        opts.LogPerf,
		screenWidth:    cfg.Derived.ScreenW32,
		screenHeight:   cfg.Derived.ScreenH32,
	}

	g.movement = systems.NewMovementSystem(
		world,
		geom.Bounds{HalfWidth: cfg.Derived.ArenaHalfW, HalfHeight: cfg.Derived.ArenaHalfH},
		cfg.Derived.PlayerSpeed,
		cfg.Derived.TurnSpeed,
	)

	g.spawnPlayer()
	g.spawnObstacles()

	return g, nil
}

// PlayerPose returns the player's position and heading. The second
// return is false when no player entity exists.
func (g *Game) PlayerPose() (geom.Vec2, float32, bool) {
	var (
		p     geom.Vec2
		h     float32
		found bool
	)
	query := g.playerFilter.Query()
	for query.Next() {
		pos, rot, _, _ := query.Get()
		if !found {
			p = geom.Vec2{X: pos.X, Y: pos.Y}
			h = rot.Heading
			found = true
		}
	}
	return p, h, found
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// ScriptDone reports whether a headless input script has been fully
// played back. With no script configured the run is open-ended (the
// player idles until max-ticks stops it) and this never reports true.
func (g *Game) ScriptDone() bool {
	return g.script.Len() > 0 && int(g.tick) >= g.script.Len()
}

// Unload releases game resources.
func (g *Game) Unload() {
	if err := g.trace.Close(); err != nil {
		slog.Warn("closing trace", "error", err)
	}
}
