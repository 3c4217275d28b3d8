package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/justmove/input"
	"github.com/pthm-cable/justmove/telemetry"
)

// Step advances the simulation by one tick under the given action
// state.
func (g *Game) Step(state input.State, dt float32) {
	g.perf.StartTick()

	g.movement.Update(state.Flags(), dt)
	g.tick++

	g.writeTrace()
	g.perf.EndTick()

	if g.logPerf && g.cfg.Telemetry.PerfLogEvery > 0 && g.tick%int32(g.cfg.Telemetry.PerfLogEvery) == 0 {
		g.perf.Log(g.tick)
	}
}

// Update runs one graphical frame: input polling, then a variable-dt
// simulation step.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	g.Step(input.Poll(g.bindings), rl.GetFrameTime())
}

// UpdateHeadless runs one fixed-dt tick driven by the input script.
// No raylib calls are made on this path.
func (g *Game) UpdateHeadless() {
	g.Step(g.script.StateAt(int(g.tick)), g.cfg.Derived.DT32)
}

// writeTrace appends the player pose to the trace CSV, if enabled.
func (g *Game) writeTrace() {
	if g.trace == nil {
		return
	}

	query := g.playerFilter.Query()
	for query.Next() {
		pos, rot, _, _ := query.Get()
		rec := telemetry.PoseRecord{Tick: g.tick, X: pos.X, Y: pos.Y, Heading: rot.Heading}
		if err := g.trace.Write(rec); err != nil {
			// Drop the writer on the first failure instead of erroring
			// every tick.
			slog.Warn("pose trace disabled", "error", err)
			g.trace.Close()
			g.trace = nil
		}
	}
}
