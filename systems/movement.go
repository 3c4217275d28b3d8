// Package systems contains the ECS systems for the demo.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/justmove/components"
	"github.com/pthm-cable/justmove/geom"
)

// MovementSystem advances player entities by one tick and keeps their
// rotated bounding boxes inside the arena. Obstacles carry no Player
// tag and are never visited.
type MovementSystem struct {
	filter    ecs.Filter4[components.Position, components.Rotation, components.Extent, components.Player]
	bounds    geom.Bounds
	speed     float32 // world units per second
	turnSpeed float32 // radians per second
}

// NewMovementSystem creates a movement system for the given arena.
func NewMovementSystem(w *ecs.World, bounds geom.Bounds, speed, turnSpeed float32) *MovementSystem {
	return &MovementSystem{
		filter:    *ecs.NewFilter4[components.Position, components.Rotation, components.Extent, components.Player](w),
		bounds:    bounds,
		speed:     speed,
		turnSpeed: turnSpeed,
	}
}

// Bounds returns the current arena bounds.
func (s *MovementSystem) Bounds() geom.Bounds {
	return s.bounds
}

// SetBounds updates the arena bounds, e.g. after a window resize.
// Bounds are stable within a tick.
func (s *MovementSystem) SetBounds(b geom.Bounds) {
	s.bounds = b
}

// SetSpeeds updates the linear and angular speeds. Used by the tuning
// panel; speeds are stable within a tick.
func (s *MovementSystem) SetSpeeds(speed, turnSpeed float32) {
	s.speed = speed
	s.turnSpeed = turnSpeed
}

// Speeds returns the current linear and angular speeds.
func (s *MovementSystem) Speeds() (float32, float32) {
	return s.speed, s.turnSpeed
}

// Update advances every player entity by dt seconds under the given
// input flags and writes the clamped result back into the world.
func (s *MovementSystem) Update(flags geom.InputFlags, dt float32) {
	query := s.filter.Query()
	for query.Next() {
		pos, rot, ext, _ := query.Get()

		newPos, newHeading := geom.Advance(
			geom.Vec2{X: pos.X, Y: pos.Y},
			rot.Heading,
			flags,
			s.speed, s.turnSpeed, dt,
			geom.Vec2{X: ext.HalfW, Y: ext.HalfH},
			s.bounds,
		)

		pos.X = newPos.X
		pos.Y = newPos.Y
		rot.Heading = newHeading
	}
}
