// Package input maps physical keys to the closed set of movement
// actions and exposes the per-tick action state consumed by the
// movement system. Graphical mode polls raylib; headless mode drives
// the same state from a scripted timeline.
package input

import (
	"fmt"

	"github.com/pthm-cable/justmove/geom"
)

// Action identifies one of the discrete controls.
type Action uint8

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight
	TurnLeft
	TurnRight

	numActions
)

// actionNames maps config identifiers to actions.
var actionNames = map[string]Action{
	"move_up":    MoveUp,
	"move_down":  MoveDown,
	"move_left":  MoveLeft,
	"move_right": MoveRight,
	"turn_left":  TurnLeft,
	"turn_right": TurnRight,
}

// String returns the config identifier for an action.
func (a Action) String() string {
	for name, act := range actionNames {
		if act == a {
			return name
		}
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ParseAction resolves a config identifier to an action.
func ParseAction(name string) (Action, error) {
	a, ok := actionNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

// State holds the pressed state of every action for one tick.
type State [numActions]bool

// Set marks an action as held.
func (s *State) Set(a Action) {
	s[a] = true
}

// Held reports whether an action is held.
func (s State) Held(a Action) bool {
	return s[a]
}

// Flags converts the state to the movement flags consumed by
// geom.Advance.
func (s State) Flags() geom.InputFlags {
	return geom.InputFlags{
		Up:        s[MoveUp],
		Down:      s[MoveDown],
		Left:      s[MoveLeft],
		Right:     s[MoveRight],
		TurnLeft:  s[TurnLeft],
		TurnRight: s[TurnRight],
	}
}
