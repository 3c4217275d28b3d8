package input

import "fmt"

// Segment holds a set of actions for a number of ticks.
type Segment struct {
	Actions []Action
	Ticks   int
}

// Script is a deterministic input source for headless runs: a timeline
// of segments played back in order. Past the end of the timeline the
// script reports no actions held.
type Script struct {
	segments []Segment
	total    int
}

// NewScript builds a script from segments. Segments with non-positive
// durations are rejected.
func NewScript(segments []Segment) (*Script, error) {
	total := 0
	for i, seg := range segments {
		if seg.Ticks <= 0 {
			return nil, fmt.Errorf("script segment %d: duration %d ticks, want > 0", i, seg.Ticks)
		}
		total += seg.Ticks
	}
	return &Script{segments: segments, total: total}, nil
}

// ParseScript builds a script from config segment specs, resolving
// action names.
func ParseScript(specs []SegmentSpec) (*Script, error) {
	segments := make([]Segment, 0, len(specs))
	for i, spec := range specs {
		actions := make([]Action, 0, len(spec.Hold))
		for _, name := range spec.Hold {
			a, err := ParseAction(name)
			if err != nil {
				return nil, fmt.Errorf("script segment %d: %w", i, err)
			}
			actions = append(actions, a)
		}
		segments = append(segments, Segment{Actions: actions, Ticks: spec.Ticks})
	}
	return NewScript(segments)
}

// SegmentSpec is the config-facing form of a segment.
type SegmentSpec struct {
	Hold  []string `yaml:"hold"`
	Ticks int      `yaml:"ticks"`
}

// Len returns the total scripted duration in ticks.
func (s *Script) Len() int {
	if s == nil {
		return 0
	}
	return s.total
}

// StateAt returns the action state for a given tick. Ticks outside the
// timeline return the empty state.
func (s *Script) StateAt(tick int) State {
	var state State
	if s == nil || tick < 0 {
		return state
	}
	for _, seg := range s.segments {
		if tick < seg.Ticks {
			for _, a := range seg.Actions {
				state.Set(a)
			}
			return state
		}
		tick -= seg.Ticks
	}
	return state
}
