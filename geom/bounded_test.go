package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-4

func approxEq(got float32, want float64) bool {
	return scalar.EqualWithinAbs(float64(got), want, tol)
}

// Reference values shared by the movement scenarios.
var (
	squareHalf = Vec2{X: 25, Y: 25}
	arena      = Bounds{HalfWidth: 400, HalfHeight: 300}
)

const (
	speed     = 200.0
	turnSpeed = math.Pi / 2
)

func TestAdvanceScenarios(t *testing.T) {
	tests := []struct {
		name        string
		pos         Vec2
		heading     float32
		flags       InputFlags
		dt          float32
		wantPos     Vec2
		wantHeading float32
	}{
		{
			name:    "no input leaves state unchanged",
			pos:     Vec2{X: 12, Y: -34},
			heading: 0.7,
			flags:   InputFlags{},
			dt:      1,
			wantPos: Vec2{X: 12, Y: -34}, wantHeading: 0.7,
		},
		{
			name:    "zero dt is a no-op",
			pos:     Vec2{X: 12, Y: -34},
			heading: 0.7,
			flags:   InputFlags{Up: true, Right: true, TurnLeft: true},
			dt:      0,
			wantPos: Vec2{X: 12, Y: -34}, wantHeading: 0.7,
		},
		{
			name:    "hold right for one second",
			pos:     Vec2{},
			flags:   InputFlags{Right: true},
			dt:      1,
			wantPos: Vec2{X: 200, Y: 0}, wantHeading: 0,
		},
		{
			name:    "right is clamped at the arena edge",
			pos:     Vec2{X: 395, Y: 0},
			flags:   InputFlags{Right: true},
			dt:      1,
			wantPos: Vec2{X: 375, Y: 0}, wantHeading: 0,
		},
		{
			name:    "quarter turn left",
			pos:     Vec2{},
			flags:   InputFlags{TurnLeft: true},
			dt:      1,
			wantPos: Vec2{}, wantHeading: math.Pi / 2,
		},
		{
			name:    "opposite movement flags cancel",
			pos:     Vec2{X: 5, Y: 5},
			flags:   InputFlags{Up: true, Down: true, Left: true, Right: true},
			dt:      1,
			wantPos: Vec2{X: 5, Y: 5}, wantHeading: 0,
		},
		{
			name:    "both turn flags net zero",
			pos:     Vec2{},
			flags:   InputFlags{TurnLeft: true, TurnRight: true},
			dt:      1,
			wantPos: Vec2{}, wantHeading: 0,
		},
		{
			name:    "turn right is clockwise",
			pos:     Vec2{},
			flags:   InputFlags{TurnRight: true},
			dt:      1,
			wantPos: Vec2{}, wantHeading: -math.Pi / 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, heading := Advance(tc.pos, tc.heading, tc.flags, speed, turnSpeed, tc.dt, squareHalf, arena)
			if !approxEq(pos.X, float64(tc.wantPos.X)) || !approxEq(pos.Y, float64(tc.wantPos.Y)) {
				t.Errorf("pos = (%f, %f), want (%f, %f)", pos.X, pos.Y, tc.wantPos.X, tc.wantPos.Y)
			}
			if !approxEq(heading, float64(tc.wantHeading)) {
				t.Errorf("heading = %f, want %f", heading, tc.wantHeading)
			}
		})
	}
}

// TestAdvanceDiagonalSpeed verifies the direction vector is normalized:
// up+right moves at the same speed as a single axis, not sqrt(2) times
// faster.
func TestAdvanceDiagonalSpeed(t *testing.T) {
	pos, _ := Advance(Vec2{}, 0, InputFlags{Up: true, Right: true}, speed, turnSpeed, 1, squareHalf, arena)
	if !approxEq(pos.Length(), speed) {
		t.Errorf("diagonal displacement = %f, want %f", pos.Length(), float32(speed))
	}
	want := float32(speed / math.Sqrt2)
	if !approxEq(pos.X, float64(want)) || !approxEq(pos.Y, float64(want)) {
		t.Errorf("pos = (%f, %f), want (%f, %f)", pos.X, pos.Y, want, want)
	}
}

// TestAdvanceContainment drives the entity hard against every edge with
// rotation held and checks the rotated bounding box never leaves the
// arena.
func TestAdvanceContainment(t *testing.T) {
	pushes := []InputFlags{
		{Right: true, TurnLeft: true},
		{Left: true, TurnLeft: true},
		{Up: true, TurnRight: true},
		{Down: true, TurnRight: true},
		{Right: true, Up: true, TurnLeft: true},
		{Left: true, Down: true, TurnRight: true},
	}

	for _, flags := range pushes {
		pos := Vec2{}
		heading := float32(0)
		for tick := 0; tick < 600; tick++ {
			pos, heading = Advance(pos, heading, flags, speed, turnSpeed, 1.0/60.0, squareHalf, arena)

			extent := RotatedExtent(squareHalf, heading)
			if math.Abs(float64(pos.X))+float64(extent.X) > float64(arena.HalfWidth)+tol {
				t.Fatalf("tick %d flags %+v: x bound exceeded: pos %f extent %f", tick, flags, pos.X, extent.X)
			}
			if math.Abs(float64(pos.Y))+float64(extent.Y) > float64(arena.HalfHeight)+tol {
				t.Fatalf("tick %d flags %+v: y bound exceeded: pos %f extent %f", tick, flags, pos.Y, extent.Y)
			}
			if math.IsNaN(float64(pos.X)) || math.IsNaN(float64(pos.Y)) {
				t.Fatalf("tick %d flags %+v: position is NaN", tick, flags)
			}
		}
	}
}

// TestAdvanceDegenerateBounds covers an arena smaller than the rotated
// footprint: the clamp interval is empty and the position must fall
// back to the arena center without producing NaN or Inf.
func TestAdvanceDegenerateBounds(t *testing.T) {
	tiny := Bounds{HalfWidth: 10, HalfHeight: 10}
	pos, heading := Advance(Vec2{X: 50, Y: -50}, 0, InputFlags{Right: true}, speed, turnSpeed, 1, squareHalf, tiny)

	if pos.X != 0 || pos.Y != 0 {
		t.Errorf("pos = (%f, %f), want arena center", pos.X, pos.Y)
	}
	if math.IsNaN(float64(heading)) || math.IsInf(float64(heading), 0) {
		t.Errorf("heading = %f, want finite", heading)
	}
}

func TestRotatedExtent(t *testing.T) {
	tests := []struct {
		name       string
		halfExtent Vec2
		heading    float64
		want       Vec2
	}{
		{
			name:       "identity",
			halfExtent: Vec2{X: 25, Y: 25},
			heading:    0,
			want:       Vec2{X: 25, Y: 25},
		},
		{
			name:       "square at quarter turn keeps its bound",
			halfExtent: Vec2{X: 25, Y: 25},
			heading:    math.Pi / 2,
			want:       Vec2{X: 25, Y: 25},
		},
		{
			name:       "square at 45 degrees grows to the diagonal",
			halfExtent: Vec2{X: 25, Y: 25},
			heading:    math.Pi / 4,
			want:       Vec2{X: 25 * math.Sqrt2, Y: 25 * math.Sqrt2},
		},
		{
			name:       "rectangle swaps axes at quarter turn",
			halfExtent: Vec2{X: 30, Y: 10},
			heading:    math.Pi / 2,
			want:       Vec2{X: 10, Y: 30},
		},
		{
			name:       "negative heading projects the same",
			halfExtent: Vec2{X: 30, Y: 10},
			heading:    -math.Pi / 2,
			want:       Vec2{X: 10, Y: 30},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RotatedExtent(tc.halfExtent, float32(tc.heading))
			if !approxEq(got.X, float64(tc.want.X)) || !approxEq(got.Y, float64(tc.want.Y)) {
				t.Errorf("RotatedExtent = (%f, %f), want (%f, %f)", got.X, got.Y, tc.want.X, tc.want.Y)
			}
		})
	}
}

func TestVec2Normalized(t *testing.T) {
	if got := (Vec2{}).Normalized(); got.X != 0 || got.Y != 0 {
		t.Errorf("zero vector normalized = (%f, %f), want zero", got.X, got.Y)
	}
	if got := (Vec2{X: 3, Y: 4}).Normalized(); !approxEq(got.Length(), 1) {
		t.Errorf("length = %f, want 1", got.Length())
	}
}
