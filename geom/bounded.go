package geom

import "math"

// InputFlags holds the control state for one tick. The flags are
// independent: opposite movement flags cancel on their axis, and the
// two turn flags apply independently (both held nets zero rotation).
type InputFlags struct {
	Up, Down, Left, Right bool
	TurnLeft, TurnRight   bool
}

// Direction composes the raw movement vector from the four linear
// flags: +X is right, +Y is up, one unit per held axis.
func (f InputFlags) Direction() Vec2 {
	var d Vec2
	if f.Right {
		d.X += 1
	}
	if f.Left {
		d.X -= 1
	}
	if f.Up {
		d.Y += 1
	}
	if f.Down {
		d.Y -= 1
	}
	return d
}

// Bounds describes an axis-aligned arena centered at the origin.
type Bounds struct {
	HalfWidth, HalfHeight float32
}

// RotatedExtent returns the axis-aligned half-extent of a box with the
// given half-extent after rotation by heading radians. This is the
// projection of the rotated box onto the axes: each output component is
// the absolute rotation matrix applied to the half-extent. It must be
// recomputed whenever the heading changes.
func RotatedExtent(halfExtent Vec2, heading float32) Vec2 {
	c := float32(math.Abs(math.Cos(float64(heading))))
	s := float32(math.Abs(math.Sin(float64(heading))))
	return Vec2{
		X: c*halfExtent.X + s*halfExtent.Y,
		Y: s*halfExtent.X + c*halfExtent.Y,
	}
}

// clampAxis clamps v to [-half+extent, half-extent]. When the rotated
// extent exceeds the arena half-size the interval is empty; the safe
// fallback is the arena center.
func clampAxis(v, half, extent float32) float32 {
	lo := -half + extent
	hi := half - extent
	if lo > hi {
		return 0
	}
	return clampFloat(v, lo, hi)
}

// Advance computes one tick of translation and rotation for a square
// entity and clamps the result so the entity's rotated bounding box
// stays inside the arena.
//
// The movement direction is normalized so diagonal movement is no
// faster than axial movement. Translation integrates linearSpeed over
// dt onto the existing position. TurnLeft rotates counter-clockwise
// (positive heading), TurnRight clockwise. The function is pure: it
// holds no state and performs no validation of its inputs.
func Advance(pos Vec2, heading float32, flags InputFlags, linearSpeed, angularSpeed, dt float32, halfExtent Vec2, bounds Bounds) (Vec2, float32) {
	dir := flags.Direction().Normalized()
	pos = pos.Add(dir.Scale(linearSpeed * dt))

	if flags.TurnLeft {
		heading += angularSpeed * dt
	}
	if flags.TurnRight {
		heading -= angularSpeed * dt
	}

	extent := RotatedExtent(halfExtent, heading)
	pos.X = clampAxis(pos.X, bounds.HalfWidth, extent.X)
	pos.Y = clampAxis(pos.Y, bounds.HalfHeight, extent.Y)

	return pos, heading
}
