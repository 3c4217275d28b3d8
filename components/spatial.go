package components

// Position represents an entity's world position, in world units
// relative to the arena center.
type Position struct {
	X, Y float32
}

// Rotation represents an entity's heading.
type Rotation struct {
	Heading float32 // radians, counter-clockwise positive
}

// Extent represents an entity's half-width and half-height before
// rotation.
type Extent struct {
	HalfW, HalfH float32
}
