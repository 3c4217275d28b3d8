package components

// Player marks the controllable entity.
type Player struct{}

// Obstacle marks a static decorative square. Obstacles are rendered
// but never consulted by the movement system.
type Obstacle struct{}
