package component

// Mover lets an entity step toward a point at a constant speed.
type Mover struct {
	Speed float64
	// IgnoreObstacles skips the obstacle field entirely (bosses).
	IgnoreObstacles bool
}

var MoverComponent = NewComponent[Mover]()
