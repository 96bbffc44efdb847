package component

import "github.com/jakecoffman/cp"

// Transform places an entity on the playfield. Radius is the collision circle
// used by every overlap test.
type Transform struct {
	Pos         cp.Vector
	Radius      float64
	FacingRight bool
}

var TransformComponent = NewComponent[Transform]()
