package component

import "github.com/jakecoffman/cp"

// Player holds the controller state of the single player entity. The auto
// attack target lives on the world since it refers to another entity.
type Player struct {
	Character string

	// MoveTarget is nil when the player is not moving.
	MoveTarget *cp.Vector
	Hover      cp.Vector

	ShotCooldown int
	ShotFrames   int
	ShotSpeed    float64
	ShotDamage   float64
	ShotRadius   float64
}

var PlayerComponent = NewComponent[Player]()
