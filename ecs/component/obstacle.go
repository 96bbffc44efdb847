package component

import "github.com/jakecoffman/cp"

// Obstacle is a static rectangle in screen space (see common.RectBB).
type Obstacle struct {
	Rect cp.BB
}

var ObstacleComponent = NewComponent[Obstacle]()
