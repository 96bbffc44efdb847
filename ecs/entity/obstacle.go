package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/common"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
	"github.com/milk9111/madzslay/prefabs"
)

func NewObstacle(w *ecs.World, rect cp.BB) (ecs.Entity, error) {
	b := newBuilder(w, "obstacle")
	attach(b, "obstacle", component.ObstacleComponent.Kind(), &component.Obstacle{Rect: rect})
	return b.finish()
}

// NewObstacleField scatters spec.Count rectangles over the playfield, keeping
// the circle (clear, clearRadius) free. Placement gives up on a rectangle
// after spec.Attempts misses, so the field may come out smaller.
func NewObstacleField(w *ecs.World, spec prefabs.ObstacleFieldSpec, rng common.Rand, clear cp.Vector, clearRadius float64) ([]ecs.Entity, error) {
	if spec.Count <= 0 || spec.Width <= 0 || spec.Height <= 0 || rng == nil {
		return nil, nil
	}
	attempts := spec.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	width, height := w.Playfield()
	maxX := width - spec.Width
	maxY := height - spec.Height
	if maxX < 0 || maxY < 0 {
		return nil, fmt.Errorf("obstacle: %vx%v does not fit the playfield", spec.Width, spec.Height)
	}

	placed := make([]cp.BB, 0, spec.Count)
	entities := make([]ecs.Entity, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		for try := 0; try < attempts; try++ {
			rect := common.RectBB(rng.Float64()*maxX, rng.Float64()*maxY, spec.Width, spec.Height)
			if common.CircleIntersectsBB(clear, clearRadius, rect) || overlapsAny(rect, placed) {
				continue
			}
			e, err := NewObstacle(w, rect)
			if err != nil {
				return entities, err
			}
			placed = append(placed, rect)
			entities = append(entities, e)
			break
		}
	}
	return entities, nil
}

func overlapsAny(rect cp.BB, others []cp.BB) bool {
	for _, o := range others {
		if rect.Intersects(o) {
			return true
		}
	}
	return false
}
