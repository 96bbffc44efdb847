package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/common"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
)

// arriveDistance is how close a mover must be to its target to stop.
const arriveDistance = 1.0

// Advance steps t toward target by speed, never ending inside an obstacle.
//
// The full step is tried first. When it is blocked the horizontal and
// vertical parts are tried on their own and every unblocked axis is applied,
// so movers slide along walls and around corners. All checks use the mover's
// circle. The step is capped at the remaining distance. Advance reports
// whether the position changed.
func Advance(t *component.Transform, speed float64, target cp.Vector, obstacles []cp.BB) bool {
	if t == nil || speed <= 0 {
		return false
	}
	dir, dist, ok := common.Direction(t.Pos, target)
	if !ok || dist <= arriveDistance {
		return false
	}
	if speed > dist {
		speed = dist
	}
	step := dir.Mult(speed)
	t.FacingRight = step.X >= 0

	next := t.Pos.Add(step)
	if !circleBlocked(next, t.Radius, obstacles) {
		t.Pos = next
		return true
	}

	moved := false
	if step.X != 0 {
		x := cp.Vector{X: t.Pos.X + step.X, Y: t.Pos.Y}
		if !circleBlocked(x, t.Radius, obstacles) {
			t.Pos = x
			moved = true
		}
	}
	if step.Y != 0 {
		y := cp.Vector{X: t.Pos.X, Y: t.Pos.Y + step.Y}
		if !circleBlocked(y, t.Radius, obstacles) {
			t.Pos = y
			moved = true
		}
	}
	return moved
}

// Displace moves t by delta in radius-sized increments and stops at the last
// free position, so dashes and knockbacks cannot tunnel into obstacles.
func Displace(t *component.Transform, delta cp.Vector, obstacles []cp.BB) {
	if t == nil {
		return
	}
	dist := delta.Length()
	if dist <= 1e-9 {
		return
	}
	stride := t.Radius
	if stride <= 0 || stride > dist {
		stride = dist
	}
	dir := delta.Mult(1 / dist)
	for travelled := 0.0; travelled < dist; {
		step := stride
		if travelled+step > dist {
			step = dist - travelled
		}
		next := t.Pos.Add(dir.Mult(step))
		if circleBlocked(next, t.Radius, obstacles) {
			return
		}
		t.Pos = next
		travelled += step
	}
}

// Blocked reports whether a circle at pos overlaps any obstacle.
func Blocked(pos cp.Vector, radius float64, obstacles []cp.BB) bool {
	return circleBlocked(pos, radius, obstacles)
}

func circleBlocked(pos cp.Vector, radius float64, obstacles []cp.BB) bool {
	for _, bb := range obstacles {
		if common.CircleIntersectsBB(pos, radius, bb) {
			return true
		}
	}
	return false
}

// Obstacles collects the obstacle field of w.
func Obstacles(w *ecs.World) []cp.BB {
	var out []cp.BB
	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(_ ecs.Entity, o *component.Obstacle) {
		out = append(out, o.Rect)
	})
	return out
}

// clampToPlayfield keeps a circle center inside the playfield.
func clampToPlayfield(w *ecs.World, p cp.Vector, radius float64) cp.Vector {
	width, height := w.Playfield()
	if width <= 0 || height <= 0 {
		return p
	}
	return cp.Vector{
		X: common.Clamp(p.X, radius, width-radius),
		Y: common.Clamp(p.Y, radius, height-radius),
	}
}
