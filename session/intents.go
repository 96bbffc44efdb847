package session

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
)

func (s *Session) playing() bool {
	return s != nil && s.world != nil && s.life.State() == StatePlaying
}

func (s *Session) playerComponent() (*component.Player, bool) {
	return ecs.Get(s.world, s.player, component.PlayerComponent.Kind())
}

// SetMoveTarget starts or redirects movement toward (x, y) and drops any
// attack target.
func (s *Session) SetMoveTarget(x, y float64) {
	if !s.playing() {
		return
	}
	p, ok := s.playerComponent()
	if !ok {
		return
	}
	p.MoveTarget = &cp.Vector{X: x, Y: y}
	s.world.SetAttackTarget(0)
}

// SetAttackTarget starts auto-attacking e and stops movement. It returns
// false, changing nothing, when e is not a live hostile.
func (s *Session) SetAttackTarget(e ecs.Entity) bool {
	if !s.playing() {
		return false
	}
	if !ecs.Has(s.world, e, component.HostileComponent.Kind()) {
		return false
	}
	p, ok := s.playerComponent()
	if !ok {
		return false
	}
	p.MoveTarget = nil
	s.world.SetAttackTarget(e)
	return true
}

// ClearIntent stops moving and attacking.
func (s *Session) ClearIntent() {
	if s == nil || s.world == nil {
		return
	}
	if p, ok := s.playerComponent(); ok {
		p.MoveTarget = nil
	}
	s.world.SetAttackTarget(0)
}

// CastAbility attempts slot aimed at (x, y) and returns the kills it credited.
func (s *Session) CastAbility(slot component.Slot, x, y float64) int {
	if !s.playing() {
		return 0
	}
	return s.abilities.Cast(s.world, slot, cp.Vector{X: x, Y: y})
}

// CastAbilityKey is CastAbility keyed by "q", "w", "e" or "r". Unknown keys
// are a no-op.
func (s *Session) CastAbilityKey(key string, x, y float64) int {
	slot, ok := component.ParseSlot(key)
	if !ok {
		return 0
	}
	return s.CastAbility(slot, x, y)
}

// SetHover records the pointer position for aim feedback.
func (s *Session) SetHover(x, y float64) {
	if s == nil || s.world == nil {
		return
	}
	if p, ok := s.playerComponent(); ok {
		p.Hover = cp.Vector{X: x, Y: y}
	}
}

// PickHostile returns the live hostile whose collision circle contains
// (x, y), preferring the closest center.
func (s *Session) PickHostile(x, y float64) (ecs.Entity, bool) {
	if s == nil || s.world == nil {
		return 0, false
	}
	point := cp.Vector{X: x, Y: y}
	var (
		best  ecs.Entity
		found bool
		bestD float64
	)
	ecs.ForEach3(s.world, component.HostileComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, _ *component.Hostile, t *component.Transform, h *component.Health) {
		if !h.IsAlive() {
			return
		}
		d := t.Pos.Distance(point)
		if d > t.Radius {
			return
		}
		if !found || d < bestD {
			best, bestD, found = e, d, true
		}
	})
	return best, found
}

// AttackTarget returns the live hostile being auto-attacked.
func (s *Session) AttackTarget() (ecs.Entity, bool) {
	if s == nil {
		return 0, false
	}
	return s.world.AttackTarget()
}
