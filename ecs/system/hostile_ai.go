package system

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/common"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
)

// HostileAISystem runs pure pursuit plus the per-type attack policy for every
// hostile: melee contact damage, ranged shots on a cooldown, or a script.
type HostileAISystem struct {
	scripts *scriptCache
}

func NewHostileAISystem() *HostileAISystem {
	return &HostileAISystem{scripts: newScriptCache()}
}

// ReloadScripts drops compiled scripts so edited files are picked up on the
// next tick.
func (s *HostileAISystem) ReloadScripts() {
	if s == nil {
		return
	}
	s.scripts = newScriptCache()
}

func (s *HostileAISystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	p, ok := findPlayer(w)
	if !ok || !p.health.IsAlive() {
		return
	}
	obstacles := Obstacles(w)

	ecs.ForEach3(w, component.HostileComponent.Kind(), component.TransformComponent.Kind(), component.MoverComponent.Kind(), func(e ecs.Entity, h *component.Hostile, t *component.Transform, m *component.Mover) {
		if health, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && !health.IsAlive() {
			return
		}

		if m.IgnoreObstacles {
			Advance(t, m.Speed, p.transform.Pos, nil)
		} else {
			Advance(t, m.Speed, p.transform.Pos, obstacles)
		}
		t.FacingRight = p.transform.Pos.X-t.Pos.X >= 0

		if h.AnimRemaining > 0 {
			h.AnimRemaining--
		}

		switch h.Attack.Kind {
		case component.AttackMelee:
			if common.CirclesOverlap(t.Pos, t.Radius, p.transform.Pos, p.transform.Radius) {
				hitPlayer(w, h.Attack.Damage)
			}
		case component.AttackRanged:
			if h.Attack.Remaining > 0 {
				h.Attack.Remaining--
			}
			if h.Script != "" {
				err := s.scripts.run(w, e, h, t, p.transform.Pos)
				if err == nil {
					return
				}
				fmt.Printf("ai: entity=%s script %s error: %v\n", e, h.Script, err)
				h.Script = ""
			}
			rangedAttack(w, h, t, p.transform.Pos)
		}
	})
}

func rangedAttack(w *ecs.World, h *component.Hostile, t *component.Transform, target cp.Vector) {
	if h.Attack.Remaining > 0 || t.Pos.Distance(target) >= h.Attack.Range {
		return
	}
	if hostileShoot(w, h, t, target) {
		h.Attack.Remaining = h.Attack.CooldownFrames
	}
}

// hostileShoot fires one shot from h toward target and arms the boss attack
// animation.
func hostileShoot(w *ecs.World, h *component.Hostile, t *component.Transform, target cp.Vector) bool {
	if _, ok := Shoot(w, t.Pos, target, h.Attack.ProjectileSpeed, h.Attack.Damage, h.Attack.ProjectileRadius, component.FactionHostile); !ok {
		return false
	}
	if h.Boss {
		h.AnimRemaining = h.AnimFrames
	}
	return true
}
