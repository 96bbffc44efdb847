package system

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/common"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
	"github.com/milk9111/madzslay/ecs/entity"
	"github.com/milk9111/madzslay/prefabs"
)

// AbilitySystem executes the four abilities of one character. Every ability
// is a list of effect steps read from the tuning table, so characters differ
// only in data.
type AbilitySystem struct {
	tuning *prefabs.TuningSpec
	table  [component.SlotCount]prefabs.AbilitySpec
}

func NewAbilitySystem(tuning *prefabs.TuningSpec, character string) (*AbilitySystem, error) {
	if tuning == nil {
		return nil, fmt.Errorf("ability: nil tuning")
	}
	if _, err := tuning.Character(character); err != nil {
		return nil, fmt.Errorf("ability: %w", err)
	}
	s := &AbilitySystem{tuning: tuning}
	for slot := component.SlotQ; slot < component.SlotCount; slot++ {
		ab, ok := tuning.Abilities[character][slot.String()]
		if !ok {
			return nil, fmt.Errorf("ability: %s has no %s ability", character, slot)
		}
		s.table[slot] = ab
	}
	return s, nil
}

// Ability returns the descriptor bound to slot.
func (s *AbilitySystem) Ability(slot component.Slot) (prefabs.AbilitySpec, bool) {
	if s == nil || !slot.Valid() {
		return prefabs.AbilitySpec{}, false
	}
	return s.table[slot], true
}

// Cast attempts slot aimed at aim. It is a silent no-op returning zero when
// the slot is unknown or cooling down, or when mana is short. Otherwise mana
// is debited, the cooldown armed and the effect steps run in order. Cast
// returns the kills credited by the cast itself.
func (s *AbilitySystem) Cast(w *ecs.World, slot component.Slot, aim cp.Vector) int {
	if s == nil || w == nil || !slot.Valid() {
		return 0
	}
	p, ok := findPlayer(w)
	if !ok || p.ledger == nil || p.mana == nil || !p.health.IsAlive() {
		return 0
	}
	if !p.ledger.Ready(slot) || p.mana.Current < p.ledger.Cost[slot] {
		return 0
	}
	if !p.mana.Spend(p.ledger.Cost[slot]) {
		return 0
	}
	p.ledger.Arm(slot)

	kills := 0
	for _, fx := range s.table[slot].Effects {
		kills += s.apply(w, p, fx, aim)
	}
	w.Events().Push(ecs.Event{Type: ecs.EventAbilityCast, Data: ecs.CastEvent{Slot: slot.String(), Kills: kills}})
	return kills
}

func (s *AbilitySystem) apply(w *ecs.World, p playerRefs, fx prefabs.EffectSpec, aim cp.Vector) int {
	switch fx.Kind {
	case prefabs.EffectDash:
		dir, _, ok := common.Direction(p.transform.Pos, aim)
		if !ok {
			return 0
		}
		Displace(p.transform, dir.Mult(fx.Distance), Obstacles(w))
		p.transform.Pos = clampToPlayfield(w, p.transform.Pos, p.transform.Radius)
		p.transform.FacingRight = dir.X >= 0
	case prefabs.EffectTeleport:
		dest := clampToPlayfield(w, aim, p.transform.Radius)
		if Blocked(dest, p.transform.Radius, Obstacles(w)) {
			return 0
		}
		p.transform.FacingRight = dest.X >= p.transform.Pos.X
		p.transform.Pos = dest
	case prefabs.EffectHeal:
		p.health.Heal(fx.Amount)
	case prefabs.EffectMarker:
		s.spawnEffect(w, s.anchor(p, fx, aim), fx, 0)
	case prefabs.EffectArea:
		center := s.anchor(p, fx, aim)
		kills := 0
		if fx.Immediate {
			kills = AreaDamage(w, center, fx.Radius, fx.Damage)
		}
		s.spawnEffect(w, center, fx, fx.Damage)
		return kills
	case prefabs.EffectSlow:
		ecs.ForEach2(w, component.HostileComponent.Kind(), component.MoverComponent.Kind(), func(_ ecs.Entity, _ *component.Hostile, m *component.Mover) {
			m.Speed *= fx.Factor
		})
	case prefabs.EffectKnockback:
		knockback(w, p.transform.Pos, fx.Radius, fx.Force)
	case prefabs.EffectProjectile:
		damage := fx.Damage
		if damage <= 0 {
			damage = p.player.ShotDamage
		}
		Shoot(w, p.transform.Pos, aim, fx.Speed, damage, p.player.ShotRadius, component.FactionPlayer)
	}
	return 0
}

func (s *AbilitySystem) anchor(p playerRefs, fx prefabs.EffectSpec, aim cp.Vector) cp.Vector {
	if fx.At == prefabs.AnchorAim {
		return aim
	}
	return p.transform.Pos
}

func (s *AbilitySystem) spawnEffect(w *ecs.World, pos cp.Vector, fx prefabs.EffectSpec, damage float64) bool {
	_, err := entity.NewAbilityEffect(w, pos, component.AbilityEffect{
		Radius:    fx.Radius,
		Growth:    s.tuning.EffectGrowth(fx),
		Damage:    damage,
		Remaining: s.tuning.EffectDuration(fx),
		Tag:       fx.Tag,
	})
	if err != nil {
		fmt.Printf("ability: spawn %s effect %q: %v\n", fx.Kind, fx.Tag, err)
		return false
	}
	return true
}

// AreaDamage hits every live hostile whose center lies inside the circle and
// returns the kills credited.
func AreaDamage(w *ecs.World, center cp.Vector, radius, damage float64) int {
	if damage <= 0 {
		return 0
	}
	kills := 0
	ecs.ForEach3(w, component.HostileComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, _ *component.Hostile, t *component.Transform, h *component.Health) {
		if !h.IsAlive() || center.Distance(t.Pos) >= radius {
			return
		}
		kills += hitHostile(w, e, damage)
	})
	return kills
}

func knockback(w *ecs.World, origin cp.Vector, radius, force float64) {
	if force <= 0 {
		return
	}
	obstacles := Obstacles(w)
	ecs.ForEach3(w, component.HostileComponent.Kind(), component.TransformComponent.Kind(), component.MoverComponent.Kind(), func(_ ecs.Entity, _ *component.Hostile, t *component.Transform, m *component.Mover) {
		dir, dist, ok := common.Direction(origin, t.Pos)
		if !ok || dist >= radius {
			return
		}
		if m.IgnoreObstacles {
			t.Pos = t.Pos.Add(dir.Mult(force))
			return
		}
		Displace(t, dir.Mult(force), obstacles)
	})
}

// AbilityEffectSystem ticks live area effects: damage, growth, expiry.
type AbilityEffectSystem struct{}

func NewAbilityEffectSystem() *AbilityEffectSystem {
	return &AbilityEffectSystem{}
}

func (s *AbilityEffectSystem) Update(w *ecs.World) {
	s.Step(w)
}

// Step runs one effect pass and returns the kills it credited.
func (s *AbilityEffectSystem) Step(w *ecs.World) int {
	if s == nil || w == nil {
		return 0
	}
	kills := 0
	ecs.ForEach2(w, component.AbilityEffectComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, fx *component.AbilityEffect, t *component.Transform) {
		if fx.Damage > 0 {
			kills += AreaDamage(w, t.Pos, fx.Radius, fx.Damage)
		}
		fx.Radius += fx.Growth
		t.Radius = fx.Radius
		fx.Remaining--
		if fx.Remaining <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
	return kills
}
