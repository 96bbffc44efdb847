package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/common"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
	"github.com/milk9111/madzslay/ecs/entity"
)

const defaultProjectileMargin = 20.0

// Shoot launches a projectile from origin toward target at speed. Nothing is
// fired when origin and target coincide.
func Shoot(w *ecs.World, origin, target cp.Vector, speed, damage, radius float64, faction component.Faction) (ecs.Entity, bool) {
	dir, _, ok := common.Direction(origin, target)
	if !ok || speed <= 0 {
		return 0, false
	}
	e, err := entity.NewProjectile(w, origin, dir.Mult(speed), radius, damage, faction)
	if err != nil {
		return 0, false
	}
	return e, true
}

// ProjectileSystem advances projectiles, removes those past the playfield
// margin and resolves hits against the opposing faction.
type ProjectileSystem struct {
	Margin float64
}

func NewProjectileSystem(margin float64) *ProjectileSystem {
	if margin <= 0 {
		margin = defaultProjectileMargin
	}
	return &ProjectileSystem{Margin: margin}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	s.Step(w)
}

type hostileTarget struct {
	entity    ecs.Entity
	transform *component.Transform
	health    *component.Health
}

// Step runs one projectile pass and returns the kills it credited.
func (s *ProjectileSystem) Step(w *ecs.World) int {
	if s == nil || w == nil {
		return 0
	}
	width, height := w.Playfield()

	var hostiles []hostileTarget
	ecs.ForEach3(w, component.HostileComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, _ *component.Hostile, t *component.Transform, h *component.Health) {
		hostiles = append(hostiles, hostileTarget{entity: e, transform: t, health: h})
	})
	player, havePlayer := findPlayer(w)

	kills := 0
	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, t *component.Transform) {
		if p.Spent {
			ecs.DestroyEntity(w, e)
			return
		}
		t.Pos = t.Pos.Add(p.Vel)
		if common.OutsideBounds(t.Pos, width, height, s.Margin) {
			ecs.DestroyEntity(w, e)
			return
		}

		switch p.Faction {
		case component.FactionPlayer:
			for _, h := range hostiles {
				if !h.health.IsAlive() || !ecs.IsAlive(w, h.entity) {
					continue
				}
				if !common.CirclesOverlap(t.Pos, t.Radius, h.transform.Pos, h.transform.Radius) {
					continue
				}
				kills += hitHostile(w, h.entity, p.Damage)
				p.Spent = true
				break
			}
		case component.FactionHostile:
			if havePlayer && player.health.IsAlive() &&
				common.CirclesOverlap(t.Pos, t.Radius, player.transform.Pos, player.transform.Radius) {
				hitPlayer(w, p.Damage)
				p.Spent = true
			}
		}

		if p.Spent {
			ecs.DestroyEntity(w, e)
		}
	})
	return kills
}
