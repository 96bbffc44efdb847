package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
)

func NewProjectile(w *ecs.World, pos, vel cp.Vector, radius, damage float64, faction component.Faction) (ecs.Entity, error) {
	b := newBuilder(w, "projectile")

	attach(b, "transform", component.TransformComponent.Kind(), &component.Transform{
		Pos:         pos,
		Radius:      radius,
		FacingRight: vel.X >= 0,
	})

	attach(b, "projectile", component.ProjectileComponent.Kind(), &component.Projectile{
		Vel:     vel,
		Damage:  damage,
		Faction: faction,
	})

	return b.finish()
}
