package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
	"github.com/milk9111/madzslay/prefabs"
)

func NewPet(w *ecs.World, spec prefabs.PetSpec, pos cp.Vector) (ecs.Entity, error) {
	b := newBuilder(w, "pet")

	attach(b, "transform", component.TransformComponent.Kind(), &component.Transform{
		Pos:         pos,
		Radius:      spec.Radius,
		FacingRight: true,
	})

	attach(b, "pet", component.PetComponent.Kind(), &component.Pet{
		Speed:          spec.Speed,
		FollowDistance: spec.FollowDistance,
		CooldownFrames: spec.Cooldown,
		FireChance:     spec.FireChance,
		ShotSpeed:      spec.ShotSpeed,
		ShotDamage:     spec.ShotDamage,
		ShotRadius:     spec.ShotRadius,
	})

	return b.finish()
}
