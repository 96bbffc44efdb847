package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
)

func NewAbilityEffect(w *ecs.World, pos cp.Vector, fx component.AbilityEffect) (ecs.Entity, error) {
	b := newBuilder(w, "effect")
	attach(b, "transform", component.TransformComponent.Kind(), &component.Transform{
		Pos:    pos,
		Radius: fx.Radius,
	})
	attach(b, "effect", component.AbilityEffectComponent.Kind(), &fx)
	return b.finish()
}
