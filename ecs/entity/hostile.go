package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
	"github.com/milk9111/madzslay/prefabs"
)

var defaultHostileTint = color.NRGBA{R: 0xcc, G: 0x33, B: 0x33, A: 0xff}

// NewHostile creates an enemy or boss of type typ at pos.
func NewHostile(w *ecs.World, tuning *prefabs.TuningSpec, typ string, pos cp.Vector) (ecs.Entity, error) {
	if tuning == nil {
		return 0, fmt.Errorf("hostile: nil tuning")
	}
	spec, boss, err := tuning.Hostile(typ)
	if err != nil {
		return 0, fmt.Errorf("hostile: %w", err)
	}

	b := newBuilder(w, "hostile")

	attach(b, "transform", component.TransformComponent.Kind(), &component.Transform{
		Pos:    pos,
		Radius: spec.Size,
	})

	attach(b, "mover", component.MoverComponent.Kind(), &component.Mover{
		Speed:           spec.Speed,
		IgnoreObstacles: spec.IgnoreObstacles,
	})

	attach(b, "health", component.HealthComponent.Kind(), component.NewHealth(spec.Health))

	hostile := &component.Hostile{
		Type: typ,
		Boss: boss,
		Attack: component.AttackProfile{
			Kind:             component.AttackKind(spec.Attack),
			Damage:           spec.Damage,
			Range:            spec.Range,
			CooldownFrames:   spec.Cooldown,
			ProjectileSpeed:  spec.ProjectileSpeed,
			ProjectileRadius: spec.ProjectileSize,
		},
		AnimFrames: spec.AttackAnim,
		Script:     spec.Script,
		KillBonus:  spec.KillBonus,
		Tint:       spec.Color.Or(defaultHostileTint),
	}
	attach(b, "hostile", component.HostileComponent.Kind(), hostile)

	return b.finish()
}
