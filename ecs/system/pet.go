package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/common"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
)

// PetSystem moves the companion after the player and lets it fire the odd
// random shot.
type PetSystem struct {
	rng common.Rand
}

func NewPetSystem(rng common.Rand) *PetSystem {
	return &PetSystem{rng: rng}
}

func (s *PetSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	p, ok := findPlayer(w)
	if !ok || !p.health.IsAlive() {
		return
	}

	ecs.ForEach2(w, component.PetComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pet *component.Pet, t *component.Transform) {
		if t.Pos.Distance(p.transform.Pos) > pet.FollowDistance {
			Advance(t, pet.Speed, p.transform.Pos, nil)
		}

		if pet.Cooldown > 0 {
			pet.Cooldown--
			return
		}
		if s.rng == nil || s.rng.Float64() >= pet.FireChance {
			return
		}
		angle := s.rng.Float64() * 2 * math.Pi
		aim := t.Pos.Add(cp.Vector{X: math.Cos(angle), Y: math.Sin(angle)})
		if _, fired := Shoot(w, t.Pos, aim, pet.ShotSpeed, pet.ShotDamage, pet.ShotRadius, component.FactionPlayer); fired {
			pet.Cooldown = pet.CooldownFrames
		}
	})
}
