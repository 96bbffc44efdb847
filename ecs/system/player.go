package system

import (
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
)

type playerRefs struct {
	entity    ecs.Entity
	player    *component.Player
	transform *component.Transform
	health    *component.Health
	mana      *component.Mana
	mover     *component.Mover
	ledger    *component.AbilityLedger
}

// findPlayer resolves the player singleton. ok is false when there is no
// player or it lacks a required component.
func findPlayer(w *ecs.World) (playerRefs, bool) {
	var refs playerRefs
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return refs, false
	}
	refs.entity = e
	refs.player, _ = ecs.Get(w, e, component.PlayerComponent.Kind())
	refs.transform, ok = ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return refs, false
	}
	refs.health, ok = ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return refs, false
	}
	refs.mana, _ = ecs.Get(w, e, component.ManaComponent.Kind())
	refs.mover, _ = ecs.Get(w, e, component.MoverComponent.Kind())
	refs.ledger, _ = ecs.Get(w, e, component.AbilityLedgerComponent.Kind())
	return refs, true
}

// PlayerControlSystem regenerates mana, walks the player toward its move
// target and fires basic shots at the attack target.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (s *PlayerControlSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	p, ok := findPlayer(w)
	if !ok || !p.health.IsAlive() {
		return
	}

	p.mana.Regenerate()

	if p.player.MoveTarget != nil && p.mover != nil {
		Advance(p.transform, p.mover.Speed, *p.player.MoveTarget, Obstacles(w))
	}

	if p.player.ShotCooldown > 0 {
		p.player.ShotCooldown--
	}
	target, ok := w.AttackTarget()
	if !ok || p.player.ShotCooldown > 0 {
		return
	}
	tt, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return
	}
	if _, fired := Shoot(w, p.transform.Pos, tt.Pos, p.player.ShotSpeed, p.player.ShotDamage, p.player.ShotRadius, component.FactionPlayer); fired {
		p.player.ShotCooldown = p.player.ShotFrames
		p.transform.FacingRight = tt.Pos.X >= p.transform.Pos.X
	}
}
