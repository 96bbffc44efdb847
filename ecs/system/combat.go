package system

import (
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
)

// ApplyHit is the one damage rule shared by melee contact, projectiles and
// area effects. It reports whether this hit is the one that killed the
// target; that is true for at most one call per target.
func ApplyHit(h *component.Health, damage float64) bool {
	return h.ApplyDamage(damage)
}

// hitHostile damages a hostile and, on the killing hit, credits the kill,
// pays out any boss bonus and removes the hostile from the world. It returns
// the kills credited (0 or 1; the bonus is not a kill).
func hitHostile(w *ecs.World, e ecs.Entity, damage float64) int {
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return 0
	}
	if !ApplyHit(health, damage) {
		return 0
	}

	hostile, _ := ecs.Get(w, e, component.HostileComponent.Kind())
	w.CreditKills(1)
	evt := ecs.KillEvent{Entity: e}
	if hostile != nil {
		evt.Type = hostile.Type
		evt.Boss = hostile.Boss
		w.CreditKills(hostile.KillBonus)
	}
	w.Events().Push(ecs.Event{Type: ecs.EventKill, Data: evt})
	ecs.DestroyEntity(w, e)
	return 1
}

// hitPlayer damages the player. Player deaths are not kills; the session
// notices them after the update pass.
func hitPlayer(w *ecs.World, damage float64) {
	p, ok := findPlayer(w)
	if !ok {
		return
	}
	ApplyHit(p.health, damage)
}
