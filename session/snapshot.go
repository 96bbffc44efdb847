package session

import "github.com/milk9111/madzslay/ecs/component"

// Snapshot is the per-tick state handed to presentation.
type Snapshot struct {
	RunID     string
	Character string

	Health    float64
	MaxHealth float64
	Mana      float64
	MaxMana   float64

	Kills          int
	ElapsedSeconds float64

	CooldownRemaining [component.SlotCount]int
	MaxCooldown       [component.SlotCount]int

	Lifecycle         State
	DeathFadeProgress float64

	Hostiles    int
	Projectiles int
}

// CooldownFraction is the remaining share of slot's cooldown in [0,1].
func (s Snapshot) CooldownFraction(slot component.Slot) float64 {
	if !slot.Valid() || s.MaxCooldown[slot] <= 0 {
		return 0
	}
	return float64(s.CooldownRemaining[slot]) / float64(s.MaxCooldown[slot])
}
