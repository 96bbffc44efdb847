package component

import "image/color"

type AttackKind string

const (
	AttackMelee  AttackKind = "melee"
	AttackRanged AttackKind = "ranged"
)

// AttackProfile describes how a hostile hurts the player. Melee hostiles use
// only Damage, applied every tick of contact.
type AttackProfile struct {
	Kind             AttackKind
	Damage           float64
	Range            float64
	CooldownFrames   int
	Remaining        int
	ProjectileSpeed  float64
	ProjectileRadius float64
}

// Hostile marks an enemy or boss.
type Hostile struct {
	Type   string
	Boss   bool
	Attack AttackProfile

	// AnimFrames is re-armed on every boss shot. Presentation only.
	AnimFrames    int
	AnimRemaining int

	// Script names a tengo attack policy that replaces the ranged default.
	Script string
	// KillBonus extra kills are credited when this hostile dies.
	KillBonus int

	Tint color.Color
}

var HostileComponent = NewComponent[Hostile]()
