package component

// Pet is the optional companion that trails the player and takes random
// potshots.
type Pet struct {
	Speed          float64
	FollowDistance float64

	Cooldown       int
	CooldownFrames int
	FireChance     float64
	ShotSpeed      float64
	ShotDamage     float64
	ShotRadius     float64
}

var PetComponent = NewComponent[Pet]()
