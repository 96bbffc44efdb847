package component

import "github.com/jakecoffman/cp"

type Faction int

const (
	FactionPlayer Faction = iota
	FactionHostile
)

func (f Faction) String() string {
	if f == FactionHostile {
		return "hostile"
	}
	return "player"
}

// Projectile moves by Vel every tick and hits at most once.
type Projectile struct {
	Vel     cp.Vector
	Damage  float64
	Faction Faction
	Spent   bool
}

var ProjectileComponent = NewComponent[Projectile]()
