package component

// AbilityEffect is a growing circle left behind by a cast. Damage is applied
// every tick to live hostiles inside Radius; markers have zero Damage.
type AbilityEffect struct {
	Radius    float64
	Growth    float64
	Damage    float64
	Remaining int
	Tag       string
}

var AbilityEffectComponent = NewComponent[AbilityEffect]()
