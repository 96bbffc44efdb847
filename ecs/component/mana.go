package component

// Mana is the player's ability resource.
type Mana struct {
	Max     float64
	Current float64
	Regen   float64
}

var ManaComponent = NewComponent[Mana]()

// Spend debits cost if enough mana is available. It returns false and leaves
// the pool untouched otherwise.
func (m *Mana) Spend(cost float64) bool {
	if m == nil || cost < 0 || m.Current < cost {
		return false
	}
	m.Current -= cost
	return true
}

// Regenerate adds one tick of regen, capped at Max.
func (m *Mana) Regenerate() {
	if m == nil || m.Regen <= 0 {
		return
	}
	m.Current += m.Regen
	if m.Current > m.Max {
		m.Current = m.Max
	}
}
