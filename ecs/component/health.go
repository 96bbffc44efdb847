package component

// Health is shared by the player and hostiles.
//
// Credited latches the first time Current is observed at zero. Once set no
// further damage is applied, which is what makes kill credit at-most-once
// across melee, projectiles and area effects.
type Health struct {
	Max      float64
	Current  float64
	Credited bool
}

var HealthComponent = NewComponent[Health]()

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity still has health.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// ApplyDamage subtracts amount and clamps at zero. It returns true only on
// the call that first takes the health to zero; calls on an already-dead
// target change nothing and return false.
func (h *Health) ApplyDamage(amount float64) bool {
	if h == nil || h.Credited || h.Current <= 0 {
		return false
	}
	if amount > 0 {
		h.Current -= amount
	}
	if h.Current > 0 {
		return false
	}
	h.Current = 0
	h.Credited = true
	return true
}

// Heal restores health up to Max.
func (h *Health) Heal(amount float64) {
	if h == nil || h.Current <= 0 || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}
