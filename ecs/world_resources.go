package ecs

// SetPlayfield sets the playfield size. The playfield spans [0,width] x
// [0,height].
func (w *World) SetPlayfield(width, height float64) {
	if w == nil {
		return
	}
	w.width = width
	w.height = height
}

func (w *World) Playfield() (width, height float64) {
	if w == nil {
		return 0, 0
	}
	return w.width, w.height
}

// CreditKills adds n to the run's kill counter. Only the combat path calls it.
func (w *World) CreditKills(n int) {
	if w == nil || n <= 0 {
		return
	}
	w.kills += n
}

func (w *World) Kills() int {
	if w == nil {
		return 0
	}
	return w.kills
}

// SetAttackTarget records the hostile the player auto-attacks. A zero entity
// clears it.
func (w *World) SetAttackTarget(e Entity) {
	if w == nil {
		return
	}
	w.attackTarget = e
}

// AttackTarget returns the current attack target if it is still alive.
func (w *World) AttackTarget() (Entity, bool) {
	if w == nil || !w.attackTarget.Valid() || !w.entities.isAlive(w.attackTarget) {
		return 0, false
	}
	return w.attackTarget, true
}
