package system

import (
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
)

// AbilityCooldownSystem moves every ability slot one tick toward ready,
// whether or not anything was cast this tick.
type AbilityCooldownSystem struct{}

func NewAbilityCooldownSystem() *AbilityCooldownSystem {
	return &AbilityCooldownSystem{}
}

func (s *AbilityCooldownSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.AbilityLedgerComponent.Kind(), func(_ ecs.Entity, ledger *component.AbilityLedger) {
		ledger.Tick()
	})
}
