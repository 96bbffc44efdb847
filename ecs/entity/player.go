package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
	"github.com/milk9111/madzslay/prefabs"
)

// NewPlayer creates the player for character at the playfield center.
func NewPlayer(w *ecs.World, tuning *prefabs.TuningSpec, character string) (ecs.Entity, error) {
	if tuning == nil {
		return 0, fmt.Errorf("player: nil tuning")
	}
	spec, err := tuning.Character(character)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	table := tuning.Abilities[character]

	ledger := &component.AbilityLedger{}
	for slot := component.SlotQ; slot < component.SlotCount; slot++ {
		ab, ok := table[slot.String()]
		if !ok {
			return 0, fmt.Errorf("player: %s has no %s ability", character, slot)
		}
		ledger.Max[slot] = ab.Cooldown
		ledger.Cost[slot] = ab.Cost
	}

	b := newBuilder(w, "player")

	width, height := w.Playfield()
	attach(b, "transform", component.TransformComponent.Kind(), &component.Transform{
		Pos:         cp.Vector{X: width / 2, Y: height / 2},
		Radius:      tuning.Player.Radius,
		FacingRight: true,
	})

	attach(b, "mover", component.MoverComponent.Kind(), &component.Mover{Speed: spec.Speed})

	attach(b, "health", component.HealthComponent.Kind(), component.NewHealth(spec.Health))

	attach(b, "mana", component.ManaComponent.Kind(), &component.Mana{
		Max:     spec.Mana,
		Current: spec.Mana,
		Regen:   spec.Regen,
	})

	attach(b, "player", component.PlayerComponent.Kind(), &component.Player{
		Character:  character,
		ShotFrames: tuning.Player.ShotFrames,
		ShotSpeed:  tuning.Player.ShotSpeed,
		ShotDamage: tuning.Player.ShotDamage,
		ShotRadius: tuning.Player.ShotRadius,
	})

	attach(b, "ability ledger", component.AbilityLedgerComponent.Kind(), ledger)

	return b.finish()
}
