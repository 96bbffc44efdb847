package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
	"github.com/milk9111/madzslay/ecs/entity"
	"github.com/milk9111/madzslay/prefabs"
	"github.com/stretchr/testify/require"
)

// fixedRand always draws the same values.
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) IntN(n int) int { return r.i % n }

type fixture struct {
	w      *ecs.World
	tuning *prefabs.TuningSpec
	player ecs.Entity
}

func newFixture(t *testing.T, character string) fixture {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	require.NoError(t, err)

	w := ecs.NewWorld()
	w.SetPlayfield(tuning.Playfield.Width, tuning.Playfield.Height)
	player, err := entity.NewPlayer(w, tuning, character)
	require.NoError(t, err)
	return fixture{w: w, tuning: tuning, player: player}
}

func (f fixture) playerPos(t *testing.T) cp.Vector {
	t.Helper()
	tr, ok := ecs.Get(f.w, f.player, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr.Pos
}

func (f fixture) spawn(t *testing.T, typ string, pos cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.NewHostile(f.w, f.tuning, typ, pos)
	require.NoError(t, err)
	return e
}

func (f fixture) health(t *testing.T, e ecs.Entity) *component.Health {
	t.Helper()
	h, ok := ecs.Get(f.w, e, component.HealthComponent.Kind())
	require.True(t, ok)
	return h
}

func countBosses(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.HostileComponent.Kind(), func(_ ecs.Entity, h *component.Hostile) {
		if h.Boss {
			n++
		}
	})
	return n
}

func countProjectiles(w *ecs.World, faction component.Faction) int {
	n := 0
	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(_ ecs.Entity, p *component.Projectile) {
		if p.Faction == faction {
			n++
		}
	})
	return n
}
