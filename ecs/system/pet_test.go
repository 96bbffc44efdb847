package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
	"github.com/milk9111/madzslay/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetFollowsAndFires(t *testing.T) {
	f := newFixture(t, "warrior")
	pos := f.playerPos(t)
	pet, err := entity.NewPet(f.w, f.tuning.Pet, pos.Add(cp.Vector{X: -100}))
	require.NoError(t, err)

	// Float64 of 0 is below any positive fire chance.
	NewPetSystem(fixedRand{f: 0}).Update(f.w)

	tr, ok := ecs.Get(f.w, pet, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, pos.X-100+f.tuning.Pet.Speed, tr.Pos.X, 1e-9)
	assert.Equal(t, 1, countProjectiles(f.w, component.FactionPlayer))

	p, _ := ecs.Get(f.w, pet, component.PetComponent.Kind())
	assert.Equal(t, f.tuning.Pet.Cooldown, p.Cooldown)
}

func TestPetHoldsInsideFollowDistance(t *testing.T) {
	f := newFixture(t, "warrior")
	pos := f.playerPos(t)
	start := pos.Add(cp.Vector{X: -10})
	pet, err := entity.NewPet(f.w, f.tuning.Pet, start)
	require.NoError(t, err)

	NewPetSystem(fixedRand{f: 0.99}).Update(f.w)

	tr, _ := ecs.Get(f.w, pet, component.TransformComponent.Kind())
	assert.Equal(t, start, tr.Pos)
	assert.Equal(t, 0, countProjectiles(f.w, component.FactionPlayer))
}
