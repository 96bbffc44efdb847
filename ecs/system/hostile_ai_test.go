package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hostileOf(t *testing.T, f fixture, e ecs.Entity) *component.Hostile {
	t.Helper()
	h, ok := ecs.Get(f.w, e, component.HostileComponent.Kind())
	require.True(t, ok)
	return h
}

func TestHostilePursuesPlayer(t *testing.T) {
	f := newFixture(t, "warrior")
	e := f.spawn(t, "octopus", cp.Vector{X: 100, Y: 360})

	NewHostileAISystem().Update(f.w)

	tr, _ := ecs.Get(f.w, e, component.TransformComponent.Kind())
	assert.InDelta(t, 101.6, tr.Pos.X, 1e-9)
	assert.True(t, tr.FacingRight)
}

func TestMeleeContactDamage(t *testing.T) {
	f := newFixture(t, "warrior")
	f.spawn(t, "octopus", f.playerPos(t).Add(cp.Vector{X: 10}))
	ai := NewHostileAISystem()

	ai.Update(f.w)
	ai.Update(f.w)

	assert.InDelta(t, 29.0, f.health(t, f.player).Current, 1e-9)
}

func TestRangedCooldown(t *testing.T) {
	f := newFixture(t, "warrior")
	e := f.spawn(t, "jellyfish", f.playerPos(t).Add(cp.Vector{X: 150}))
	ai := NewHostileAISystem()

	ai.Update(f.w)
	assert.Equal(t, 1, countProjectiles(f.w, component.FactionHostile))
	assert.Equal(t, 90, hostileOf(t, f, e).Attack.Remaining)

	ai.Update(f.w)
	assert.Equal(t, 1, countProjectiles(f.w, component.FactionHostile))
	assert.Equal(t, 89, hostileOf(t, f, e).Attack.Remaining)
}

func TestRangedOutOfRangeHoldsFire(t *testing.T) {
	f := newFixture(t, "warrior")
	f.spawn(t, "jellyfish", f.playerPos(t).Add(cp.Vector{X: 400}))

	NewHostileAISystem().Update(f.w)

	assert.Equal(t, 0, countProjectiles(f.w, component.FactionHostile))
}

func TestBossShotArmsAnimation(t *testing.T) {
	f := newFixture(t, "warrior")
	e := f.spawn(t, "jellyfishBoss", f.playerPos(t).Add(cp.Vector{Y: -200}))
	ai := NewHostileAISystem()

	ai.Update(f.w)
	h := hostileOf(t, f, e)
	assert.Equal(t, 10, h.AnimRemaining)

	ai.Update(f.w)
	assert.Equal(t, 9, h.AnimRemaining)
}

func TestScriptedBossFiresRing(t *testing.T) {
	f := newFixture(t, "warrior")
	e := f.spawn(t, "crystalBoss", f.playerPos(t).Add(cp.Vector{X: 200}))
	ai := NewHostileAISystem()

	ai.Update(f.w)
	h := hostileOf(t, f, e)
	require.Equal(t, "crystal_boss.tengo", h.Script, "script should not have fallen back")
	assert.Equal(t, 8, countProjectiles(f.w, component.FactionHostile))
	assert.Equal(t, 120, h.Attack.Remaining)
	assert.Equal(t, 10, h.AnimRemaining)

	ai.Update(f.w)
	assert.Equal(t, 8, countProjectiles(f.w, component.FactionHostile))
}

func TestBrokenScriptFallsBackToDefault(t *testing.T) {
	f := newFixture(t, "warrior")
	e := f.spawn(t, "crystalBoss", f.playerPos(t).Add(cp.Vector{X: 200}))
	h := hostileOf(t, f, e)
	h.Script = "does_not_exist.tengo"

	NewHostileAISystem().Update(f.w)

	assert.Empty(t, h.Script)
	assert.Equal(t, 1, countProjectiles(f.w, component.FactionHostile))
}

func TestHostilesIdleWhenPlayerDead(t *testing.T) {
	f := newFixture(t, "warrior")
	e := f.spawn(t, "octopus", cp.Vector{X: 100, Y: 360})
	f.health(t, f.player).ApplyDamage(100)

	NewHostileAISystem().Update(f.w)

	tr, _ := ecs.Get(f.w, e, component.TransformComponent.Kind())
	assert.Equal(t, 100.0, tr.Pos.X)
}
