package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/common"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
	"github.com/milk9111/madzslay/ecs/entity"
	"github.com/milk9111/madzslay/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAbilities(t *testing.T, f fixture, character string) *AbilitySystem {
	t.Helper()
	s, err := NewAbilitySystem(f.tuning, character)
	require.NoError(t, err)
	return s
}

func playerState(t *testing.T, f fixture) (*component.Mana, *component.AbilityLedger) {
	t.Helper()
	mana, ok := ecs.Get(f.w, f.player, component.ManaComponent.Kind())
	require.True(t, ok)
	ledger, ok := ecs.Get(f.w, f.player, component.AbilityLedgerComponent.Kind())
	require.True(t, ok)
	return mana, ledger
}

func TestNewAbilitySystemUnknownCharacter(t *testing.T) {
	f := newFixture(t, "warrior")
	_, err := NewAbilitySystem(f.tuning, "bard")
	require.Error(t, err)
}

func TestWarriorDashScenario(t *testing.T) {
	f := newFixture(t, "warrior")
	abilities := newAbilities(t, f, "warrior")
	mana, ledger := playerState(t, f)

	kills := abilities.Cast(f.w, component.SlotQ, cp.Vector{X: 700, Y: 360})

	assert.Equal(t, 0, kills)
	assert.Equal(t, 80.0, mana.Current)
	assert.Equal(t, 60, ledger.Remaining[component.SlotQ])
	assert.InDelta(t, 760.0, f.playerPos(t).X, 1e-9)
	assert.Equal(t, 1, ecs.Count(f.w, component.AbilityEffectComponent.Kind()))

	// second cast while cooling down is ignored
	abilities.Cast(f.w, component.SlotQ, cp.Vector{X: 900, Y: 360})
	assert.Equal(t, 80.0, mana.Current)
	assert.Equal(t, 60, ledger.Remaining[component.SlotQ])

	cooldown := NewAbilityCooldownSystem()
	for i := 0; i < 60; i++ {
		cooldown.Update(f.w)
	}
	assert.True(t, ledger.Ready(component.SlotQ))
}

func TestCastRejections(t *testing.T) {
	cases := []struct {
		name string
		slot component.Slot
		mana float64
	}{
		{"insufficient_mana", component.SlotW, 10},
		{"invalid_slot", component.Slot(7), 100},
		{"negative_slot", component.Slot(-1), 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t, "warrior")
			abilities := newAbilities(t, f, "warrior")
			mana, ledger := playerState(t, f)
			mana.Current = c.mana

			assert.Equal(t, 0, abilities.Cast(f.w, c.slot, cp.Vector{X: 0, Y: 0}))
			assert.Equal(t, c.mana, mana.Current)
			assert.Equal(t, [component.SlotCount]int{}, ledger.Remaining)
			assert.Equal(t, 0, f.w.Events().Len())
		})
	}
}

func TestWhirlwindDamagesImmediatelyAndEachTick(t *testing.T) {
	f := newFixture(t, "warrior")
	abilities := newAbilities(t, f, "warrior")
	pos := f.playerPos(t)

	var targets []ecs.Entity
	for _, off := range []cp.Vector{{X: 60}, {X: -60}, {Y: 60}} {
		targets = append(targets, f.spawn(t, "jellyfish", pos.Add(off)))
	}
	far := f.spawn(t, "jellyfish", pos.Add(cp.Vector{X: 300}))

	assert.Equal(t, 0, abilities.Cast(f.w, component.SlotW, pos))
	for _, e := range targets {
		assert.Equal(t, 5.0, f.health(t, e).Current)
	}

	assert.Equal(t, 3, NewAbilityEffectSystem().Step(f.w))
	assert.Equal(t, 3, f.w.Kills())
	assert.Equal(t, 20.0, f.health(t, far).Current)
}

func TestUltimateCrossesMilestoneOnce(t *testing.T) {
	f := newFixture(t, "warrior")
	abilities := newAbilities(t, f, "warrior")
	director := NewSpawnDirector(f.tuning, fixedRand{f: 0.5})
	pos := f.playerPos(t)

	f.w.CreditKills(8)
	for _, off := range []cp.Vector{{X: 20}, {X: -20}, {Y: 20}, {Y: -20}} {
		f.spawn(t, "jellyfish", pos.Add(off))
	}

	abilities.Cast(f.w, component.SlotR, pos)
	assert.Equal(t, 4, NewAbilityEffectSystem().Step(f.w))
	assert.Equal(t, 12, f.w.Kills())

	director.Update(f.w)
	director.Update(f.w)
	assert.Equal(t, 1, countBosses(f.w))
	assert.True(t, director.Fired(0))
	assert.False(t, director.Fired(1))
}

func TestSecondWindHealsToMax(t *testing.T) {
	f := newFixture(t, "warrior")
	abilities := newAbilities(t, f, "warrior")
	health := f.health(t, f.player)
	health.Current = 5

	abilities.Cast(f.w, component.SlotE, f.playerPos(t))
	assert.Equal(t, 25.0, health.Current)

	health.Current = 29
	_, ledger := playerState(t, f)
	ledger.Remaining[component.SlotE] = 0
	abilities.Cast(f.w, component.SlotE, f.playerPos(t))
	assert.Equal(t, 30.0, health.Current)
}

func TestShockwaveKnocksBack(t *testing.T) {
	f := newFixture(t, "tank")
	abilities := newAbilities(t, f, "tank")
	pos := f.playerPos(t)
	octo := f.spawn(t, "octopus", pos.Add(cp.Vector{X: 100}))

	abilities.Cast(f.w, component.SlotQ, pos)

	tr, ok := ecs.Get(f.w, octo, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, pos.X+150, tr.Pos.X, 1e-9)
	assert.Equal(t, 40.0, f.health(t, octo).Current, "shockwave damages on effect ticks, not on cast")
}

func TestTauntSlowsHostiles(t *testing.T) {
	f := newFixture(t, "tank")
	abilities := newAbilities(t, f, "tank")
	octo := f.spawn(t, "octopus", cp.Vector{X: 100, Y: 100})

	abilities.Cast(f.w, component.SlotW, f.playerPos(t))

	m, ok := ecs.Get(f.w, octo, component.MoverComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, 0.8, m.Speed, 1e-9)
}

func TestShadowStep(t *testing.T) {
	f := newFixture(t, "assassin")
	abilities := newAbilities(t, f, "assassin")
	_, ledger := playerState(t, f)

	abilities.Cast(f.w, component.SlotQ, cp.Vector{X: 300, Y: 200})
	assert.Equal(t, cp.Vector{X: 300, Y: 200}, f.playerPos(t))

	_, err := entity.NewObstacle(f.w, common.RectBB(480, 480, 64, 64))
	require.NoError(t, err)
	ledger.Remaining[component.SlotQ] = 0

	abilities.Cast(f.w, component.SlotQ, cp.Vector{X: 500, Y: 500})
	assert.Equal(t, cp.Vector{X: 300, Y: 200}, f.playerPos(t), "teleport into an obstacle is refused")
}

func TestThrowingKnife(t *testing.T) {
	f := newFixture(t, "assassin")
	abilities := newAbilities(t, f, "assassin")

	abilities.Cast(f.w, component.SlotW, cp.Vector{X: 1000, Y: 360})

	assert.Equal(t, 1, countProjectiles(f.w, component.FactionPlayer))
	assert.Equal(t, 1, ecs.Count(f.w, component.AbilityEffectComponent.Kind()))
}

func TestEffectGrowsAndExpires(t *testing.T) {
	f := newFixture(t, "warrior")
	e, err := entity.NewAbilityEffect(f.w, cp.Vector{X: 10, Y: 10}, component.AbilityEffect{Radius: 10, Growth: 2, Remaining: 3})
	require.NoError(t, err)
	sys := NewAbilityEffectSystem()

	sys.Step(f.w)
	fx, ok := ecs.Get(f.w, e, component.AbilityEffectComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 12.0, fx.Radius)

	sys.Step(f.w)
	sys.Step(f.w)
	assert.False(t, ecs.IsAlive(f.w, e))
}

func TestSpawnEffectReportsFailure(t *testing.T) {
	f := newFixture(t, "warrior")
	s := newAbilities(t, f, "warrior")
	fx := prefabs.EffectSpec{Kind: prefabs.EffectMarker, Radius: 20, Tag: "mark"}

	assert.False(t, s.spawnEffect(nil, cp.Vector{}, fx, 1))

	require.True(t, s.spawnEffect(f.w, cp.Vector{X: 5, Y: 5}, fx, 1))
	assert.Equal(t, 1, ecs.Count(f.w, component.AbilityEffectComponent.Kind()))
}
