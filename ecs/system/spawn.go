package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/common"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/entity"
	"github.com/milk9111/madzslay/prefabs"
)

// Edge is a playfield side a regular hostile enters from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// SpawnDirector creates hostiles: one regular enemy every Interval ticks at a
// random edge, and each boss once when the kill count first reaches its
// milestone.
type SpawnDirector struct {
	tuning  *prefabs.TuningSpec
	rng     common.Rand
	counter int
	fired   []bool
	bosses  map[string]bool
}

func NewSpawnDirector(tuning *prefabs.TuningSpec, rng common.Rand) *SpawnDirector {
	d := &SpawnDirector{
		tuning: tuning,
		rng:    rng,
		bosses: map[string]bool{},
	}
	if tuning != nil {
		d.fired = make([]bool, len(tuning.Milestones))
	}
	return d
}

// Fired reports whether milestone i has spawned its boss.
func (d *SpawnDirector) Fired(i int) bool {
	if d == nil || i < 0 || i >= len(d.fired) {
		return false
	}
	return d.fired[i]
}

func (d *SpawnDirector) Update(w *ecs.World) {
	if d == nil || w == nil || d.tuning == nil {
		return
	}

	d.counter++
	if d.counter > d.tuning.Spawn.Interval && len(d.tuning.Spawn.Types) > 0 && d.rng != nil {
		d.counter = 0
		typ := d.tuning.Spawn.Types[d.rng.IntN(len(d.tuning.Spawn.Types))]
		d.spawnAtEdge(w, typ, Edge(d.rng.IntN(4)))
	}

	d.checkMilestones(w)
}

func (d *SpawnDirector) checkMilestones(w *ecs.World) {
	kills := w.Kills()
	for i, m := range d.tuning.Milestones {
		if d.fired[i] || kills < m.Kills {
			continue
		}
		d.fired[i] = true
		if d.bosses[m.Boss] {
			continue
		}
		d.bosses[m.Boss] = true
		d.spawnBoss(w, m)
	}
}

func (d *SpawnDirector) spawnAtEdge(w *ecs.World, typ string, edge Edge) {
	spec, _, err := d.tuning.Hostile(typ)
	if err != nil {
		log.Printf("spawn: %v", err)
		return
	}
	pos := d.edgePoint(w, edge, spec.Size)
	e, err := entity.NewHostile(w, d.tuning, typ, pos)
	if err != nil {
		log.Printf("spawn: %s: %v", typ, err)
		return
	}
	w.Events().Push(ecs.Event{Type: ecs.EventHostileSpawned, Data: ecs.SpawnEvent{Entity: e, Type: typ}})
}

// edgePoint picks a random point on edge pushed outward by size so the
// hostile starts just off screen.
func (d *SpawnDirector) edgePoint(w *ecs.World, edge Edge, size float64) cp.Vector {
	width, height := w.Playfield()
	switch edge {
	case EdgeTop:
		return cp.Vector{X: d.rng.Float64() * width, Y: -size}
	case EdgeBottom:
		return cp.Vector{X: d.rng.Float64() * width, Y: height + size}
	case EdgeLeft:
		return cp.Vector{X: -size, Y: d.rng.Float64() * height}
	default:
		return cp.Vector{X: width + size, Y: d.rng.Float64() * height}
	}
}

func (d *SpawnDirector) spawnBoss(w *ecs.World, m prefabs.MilestoneSpec) {
	spec, _, err := d.tuning.Hostile(m.Boss)
	if err != nil {
		log.Printf("spawn: milestone %d: %v", m.Kills, err)
		return
	}
	width, _ := w.Playfield()
	e, err := entity.NewHostile(w, d.tuning, m.Boss, cp.Vector{X: width / 2, Y: -2 * spec.Size})
	if err != nil {
		log.Printf("spawn: boss %s: %v", m.Boss, err)
		return
	}
	log.Printf("spawn: boss %s at %d kills", m.Boss, w.Kills())
	w.Events().Push(ecs.Event{Type: ecs.EventBossSpawned, Data: ecs.SpawnEvent{Entity: e, Type: m.Boss, Threshold: m.Kills}})
}
