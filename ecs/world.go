package ecs

import "github.com/milk9111/madzslay/ecs/component"

// World owns entities, their component stores and the per-run resources
// shared by systems (playfield bounds, kill counter, player intent).
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	events   EventQueue

	width  float64
	height float64

	kills        int
	attackTarget Entity
}

// NewWorld creates an empty world. Call SetPlayfield before running systems.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

func (w *World) store(id component.ComponentID, create bool) *sparseSet {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*sparseSet)
		}
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

// CreateEntity allocates a new live entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires its handle. It
// returns false when e was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	if w.attackTarget == e {
		w.attackTarget = 0
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is still live.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
