// Package ecs is a small sparse-set entity/component store with an ordered
// system scheduler. It is a building block: gameplay semantics live in the
// systems and in the ingame orchestrator, not here.
package ecs

import "github.com/gh-fork-dump/RigelEngine/ecs/component"

// World owns entities and their component tables.
type World struct {
	nextID entityID
	gens   []generation
	alive  []bool
	free   []entityID

	tables map[component.ID]*SparseSet
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{tables: make(map[component.ID]*SparseSet)}
}

// CreateEntity allocates a new entity handle.
func (w *World) CreateEntity() Entity {
	var id entityID
	if len(w.free) > 0 {
		id = w.free[len(w.free)-1]
		w.free = w.free[:len(w.free)-1]
	} else {
		w.nextID++
		id = w.nextID
		w.gens = append(w.gens, 0)
		w.alive = append(w.alive, false)
	}
	w.alive[id-1] = true
	return makeEntity(id, w.gens[id-1])
}

// DestroyEntity invalidates e and drops all of its components. Returns false
// for stale or unknown handles.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	for _, table := range w.tables {
		table.Remove(e)
	}
	idx := e.id() - 1
	w.gens[idx]++
	w.alive[idx] = false
	w.free = append(w.free, e.id())
	return true
}

// IsAlive reports whether e is a currently valid handle.
func (w *World) IsAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(w.gens) {
		return false
	}
	return w.alive[id-1] && w.gens[id-1] == e.generation()
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	n := 0
	for _, a := range w.alive {
		if a {
			n++
		}
	}
	return n
}

// Reset destroys every entity and clears all component tables. Entity ids are
// recycled from scratch, so handles from before the reset are all stale.
func (w *World) Reset() {
	w.nextID = 0
	w.gens = w.gens[:0]
	w.alive = w.alive[:0]
	w.free = w.free[:0]
	w.tables = make(map[component.ID]*SparseSet)
}

func (w *World) table(id component.ID) *SparseSet {
	t, ok := w.tables[id]
	if !ok {
		t = &SparseSet{}
		w.tables[id] = t
	}
	return t
}
