package ecs

import "github.com/gh-fork-dump/RigelEngine/ecs/component"

// Add attaches v to e, replacing any previous value of the same kind.
// Components are stored by pointer so systems mutate them in place.
func Add[T any](w *World, e Entity, h component.Handle[T], v *T) bool {
	if w == nil || !w.IsAlive(e) || v == nil {
		return false
	}
	w.table(h.ID()).Set(e, v)
	return true
}

// Get returns the component of kind h attached to e.
func Get[T any](w *World, e Entity, h component.Handle[T]) (*T, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	v := w.table(h.ID()).Get(e)
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether e carries a component of kind h.
func Has[T any](w *World, e Entity, h component.Handle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.table(h.ID()).Has(e)
}

// Remove detaches the component of kind h from e.
func Remove[T any](w *World, e Entity, h component.Handle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.table(h.ID()).Remove(e)
}

// ForEach calls fn for every live entity carrying a component of kind h.
// The entity list is snapshotted first, so fn may add or destroy entities.
func ForEach[T any](w *World, h component.Handle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	entities := append([]Entity(nil), w.table(h.ID()).Entities()...)
	for _, e := range entities {
		if v, ok := Get(w, e, h); ok {
			fn(e, v)
		}
	}
}

// First returns some entity carrying a component of kind h.
func First[T any](w *World, h component.Handle[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	for _, e := range w.table(h.ID()).Entities() {
		if w.IsAlive(e) {
			return e, true
		}
	}
	return 0, false
}
