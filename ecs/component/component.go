// Package component declares the component types attached to entities and
// the typed handles used to address their storage.
package component

import "sync/atomic"

// ID identifies a component storage table inside a world.
type ID uint32

var nextID atomic.Uint32

// Handle is a typed key for one component kind. Handles are created once at
// package init via New and shared by every world.
type Handle[T any] struct {
	id ID
}

// New allocates a fresh component id for type T.
func New[T any]() Handle[T] {
	return Handle[T]{id: ID(nextID.Add(1))}
}

func (h Handle[T]) ID() ID {
	return h.id
}

func (h Handle[T]) Valid() bool {
	return h.id != 0
}
