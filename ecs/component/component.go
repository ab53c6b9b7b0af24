// Package component declares the data grid entities carry: positions,
// factions, movement and attack budgets, path followers and dig jobs.
package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a world's stores. Ids are handed out process-wide
// starting at 1.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind identifies the store holding values of type T. Two kinds of
// the same T are distinct stores.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func NewComponentKind[T any]() ComponentKind[T] {
	var zero T
	return ComponentKind[T]{
		id:   ComponentID(lastComponentID.Add(1)),
		name: fmt.Sprintf("%T", zero),
	}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// String names the kind by its Go type and id, e.g. "component.GridPosition#3".
func (k ComponentKind[T]) String() string {
	if !k.Valid() {
		return "unregistered"
	}
	return fmt.Sprintf("%s#%d", k.name, k.id)
}

// ComponentHandle is what the component files export; systems reach the
// store through Kind.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
