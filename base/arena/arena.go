// Copyright (c) 2026, The Oak Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arena implements a generational-index arena: a slot-based
// store whose handles stay unique for the life of the store. Removing
// a value bumps the slot's generation, so a handle issued for a prior
// occupant of the slot never resolves again, even after the slot is
// reused. This is the standard way to get stable, aliasing-proof
// identifiers without reference counting.
package arena

import (
	"fmt"
	"iter"
)

// ID is a stable handle for a value in an [Arena]. It is comparable,
// usable as a map key, and cheap to copy. The zero value is [Nil],
// which never resolves in any arena.
type ID struct {
	index      uint32
	generation uint32
}

// Nil is the zero ID. It never resolves.
var Nil = ID{}

// IsNil reports whether this is the zero ID.
func (id ID) IsNil() bool {
	return id == Nil
}

// Index returns the slot index of this ID.
func (id ID) Index() uint32 {
	return id.index
}

// Generation returns the generation tag of this ID.
func (id ID) Generation() uint32 {
	return id.generation
}

// Uint64 packs the ID into a single integer, with the slot index in
// the high 32 bits, for interop with systems that pass raw handles
// around. [IDFromUint64] round-trips it exactly. A round-tripped ID
// carries no validity guarantee on its own; only a successful arena
// lookup establishes that.
func (id ID) Uint64() uint64 {
	return uint64(id.index)<<32 | uint64(id.generation)
}

// IDFromUint64 unpacks an ID previously packed with [ID.Uint64].
func IDFromUint64(u uint64) ID {
	return ID{index: uint32(u >> 32), generation: uint32(u)}
}

// String returns the ID as "index v generation", e.g. "3v1",
// or "nil" for the zero ID.
func (id ID) String() string {
	if id.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("%dv%d", id.index, id.generation)
}

// slot holds one value and the generation that the current occupant
// was inserted under. Generations start at 1 so that the zero ID can
// never match a live slot.
type slot[T any] struct {
	value      T
	generation uint32
	live       bool
}

// Arena is a slot-based store of values of type T, indexed by [ID].
// The zero value is an empty arena ready to use. An Arena is not safe
// for concurrent use.
//
// A slot's generation is bumped every time its value is removed, so
// each slot supports 2^32-1 reuses before a stale handle could alias;
// that bound is accepted rather than tracked.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// Insert adds the given value and returns a fresh ID for it.
// It always succeeds.
func (a *Arena[T]) Insert(value T) ID {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.value = value
		s.live = true
		a.count++
		return ID{index: idx, generation: s.generation}
	}
	a.slots = append(a.slots, slot[T]{value: value, generation: 1, live: true})
	a.count++
	return ID{index: uint32(len(a.slots) - 1), generation: 1}
}

// slot returns the live slot for the given ID, or nil if the ID is
// stale, out of range, or nil.
func (a *Arena[T]) slot(id ID) *slot[T] {
	if id.IsNil() || int(id.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[id.index]
	if !s.live || s.generation != id.generation {
		return nil
	}
	return s
}

// Get returns a pointer to the value for the given ID, or false if the
// ID does not resolve. The pointer is valid until the next Insert.
func (a *Arena[T]) Get(id ID) (*T, bool) {
	s := a.slot(id)
	if s == nil {
		return nil, false
	}
	return &s.value, true
}

// Contains reports whether the given ID resolves to a live value.
func (a *Arena[T]) Contains(id ID) bool {
	return a.slot(id) != nil
}

// Remove frees the value for the given ID and reports whether anything
// was removed. Removing an ID that does not resolve, including one
// already removed, is a no-op returning false. After Remove, the ID
// never resolves again.
func (a *Arena[T]) Remove(id ID) bool {
	s := a.slot(id)
	if s == nil {
		return false
	}
	var zero T
	s.value = zero
	s.live = false
	s.generation++
	a.free = append(a.free, id.index)
	a.count--
	return true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.count
}

// All returns an iterator over all live values in slot order.
// The arena must not be mutated during iteration.
func (a *Arena[T]) All() iter.Seq2[ID, *T] {
	return func(yield func(ID, *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.live {
				continue
			}
			if !yield(ID{index: uint32(i), generation: s.generation}, &s.value) {
				return
			}
		}
	}
}
