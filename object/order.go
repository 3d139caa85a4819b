// Copyright (c) 2026, The Oak Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"slices"

	"github.com/oakui/oak/base/arena"
	"github.com/oakui/oak/base/findfast"
)

// Sibling ordering. The order of a parent's children list is the
// z-order of its children: index 0 is the back and the last index is
// the front. Reordering operations permute the list but never add,
// remove, or duplicate entries.

// indexOfChild returns the index of child in pd's children list,
// searching bidirectionally from the given hint.
func indexOfChild(pd *objectData, child ObjectID, hint int) int {
	return findfast.FindFunc(pd.children, func(c ObjectID) bool { return c == child }, hint)
}

// siblingIndex returns the index of id in its parent's children list,
// or -1 if d has no parent. It does not write the cached hint, so it
// is safe under a read lock; the reordering operations refresh the
// cache themselves.
func (r *Registry) siblingIndex(d *objectData, id ObjectID) int {
	if d.parent.IsNil() {
		return -1
	}
	pd, ok := r.objects.Get(d.parent)
	if !ok {
		return -1
	}
	return indexOfChild(pd, id, d.index)
}

// SiblingIndex returns the object's index among its siblings, or -1
// for root objects.
func (r *Registry) SiblingIndex(id ObjectID) (int, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return 0, ErrInvalidObjectID
	}
	return r.siblingIndex(d, id), nil
}

// NextSibling returns the sibling after this object in z-order (closer
// to the front), or the nil identifier if this object is front-most or
// a root.
func (r *Registry) NextSibling(id ObjectID) (ObjectID, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return arena.Nil, ErrInvalidObjectID
	}
	idx := r.siblingIndex(d, id)
	if idx < 0 {
		return arena.Nil, nil
	}
	pd, _ := r.objects.Get(d.parent)
	if idx+1 >= len(pd.children) {
		return arena.Nil, nil
	}
	return pd.children[idx+1], nil
}

// PreviousSibling returns the sibling before this object in z-order
// (closer to the back), or the nil identifier if this object is
// back-most or a root.
func (r *Registry) PreviousSibling(id ObjectID) (ObjectID, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return arena.Nil, ErrInvalidObjectID
	}
	idx := r.siblingIndex(d, id)
	if idx <= 0 {
		return arena.Nil, nil
	}
	pd, _ := r.objects.Get(d.parent)
	return pd.children[idx-1], nil
}

// Siblings returns all children of the object's parent except the
// object itself, in z-order. Root objects have no siblings.
func (r *Registry) Siblings(id ObjectID) ([]ObjectID, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return nil, ErrInvalidObjectID
	}
	if d.parent.IsNil() {
		return nil, nil
	}
	pd, _ := r.objects.Get(d.parent)
	sibs := make([]ObjectID, 0, len(pd.children)-1)
	for _, c := range pd.children {
		if c != id {
			sibs = append(sibs, c)
		}
	}
	return sibs, nil
}

// Raise moves the object to the end of its parent's children list,
// making it front-most among its siblings. Raising a root object does
// nothing.
func (r *Registry) Raise(id ObjectID) error {
	d, ok := r.objects.Get(id)
	if !ok {
		return ErrInvalidObjectID
	}
	idx := r.siblingIndex(d, id)
	if idx < 0 {
		return nil
	}
	pd, _ := r.objects.Get(d.parent)
	pd.children = move(pd.children, idx, len(pd.children)-1)
	d.index = len(pd.children) - 1
	return nil
}

// Lower moves the object to the start of its parent's children list,
// making it back-most among its siblings. Lowering a root object does
// nothing.
func (r *Registry) Lower(id ObjectID) error {
	d, ok := r.objects.Get(id)
	if !ok {
		return ErrInvalidObjectID
	}
	idx := r.siblingIndex(d, id)
	if idx < 0 {
		return nil
	}
	pd, _ := r.objects.Get(d.parent)
	pd.children = move(pd.children, idx, 0)
	d.index = 0
	return nil
}

// StackUnder moves the object immediately before the given sibling in
// z-order, so it is painted just behind it. Both objects must resolve
// and share the same non-nil parent; otherwise it returns
// [ErrInvalidObjectID].
func (r *Registry) StackUnder(id, sibling ObjectID) error {
	return r.stack(id, sibling, 0)
}

// StackAbove moves the object immediately after the given sibling in
// z-order, so it is painted just in front of it. Both objects must
// resolve and share the same non-nil parent; otherwise it returns
// [ErrInvalidObjectID].
func (r *Registry) StackAbove(id, sibling ObjectID) error {
	return r.stack(id, sibling, 1)
}

func (r *Registry) stack(id, sibling ObjectID, offset int) error {
	d, ok := r.objects.Get(id)
	if !ok {
		return ErrInvalidObjectID
	}
	sd, ok := r.objects.Get(sibling)
	if !ok {
		return ErrInvalidObjectID
	}
	if d.parent.IsNil() || d.parent != sd.parent {
		return ErrInvalidObjectID
	}
	if id == sibling {
		return nil
	}
	pd, _ := r.objects.Get(d.parent)
	from := indexOfChild(pd, id, d.index)
	pd.children = slices.Delete(pd.children, from, from+1)
	at := indexOfChild(pd, sibling, sd.index) + offset
	pd.children = slices.Insert(pd.children, at, id)
	d.index = at
	return nil
}

// move moves the element of s at index from to index to, preserving
// the order of all other elements.
func move[E any](s []E, from, to int) []E {
	tmp := s[from]
	s = slices.Delete(s, from, from+1)
	return slices.Insert(s, to, tmp)
}
