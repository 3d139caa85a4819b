// Copyright (c) 2026, The Oak Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package object provides the core object system for Oak: a registry
// that assigns every live object a stable identifier, tracks exclusive
// parent/child ownership, and guarantees that destroying an object
// destroys its entire subtree.
//
// Objects are created with [Register] and referenced everywhere by
// [ObjectID]. The registry owns every record; callers only ever hold
// identifiers, so all mutation goes through the registry and stale
// identifiers simply stop resolving. The order of an object's children
// is its z-order: index 0 is the back and the last index is the front.
//
// [Registry] itself is single-threaded. [Shared] wraps one in a
// reader/writer lock for concurrent use, and [Init]/[Global] manage
// the process-wide instance that the [ObjectBase] helpers resolve.
package object

import (
	"reflect"
	"slices"

	"github.com/oakui/oak/base/arena"
)

// ObjectID is a stable, copyable handle for an object in a [Registry].
// It remains valid as the tree changes around the object and stops
// resolving when the object is destroyed. The zero value is the nil
// identifier, which also stands for "no parent" in [Registry.SetParent]
// and [Registry.Parent].
type ObjectID = arena.ID

// objectData is the registry record for one live object.
type objectData struct {
	name       string
	typ        reflect.Type
	typeName   string
	parent     ObjectID // nil for root objects
	children   []ObjectID
	properties map[string]any
	state      *WidgetState

	// index is the last known index in the parent's children list,
	// used as a search hint; see siblingIndex.
	index int
}

// Registry is the central store of all objects and their ownership
// relations. The zero value is ready to use. A Registry is not safe
// for concurrent use; see [Shared].
type Registry struct {
	objects arena.Arena[objectData]
}

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Registrar is the part of the registry that allocates new objects.
// It is implemented by both [Registry] and [Shared], so the generic
// [Register] works with either.
type Registrar interface {

	// RegisterType allocates a new unparented, unnamed object tagged
	// with the given type and returns its identifier.
	RegisterType(t reflect.Type) ObjectID
}

// Register allocates a new object tagged with type T and returns its
// identifier. The new object has no parent, no name, and no
// properties. It never fails.
func Register[T any](in Registrar) ObjectID {
	return in.RegisterType(reflect.TypeFor[T]())
}

// RegisterType implements [Registrar]. Most callers should use the
// typed [Register] instead.
func (r *Registry) RegisterType(t reflect.Type) ObjectID {
	return r.objects.Insert(objectData{
		typ:      t,
		typeName: typeName(t),
		index:    -1,
	})
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// Contains reports whether the given identifier resolves to a live
// object.
func (r *Registry) Contains(id ObjectID) bool {
	return r.objects.Contains(id)
}

// ObjectCount returns the number of live objects.
func (r *Registry) ObjectCount() int {
	return r.objects.Len()
}

// Destroy removes the object and every descendant from the registry,
// unlinking it from its parent's children first. Every identifier in
// the removed subtree stops resolving. If id does not resolve, it
// returns [ErrInvalidObjectID] and changes nothing; a cascade never
// happens partially.
func (r *Registry) Destroy(id ObjectID) error {
	d, ok := r.objects.Get(id)
	if !ok {
		return ErrInvalidObjectID
	}
	parent := d.parent

	// children before parents, matching teardown order
	var doomed []ObjectID
	r.collectDescendants(id, &doomed)

	if !parent.IsNil() {
		r.unlinkChild(parent, id)
	}
	for _, did := range doomed {
		r.objects.Remove(did)
	}
	r.objects.Remove(id)
	return nil
}

// collectDescendants appends every descendant of id to out in
// post-order, children before their parents.
func (r *Registry) collectDescendants(id ObjectID, out *[]ObjectID) {
	d, ok := r.objects.Get(id)
	if !ok {
		return
	}
	for _, c := range d.children {
		r.collectDescendants(c, out)
		*out = append(*out, c)
	}
}

// SetParent makes the object a child of the given parent, or a root
// object if parent is the nil identifier. The object is removed from
// its old parent's children (if any) and appended at the end of the
// new parent's children, making it front-most in z-order. The subtree
// under id is untouched.
//
// It returns [ErrInvalidObjectID] if id or a non-nil parent does not
// resolve, and [ErrCircularParentage] if parent is id itself or any
// current descendant of id. On error nothing changes.
func (r *Registry) SetParent(id, parent ObjectID) error {
	if !r.objects.Contains(id) {
		return ErrInvalidObjectID
	}
	if !parent.IsNil() {
		if !r.objects.Contains(parent) {
			return ErrInvalidObjectID
		}
		if r.isAncestorOf(id, parent) {
			return ErrCircularParentage
		}
	}
	d, _ := r.objects.Get(id)
	if !d.parent.IsNil() {
		r.unlinkChild(d.parent, id)
	}
	d.parent = parent
	d.index = -1
	if !parent.IsNil() {
		pd, _ := r.objects.Get(parent)
		d.index = len(pd.children)
		pd.children = append(pd.children, id)
	}
	return nil
}

// isAncestorOf reports whether candidate is id itself or appears on
// id's parent chain. It guards [Registry.SetParent] against cycles.
func (r *Registry) isAncestorOf(candidate, id ObjectID) bool {
	for cur := id; !cur.IsNil(); {
		if cur == candidate {
			return true
		}
		d, ok := r.objects.Get(cur)
		if !ok {
			return false
		}
		cur = d.parent
	}
	return false
}

// unlinkChild removes child from parent's children list.
func (r *Registry) unlinkChild(parent, child ObjectID) {
	pd, ok := r.objects.Get(parent)
	if !ok {
		return
	}
	cd, _ := r.objects.Get(child)
	idx := indexOfChild(pd, child, cd.index)
	if idx >= 0 {
		pd.children = slices.Delete(pd.children, idx, idx+1)
	}
}

// Parent returns the parent of the object, or the nil identifier for
// root objects.
func (r *Registry) Parent(id ObjectID) (ObjectID, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return arena.Nil, ErrInvalidObjectID
	}
	return d.parent, nil
}

// Children returns a copy of the object's children in z-order
// (index 0 = back, last = front).
func (r *Registry) Children(id ObjectID) ([]ObjectID, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return nil, ErrInvalidObjectID
	}
	return slices.Clone(d.children), nil
}

// RootObjects returns all objects with no parent, in registration slot
// order.
func (r *Registry) RootObjects() []ObjectID {
	var roots []ObjectID
	for id, d := range r.objects.All() {
		if d.parent.IsNil() {
			roots = append(roots, id)
		}
	}
	return roots
}

// ObjectName returns the object's name, which is empty by default and
// not required to be unique.
func (r *Registry) ObjectName(id ObjectID) (string, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return "", ErrInvalidObjectID
	}
	return d.name, nil
}

// SetObjectName sets the object's name.
func (r *Registry) SetObjectName(id ObjectID, name string) error {
	d, ok := r.objects.Get(id)
	if !ok {
		return ErrInvalidObjectID
	}
	d.name = name
	return nil
}

// Type returns the type the object was registered with.
func (r *Registry) Type(id ObjectID) (reflect.Type, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return nil, ErrInvalidObjectID
	}
	return d.typ, nil
}

// TypeName returns the human-readable name of the type the object was
// registered with, for diagnostics.
func (r *Registry) TypeName(id ObjectID) (string, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return "", ErrInvalidObjectID
	}
	return d.typeName, nil
}

// FindChildByName returns the first direct child with the given name,
// or the nil identifier if there is none.
func (r *Registry) FindChildByName(id ObjectID, name string) (ObjectID, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return arena.Nil, ErrInvalidObjectID
	}
	for _, c := range d.children {
		if cd, ok := r.objects.Get(c); ok && cd.name == name {
			return c, nil
		}
	}
	return arena.Nil, nil
}

// FindChild returns the first direct child of the object with the
// given name that was registered as type T, or the nil identifier if
// there is none.
func FindChild[T any](r *Registry, id ObjectID, name string) (ObjectID, error) {
	target := reflect.TypeFor[T]()
	d, ok := r.objects.Get(id)
	if !ok {
		return arena.Nil, ErrInvalidObjectID
	}
	for _, c := range d.children {
		if cd, ok := r.objects.Get(c); ok && cd.name == name && cd.typ == target {
			return c, nil
		}
	}
	return arena.Nil, nil
}

// FindChildrenByType returns all direct children of the object that
// were registered as type T, in z-order.
func FindChildrenByType[T any](r *Registry, id ObjectID) ([]ObjectID, error) {
	target := reflect.TypeFor[T]()
	d, ok := r.objects.Get(id)
	if !ok {
		return nil, ErrInvalidObjectID
	}
	var found []ObjectID
	for _, c := range d.children {
		if cd, ok := r.objects.Get(c); ok && cd.typ == target {
			found = append(found, c)
		}
	}
	return found, nil
}

// FindDescendantsByName returns every descendant of the object, at any
// depth, whose name matches exactly, in depth-first order.
func (r *Registry) FindDescendantsByName(id ObjectID, name string) ([]ObjectID, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return nil, ErrInvalidObjectID
	}
	var found []ObjectID
	r.findDescendantsByName(d, name, &found)
	return found, nil
}

func (r *Registry) findDescendantsByName(d *objectData, name string, found *[]ObjectID) {
	for _, c := range d.children {
		cd, ok := r.objects.Get(c)
		if !ok {
			continue
		}
		if cd.name == name {
			*found = append(*found, c)
		}
		r.findDescendantsByName(cd, name, found)
	}
}
