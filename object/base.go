// Copyright (c) 2026, The Oak Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"errors"
	"log/slog"

	"github.com/oakui/oak/base/arena"
)

// Object is the interface satisfied by all concrete object types. A
// type participates in the object tree by embedding [ObjectBase],
// which provides the registration and the identifier.
type Object interface {

	// ObjectID returns this object's identifier in the registry.
	ObjectID() ObjectID
}

// As returns the given object as concrete type T, like a checked
// downcast. It reports false if the object is not a T.
func As[T Object](obj Object) (T, bool) {
	t, ok := obj.(T)
	return t, ok
}

// ObjectBase handles registration in the process-wide registry and
// carries the resulting identifier. Embed it in concrete object types:
//
//	type Button struct {
//		object.ObjectBase
//		label string
//	}
//
//	func NewButton() *Button {
//		return &Button{ObjectBase: object.NewObjectBase[*Button]()}
//	}
//
// The accessors are best-effort conveniences over the global registry;
// code that needs to handle failures uses the registry directly.
type ObjectBase struct {
	id     ObjectID
	closed bool
}

// NewObjectBase registers a new object of type T in the process-wide
// registry and returns its base. It panics if [Init] has not been
// called.
func NewObjectBase[T Object]() ObjectBase {
	return ObjectBase{id: Register[T](MustGlobal())}
}

// ObjectID returns this object's identifier, implementing [Object].
func (b *ObjectBase) ObjectID() ObjectID {
	return b.id
}

// Name returns the object's name from the registry, or an empty string
// if the object is gone or the registry is not initialized.
func (b *ObjectBase) Name() string {
	g, err := Global()
	if err != nil {
		return ""
	}
	name, _ := g.ObjectName(b.id)
	return name
}

// SetName sets the object's name in the registry, logging instead of
// failing.
func (b *ObjectBase) SetName(name string) {
	g, err := Global()
	if err == nil {
		err = g.SetObjectName(b.id, name)
	}
	if err != nil {
		slog.Error("object.ObjectBase.SetName", "id", b.id, "name", name, "err", err)
	}
}

// Parent returns the parent's identifier, or the nil identifier if the
// object is a root, gone, or the registry is not initialized.
func (b *ObjectBase) Parent() ObjectID {
	g, err := Global()
	if err != nil {
		return arena.Nil
	}
	parent, _ := g.Parent(b.id)
	return parent
}

// SetParent makes this object a child of the given parent. See
// [Registry.SetParent].
func (b *ObjectBase) SetParent(parent ObjectID) error {
	g, err := Global()
	if err != nil {
		return err
	}
	return g.SetParent(b.id, parent)
}

// Children returns the object's children, or nil if the object is gone
// or the registry is not initialized.
func (b *ObjectBase) Children() []ObjectID {
	g, err := Global()
	if err != nil {
		return nil
	}
	children, _ := g.Children(b.id)
	return children
}

// FindChildByName returns the first direct child with the given name,
// or the nil identifier if there is none.
func (b *ObjectBase) FindChildByName(name string) ObjectID {
	g, err := Global()
	if err != nil {
		return arena.Nil
	}
	child, _ := g.FindChildByName(b.id, name)
	return child
}

// SetProperty sets a dynamic property on this object.
func (b *ObjectBase) SetProperty(key string, value any) error {
	g, err := Global()
	if err != nil {
		return err
	}
	return g.SetProperty(b.id, key, value)
}

// Close destroys this object and its entire subtree in the registry.
// Only the first call does anything; it returns nil if the object was
// already destroyed through an ancestor's cascade. Concrete types own
// their objects' lifetimes: whoever creates an object calls Close
// exactly once, directly or via defer.
func (b *ObjectBase) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	g, err := Global()
	if err != nil {
		return err
	}
	if err := g.Destroy(b.id); err != nil && !errors.Is(err, ErrInvalidObjectID) {
		return err
	}
	return nil
}
