// Copyright (c) 2026, The Oak Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"reflect"
	"sync"
)

// Shared is a thread-safe wrapper around one [Registry]. A single
// reader/writer lock guards the whole registry: mutating operations
// hold the write lock for their full duration, queries hold the read
// lock, so mutations are totally ordered and a [Shared.Destroy] is
// never observed half done.
//
// Operations that need the Registry-level generic helpers, or that
// compose several calls that must be atomic with respect to other
// goroutines, go through [Shared.WithRead] or [Shared.WithWrite].
type Shared struct {
	mu  sync.RWMutex
	reg Registry
}

// NewShared returns a thread-safe registry wrapping a new empty
// [Registry].
func NewShared() *Shared {
	return &Shared{}
}

// RegisterType implements [Registrar]. Most callers should use the
// typed [Register] instead.
func (s *Shared) RegisterType(t reflect.Type) ObjectID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.RegisterType(t)
}

// Destroy removes the object and every descendant from the registry.
// See [Registry.Destroy].
func (s *Shared) Destroy(id ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Destroy(id)
}

// Contains reports whether the given identifier resolves to a live
// object.
func (s *Shared) Contains(id ObjectID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Contains(id)
}

// ObjectCount returns the number of live objects.
func (s *Shared) ObjectCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.ObjectCount()
}

// SetParent makes the object a child of the given parent. See
// [Registry.SetParent].
func (s *Shared) SetParent(id, parent ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.SetParent(id, parent)
}

// Parent returns the parent of the object, or the nil identifier for
// root objects.
func (s *Shared) Parent(id ObjectID) (ObjectID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Parent(id)
}

// Children returns a copy of the object's children in z-order.
func (s *Shared) Children(id ObjectID) ([]ObjectID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Children(id)
}

// Siblings returns all children of the object's parent except the
// object itself.
func (s *Shared) Siblings(id ObjectID) ([]ObjectID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Siblings(id)
}

// SiblingIndex returns the object's index among its siblings, or -1
// for root objects.
func (s *Shared) SiblingIndex(id ObjectID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.SiblingIndex(id)
}

// NextSibling returns the sibling after this object in z-order.
func (s *Shared) NextSibling(id ObjectID) (ObjectID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.NextSibling(id)
}

// PreviousSibling returns the sibling before this object in z-order.
func (s *Shared) PreviousSibling(id ObjectID) (ObjectID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.PreviousSibling(id)
}

// Ancestors returns the object's parent chain, nearest first.
func (s *Shared) Ancestors(id ObjectID) ([]ObjectID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Ancestors(id)
}

// RootObjects returns all objects with no parent.
func (s *Shared) RootObjects() []ObjectID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.RootObjects()
}

// Raise moves the object to the front of its siblings' z-order.
func (s *Shared) Raise(id ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Raise(id)
}

// Lower moves the object to the back of its siblings' z-order.
func (s *Shared) Lower(id ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Lower(id)
}

// StackUnder moves the object immediately behind the given sibling.
func (s *Shared) StackUnder(id, sibling ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.StackUnder(id, sibling)
}

// StackAbove moves the object immediately in front of the given
// sibling.
func (s *Shared) StackAbove(id, sibling ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.StackAbove(id, sibling)
}

// DepthFirstPreorder returns the subtree in depth-first pre-order.
func (s *Shared) DepthFirstPreorder(root ObjectID) ([]ObjectID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.DepthFirstPreorder(root)
}

// DepthFirstPostorder returns the subtree in depth-first post-order.
func (s *Shared) DepthFirstPostorder(root ObjectID) ([]ObjectID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.DepthFirstPostorder(root)
}

// BreadthFirst returns the subtree level by level.
func (s *Shared) BreadthFirst(root ObjectID) ([]ObjectID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.BreadthFirst(root)
}

// ObjectName returns the object's name.
func (s *Shared) ObjectName(id ObjectID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.ObjectName(id)
}

// SetObjectName sets the object's name.
func (s *Shared) SetObjectName(id ObjectID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.SetObjectName(id, name)
}

// Type returns the type the object was registered with.
func (s *Shared) Type(id ObjectID) (reflect.Type, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Type(id)
}

// TypeName returns the human-readable name of the object's type.
func (s *Shared) TypeName(id ObjectID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.TypeName(id)
}

// FindChildByName returns the first direct child with the given name.
func (s *Shared) FindChildByName(id ObjectID, name string) (ObjectID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.FindChildByName(id, name)
}

// FindDescendantsByName returns every descendant with the given name.
func (s *Shared) FindDescendantsByName(id ObjectID, name string) ([]ObjectID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.FindDescendantsByName(id, name)
}

// SetProperty sets the given property to the given value.
func (s *Shared) SetProperty(id ObjectID, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.SetProperty(id, key, value)
}

// Property returns the property value for the given key.
func (s *Shared) Property(id ObjectID, key string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Property(id, key)
}

// RemoveProperty removes the property with the given key and returns
// the removed value.
func (s *Shared) RemoveProperty(id ObjectID, key string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.RemoveProperty(id, key)
}

// PropertyNames returns the object's property keys in sorted order.
func (s *Shared) PropertyNames(id ObjectID) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.PropertyNames(id)
}

// InitWidgetState sets the object's own widget state.
func (s *Shared) InitWidgetState(id ObjectID, state WidgetState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.InitWidgetState(id, state)
}

// SetWidgetVisible sets the object's own visible flag.
func (s *Shared) SetWidgetVisible(id ObjectID, visible bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.SetWidgetVisible(id, visible)
}

// SetWidgetEnabled sets the object's own enabled flag.
func (s *Shared) SetWidgetEnabled(id ObjectID, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.SetWidgetEnabled(id, enabled)
}

// WidgetStateOf returns a copy of the object's own widget state.
func (s *Shared) WidgetStateOf(id ObjectID) (*WidgetState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.WidgetStateOf(id)
}

// EffectivelyVisible reports the object's visibility combined with all
// stateful ancestors. See [Registry.EffectivelyVisible].
func (s *Shared) EffectivelyVisible(id ObjectID) (visible, ok bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.EffectivelyVisible(id)
}

// EffectivelyEnabled reports the object's enabled state combined with
// all stateful ancestors. See [Registry.EffectivelyEnabled].
func (s *Shared) EffectivelyEnabled(id ObjectID) (enabled, ok bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.EffectivelyEnabled(id)
}

// DumpTree returns an indented text rendering of the subtree.
func (s *Shared) DumpTree(id ObjectID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.DumpTree(id)
}

// WithRead runs the given function with the read lock held, for
// composite queries that must see one consistent state, and for the
// Registry-level generic helpers such as [FindChild] and
// [PropertyValue]. The function must not retain the registry or
// mutate it.
func (s *Shared) WithRead(f func(r *Registry)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f(&s.reg)
}

// WithWrite runs the given function with the write lock held, for
// read-then-write sequences that must be atomic with respect to other
// goroutines. The function must not retain the registry.
func (s *Shared) WithWrite(f func(r *Registry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(&s.reg)
}
