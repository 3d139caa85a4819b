// Copyright (c) 2026, The Oak Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Dynamic properties: an extensible key-value bag on every object, for
// attributes that are not worth a dedicated field on the object type.

// SetProperty sets the given property to the given value, silently
// replacing any prior value for that key regardless of its type.
func (r *Registry) SetProperty(id ObjectID, key string, value any) error {
	d, ok := r.objects.Get(id)
	if !ok {
		return ErrInvalidObjectID
	}
	if d.properties == nil {
		d.properties = map[string]any{}
	}
	d.properties[key] = value
	return nil
}

// Property returns the property value for the given key, or nil if the
// key has no value.
func (r *Registry) Property(id ObjectID, key string) (any, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return nil, ErrInvalidObjectID
	}
	return d.properties[key], nil
}

// PropertyValue returns the property value for the given key as type
// T. It reports false when the identifier does not resolve, the key
// has no value, or the stored value is not a T. Use [PropertyOf] to
// tell those cases apart.
func PropertyValue[T any](r *Registry, id ObjectID, key string) (T, bool) {
	v, err := PropertyOf[T](r, id, key)
	return v, err == nil
}

// PropertyOf returns the property value for the given key as type T,
// reporting exactly why a lookup failed: [ErrInvalidObjectID],
// [ErrPropertyNotFound], or a [TypeMismatchError].
func PropertyOf[T any](r *Registry, id ObjectID, key string) (T, error) {
	var zero T
	d, ok := r.objects.Get(id)
	if !ok {
		return zero, ErrInvalidObjectID
	}
	v, ok := d.properties[key]
	if !ok {
		return zero, ErrPropertyNotFound
	}
	tv, ok := v.(T)
	if !ok {
		return zero, &TypeMismatchError{
			Expected: reflect.TypeFor[T]().String(),
			Got:      fmt.Sprintf("%T", v),
		}
	}
	return tv, nil
}

// RemoveProperty removes the property with the given key and returns
// the removed value, or nil if the key had no value.
func (r *Registry) RemoveProperty(id ObjectID, key string) (any, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return nil, ErrInvalidObjectID
	}
	v, ok := d.properties[key]
	if !ok {
		return nil, nil
	}
	delete(d.properties, key)
	return v, nil
}

// PropertyNames returns the object's property keys in sorted order.
func (r *Registry) PropertyNames(id ObjectID) ([]string, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return nil, ErrInvalidObjectID
	}
	return slices.Sorted(maps.Keys(d.properties)), nil
}
