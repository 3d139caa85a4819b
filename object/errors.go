// Copyright (c) 2026, The Oak Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"errors"
	"fmt"
)

// Errors returned by [Registry] and [Shared] operations. The registry
// always returns failures to its immediate caller; only the
// convenience helpers on [ObjectBase] fold them into defaults.
var (
	// ErrInvalidObjectID reports an identifier that does not resolve:
	// never registered, already destroyed, or carrying a stale
	// generation. [Registry.StackUnder] and [Registry.StackAbove] also
	// return it when the two objects are not actually siblings.
	ErrInvalidObjectID = errors.New("object: invalid or destroyed object ID")

	// ErrCircularParentage reports a reparenting that would make an
	// object its own parent or ancestor.
	ErrCircularParentage = errors.New("object: cannot make an object its own parent or ancestor")

	// ErrPropertyNotFound reports a dynamic property key with no value.
	// It is returned by [PropertyOf]; the plain lookups report absence
	// as a nil or zero value instead.
	ErrPropertyNotFound = errors.New("object: property not found")

	// ErrPropertyReadOnly reports an attempt to write a read-only
	// property. Dynamic properties are always writable, so nothing in
	// this package returns it; it is part of the error surface for
	// object types that expose read-only properties of their own.
	ErrPropertyReadOnly = errors.New("object: property is read-only")

	// ErrRegistryNotInitialized reports use of the process-wide
	// registry before [Init].
	ErrRegistryNotInitialized = errors.New("object: object registry not initialized")
)

// TypeMismatchError reports a dynamic property read that found a value
// of a different concrete type than requested. It is returned by
// [PropertyOf]; the plain typed lookup [PropertyValue] reports a
// mismatch the same as an absent key.
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("object: property type mismatch: expected %s, got %s", e.Expected, e.Got)
}
