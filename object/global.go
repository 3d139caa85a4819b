// Copyright (c) 2026, The Oak Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import "sync/atomic"

// The process-wide registry. [Shared] is the handle to pass around and
// inject; the global exists so that object-base helpers and deeply
// nested code can resolve the one instance an application creates at
// startup. It is set once by [Init] and lives for the rest of the
// process; there is no teardown.

var global atomic.Pointer[Shared]

// Init initializes the process-wide registry. Applications call it
// once at startup, before any objects are created. Calling it again is
// a no-op; the registry is never replaced or torn down.
func Init() {
	global.CompareAndSwap(nil, NewShared())
}

// Global returns the process-wide registry, or
// [ErrRegistryNotInitialized] if [Init] has not been called yet.
func Global() (*Shared, error) {
	g := global.Load()
	if g == nil {
		return nil, ErrRegistryNotInitialized
	}
	return g, nil
}

// MustGlobal returns the process-wide registry, panicking if [Init]
// has not been called yet. Creating objects before initializing the
// registry is a programming error, not a runtime condition.
func MustGlobal() *Shared {
	g := global.Load()
	if g == nil {
		panic(ErrRegistryNotInitialized)
	}
	return g
}
