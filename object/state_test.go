// Copyright (c) 2026, The Oak Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/oakui/oak/object"
)

// makeChain registers a three-level chain a -> b -> c with widget
// state initialized to visible and enabled on every level.
func makeChain(t *testing.T, r *Registry) (a, b, c ObjectID) {
	t.Helper()
	a = Register[testObject](r)
	b = Register[testObject](r)
	c = Register[testObject](r)
	require.NoError(t, r.SetParent(b, a))
	require.NoError(t, r.SetParent(c, b))
	for _, id := range []ObjectID{a, b, c} {
		require.NoError(t, r.InitWidgetState(id, WidgetState{Visible: true, Enabled: true}))
	}
	return
}

func TestWidgetStateOf(t *testing.T) {
	r := NewRegistry()
	id := Register[testObject](r)

	state, err := r.WidgetStateOf(id)
	require.NoError(t, err)
	assert.Nil(t, state, "state starts uninitialized")

	require.NoError(t, r.InitWidgetState(id, WidgetState{Visible: true}))
	state, err = r.WidgetStateOf(id)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.True(t, state.Visible)
	assert.False(t, state.Enabled)

	// returned state is a copy
	state.Visible = false
	again, err := r.WidgetStateOf(id)
	require.NoError(t, err)
	assert.True(t, again.Visible)
}

func TestSetWidgetVisibleInitializes(t *testing.T) {
	r := NewRegistry()
	id := Register[testObject](r)

	require.NoError(t, r.SetWidgetVisible(id, false))
	state, err := r.WidgetStateOf(id)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.False(t, state.Visible)
	assert.True(t, state.Enabled, "enabled defaults to true on first touch")
}

func TestSetWidgetEnabledInitializes(t *testing.T) {
	r := NewRegistry()
	id := Register[testObject](r)

	require.NoError(t, r.SetWidgetEnabled(id, false))
	state, err := r.WidgetStateOf(id)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.True(t, state.Visible, "visible defaults to true on first touch")
	assert.False(t, state.Enabled)
}

func TestEffectivelyVisible(t *testing.T) {
	r := NewRegistry()
	a, _, c := makeChain(t, r)

	visible, ok, err := r.EffectivelyVisible(c)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, visible)

	// hiding the root hides the whole chain
	require.NoError(t, r.SetWidgetVisible(a, false))
	visible, ok, err = r.EffectivelyVisible(c)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, visible)

	// the root's own effective state follows its own flag
	visible, _, err = r.EffectivelyVisible(a)
	require.NoError(t, err)
	assert.False(t, visible)
}

func TestEffectivelyEnabled(t *testing.T) {
	r := NewRegistry()
	_, b, c := makeChain(t, r)

	require.NoError(t, r.SetWidgetEnabled(b, false))

	enabled, ok, err := r.EffectivelyEnabled(c)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, enabled)

	// visibility is unaffected by enabled flags
	visible, ok, err := r.EffectivelyVisible(c)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, visible)
}

func TestEffectiveStateSkipsStatelessAncestors(t *testing.T) {
	r := NewRegistry()
	a := Register[testObject](r)
	helper := Register[testObject](r) // never gets widget state
	c := Register[testObject](r)
	require.NoError(t, r.SetParent(helper, a))
	require.NoError(t, r.SetParent(c, helper))
	require.NoError(t, r.InitWidgetState(a, WidgetState{Visible: true, Enabled: true}))
	require.NoError(t, r.InitWidgetState(c, WidgetState{Visible: true, Enabled: true}))

	visible, ok, err := r.EffectivelyVisible(c)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, visible, "stateless ancestors are transparent")

	require.NoError(t, r.SetWidgetVisible(a, false))
	visible, _, err = r.EffectivelyVisible(c)
	require.NoError(t, err)
	assert.False(t, visible)
}

func TestEffectiveStateUninitialized(t *testing.T) {
	r := NewRegistry()
	id := Register[testObject](r)

	_, ok, err := r.EffectivelyVisible(id)
	require.NoError(t, err)
	assert.False(t, ok, "objects without widget state have no effective state")

	_, _, err = r.EffectivelyVisible(ObjectID{})
	assert.ErrorIs(t, err, ErrInvalidObjectID)
}
