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

// Concrete object types for the embedding tests.

type window struct {
	ObjectBase
}

func newWindow() *window {
	return &window{ObjectBase: NewObjectBase[*window]()}
}

type button struct {
	ObjectBase
	label string
}

func newButton(label string) *button {
	return &button{ObjectBase: NewObjectBase[*button](), label: label}
}

// The process-wide registry is write-once, so the tests below share
// one instance and never assume object counts.

func TestInitIdempotent(t *testing.T) {
	Init()
	first, err := Global()
	require.NoError(t, err)

	Init()
	second, err := Global()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Same(t, first, MustGlobal())
}

func TestObjectBase(t *testing.T) {
	Init()
	g := MustGlobal()

	w := newWindow()
	defer w.Close()
	b := newButton("ok")
	defer b.Close()

	assert.False(t, w.ObjectID().IsNil())
	assert.True(t, g.Contains(w.ObjectID()))

	w.SetName("main")
	assert.Equal(t, "main", w.Name())

	require.NoError(t, b.SetParent(w.ObjectID()))
	assert.Equal(t, w.ObjectID(), b.Parent())
	assert.Equal(t, []ObjectID{b.ObjectID()}, w.Children())

	b.SetName("ok-button")
	assert.Equal(t, b.ObjectID(), w.FindChildByName("ok-button"))
	assert.True(t, w.FindChildByName("cancel-button").IsNil())

	require.NoError(t, b.SetProperty("default", true))
	var v bool
	g.WithRead(func(r *Registry) {
		v, _ = PropertyValue[bool](r, b.ObjectID(), "default")
	})
	assert.True(t, v)
}

func TestObjectBaseClose(t *testing.T) {
	Init()
	g := MustGlobal()

	w := newWindow()
	id := w.ObjectID()
	require.NoError(t, w.Close())
	assert.False(t, g.Contains(id))

	// second close is a no-op
	require.NoError(t, w.Close())
}

func TestObjectBaseCloseAfterCascade(t *testing.T) {
	Init()
	g := MustGlobal()

	w := newWindow()
	b := newButton("ok")
	require.NoError(t, b.SetParent(w.ObjectID()))

	// destroying the window cascades to the button; the button's own
	// Close must still succeed
	require.NoError(t, w.Close())
	assert.False(t, g.Contains(b.ObjectID()))
	require.NoError(t, b.Close())
}

func TestAs(t *testing.T) {
	Init()

	b := newButton("ok")
	defer b.Close()
	var obj Object = b

	got, ok := As[*button](obj)
	require.True(t, ok)
	assert.Equal(t, "ok", got.label)

	_, ok = As[*window](obj)
	assert.False(t, ok)
}

func TestRegisteredTypeOfObjectBase(t *testing.T) {
	Init()
	g := MustGlobal()

	b := newButton("ok")
	defer b.Close()

	tn, err := g.TypeName(b.ObjectID())
	require.NoError(t, err)
	assert.Equal(t, "*object_test.button", tn)
}
