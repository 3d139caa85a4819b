// Copyright (c) 2026, The Oak Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/oakui/oak/object"
)

func TestShared(t *testing.T) {
	s := NewShared()
	parent := Register[testObject](s)
	child := Register[childObject](s)
	require.NoError(t, s.SetParent(child, parent))
	require.NoError(t, s.SetObjectName(child, "kid"))

	assert.True(t, s.Contains(child))
	assert.Equal(t, 2, s.ObjectCount())

	found, err := s.FindChildByName(parent, "kid")
	require.NoError(t, err)
	assert.Equal(t, child, found)

	order, err := s.DepthFirstPreorder(parent)
	require.NoError(t, err)
	assert.Equal(t, []ObjectID{parent, child}, order)

	require.NoError(t, s.Destroy(parent))
	assert.False(t, s.Contains(child))
	assert.Equal(t, 0, s.ObjectCount())
}

func TestSharedWithRead(t *testing.T) {
	s := NewShared()
	parent := Register[testObject](s)
	child := Register[childObject](s)
	require.NoError(t, s.SetParent(child, parent))
	require.NoError(t, s.SetObjectName(child, "kid"))

	// typed finders are package functions on Registry; WithRead gives
	// locked access to them
	var found ObjectID
	s.WithRead(func(r *Registry) {
		var err error
		found, err = FindChild[childObject](r, parent, "kid")
		require.NoError(t, err)
	})
	assert.Equal(t, child, found)
}

func TestSharedWithWrite(t *testing.T) {
	s := NewShared()
	parent := Register[testObject](s)

	// a composite mutation under one lock acquisition
	var a, b ObjectID
	s.WithWrite(func(r *Registry) {
		a = Register[childObject](r)
		b = Register[childObject](r)
		require.NoError(t, r.SetParent(a, parent))
		require.NoError(t, r.SetParent(b, parent))
		require.NoError(t, r.Raise(a))
	})

	children, err := s.Children(parent)
	require.NoError(t, err)
	assert.Equal(t, []ObjectID{b, a}, children)
}

func TestSharedConcurrent(t *testing.T) {
	s := NewShared()
	root := Register[testObject](s)

	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]ObjectID, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				id := Register[childObject](s)
				assert.NoError(t, s.SetParent(id, root))
				ids = append(ids, id)

				// interleave reads with the writes
				_, err := s.Children(root)
				assert.NoError(t, err)
				_, err = s.BreadthFirst(root)
				assert.NoError(t, err)
			}
			for _, id := range ids[:perWorker/2] {
				assert.NoError(t, s.Destroy(id))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1+workers*perWorker/2, s.ObjectCount())
	children, err := s.Children(root)
	require.NoError(t, err)
	assert.Len(t, children, workers*perWorker/2)
}
