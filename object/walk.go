// Copyright (c) 2026, The Oak Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

// Traversals. Each returns an eagerly materialized snapshot rather
// than a live iterator, so the tree can be freely mutated while the
// result is consumed. All of them return [ErrInvalidObjectID] if the
// root does not resolve; for a valid root they cannot fail partway,
// since the graph is acyclic and finite.

// DepthFirstPreorder returns the object and all of its descendants in
// depth-first pre-order: each object before its children, children in
// z-order. For the tree root -> {a -> {x}, b} the result is
// [root, a, x, b].
func (r *Registry) DepthFirstPreorder(root ObjectID) ([]ObjectID, error) {
	if !r.objects.Contains(root) {
		return nil, ErrInvalidObjectID
	}
	var out []ObjectID
	stack := []ObjectID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, id)
		d, _ := r.objects.Get(id)
		for i := len(d.children) - 1; i >= 0; i-- {
			stack = append(stack, d.children[i])
		}
	}
	return out, nil
}

// DepthFirstPostorder returns the object and all of its descendants in
// depth-first post-order: each object after its children, children in
// z-order. This is the teardown order used by [Registry.Destroy]. For
// the tree root -> {a -> {x}, b} the result is [x, a, b, root].
func (r *Registry) DepthFirstPostorder(root ObjectID) ([]ObjectID, error) {
	if !r.objects.Contains(root) {
		return nil, ErrInvalidObjectID
	}
	var out []ObjectID
	r.collectDescendants(root, &out)
	return append(out, root), nil
}

// BreadthFirst returns the object and all of its descendants level by
// level: the root, then all of its children in z-order, then all
// grandchildren, and so on. For the tree root -> {a -> {x}, b} the
// result is [root, a, b, x].
func (r *Registry) BreadthFirst(root ObjectID) ([]ObjectID, error) {
	if !r.objects.Contains(root) {
		return nil, ErrInvalidObjectID
	}
	out := []ObjectID{root}
	for i := 0; i < len(out); i++ {
		d, _ := r.objects.Get(out[i])
		out = append(out, d.children...)
	}
	return out, nil
}

// Ancestors returns the object's parent chain from its immediate
// parent up to the root. Root objects have no ancestors.
func (r *Registry) Ancestors(id ObjectID) ([]ObjectID, error) {
	d, ok := r.objects.Get(id)
	if !ok {
		return nil, ErrInvalidObjectID
	}
	var out []ObjectID
	for cur := d.parent; !cur.IsNil(); {
		out = append(out, cur)
		cd, ok := r.objects.Get(cur)
		if !ok {
			break
		}
		cur = cd.parent
	}
	return out, nil
}
