// Copyright (c) 2026, The Oak Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"fmt"
	"strings"

	"github.com/oakui/oak/base/indent"
)

// DumpTree returns an indented text rendering of the subtree rooted at
// the given object, one line per object with its identifier, name, and
// type name. The format is for debugging only and not stable.
func (r *Registry) DumpTree(id ObjectID) (string, error) {
	if !r.objects.Contains(id) {
		return "", ErrInvalidObjectID
	}
	var b strings.Builder
	r.dumpTree(&b, id, 0)
	return b.String(), nil
}

func (r *Registry) dumpTree(b *strings.Builder, id ObjectID, depth int) {
	d, ok := r.objects.Get(id)
	if !ok {
		return
	}
	name := d.name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(b, "%s[%s] %s (%s)\n", indent.Spaces(depth, 2), id, name, d.typeName)
	for _, c := range d.children {
		r.dumpTree(b, c, depth+1)
	}
}
