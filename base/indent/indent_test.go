// Copyright (c) 2026, The Oak Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndent(t *testing.T) {
	assert.Equal(t, "\t\t", Tabs(2))
	assert.Equal(t, "    ", Spaces(2, 2))
	assert.Equal(t, "", Spaces(0, 4))
	assert.Equal(t, "\t", String(Tab, 1, 4))
	assert.Equal(t, "    ", String(Space, 1, 4))
}
