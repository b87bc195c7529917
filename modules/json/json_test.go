// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarshalIndent(t *testing.T) {
	bs, err := MarshalIndent(map[string]any{"name": "cl", "rank": 1}, "", "  ")
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"cl\",\n  \"rank\": 1\n}", string(bs))
	assert.True(t, Valid(bs))

	var back map[string]any
	assert.NoError(t, Unmarshal(bs, &back))
	assert.Equal(t, "cl", back["name"])
}
