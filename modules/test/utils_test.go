// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package test

import (
	"testing"

	"code.gitea.io/safehtml/modules/log"

	"github.com/stretchr/testify/assert"
)

func TestMockVariableValue(t *testing.T) {
	v := "a"
	reset := MockVariableValue(&v, "b")
	assert.Equal(t, "b", v)
	reset()
	assert.Equal(t, "a", v)

	reset = MockVariableValue(&v)
	v = "c"
	reset()
	assert.Equal(t, "a", v)
}

func TestMockLogLevel(t *testing.T) {
	old := log.GetLevel()
	reset := MockLogLevel(log.TRACE)
	assert.Equal(t, log.TRACE, log.GetLevel())
	reset()
	assert.Equal(t, old, log.GetLevel())
}
