// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package test

import (
	"code.gitea.io/safehtml/modules/log"
)

// MockVariableValue sets a variable to a new value (or keeps it when v is absent) and returns
// the function restoring the old value
func MockVariableValue[T any](p *T, v ...T) (reset func()) {
	old := *p
	if len(v) > 0 {
		*p = v[0]
	}
	return func() { *p = old }
}

// MockLogLevel changes the level of the default logger, the returned function restores it
func MockLogLevel(level log.Level) (reset func()) {
	old := log.GetLevel()
	log.SetLevel(level)
	return func() { log.SetLevel(old) }
}
