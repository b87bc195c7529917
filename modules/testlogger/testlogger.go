// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package testlogger

import (
	"strings"
	"sync"
	"testing"

	"code.gitea.io/safehtml/modules/log"
)

// TestLogger is a logger which will write to the testing log and keep the lines it received
type TestLogger struct {
	mu    sync.Mutex
	t     testing.TB
	lines []string
	done  bool
}

// Redirect replaces the default logger by one writing to the log of t at the given level,
// the default logger is restored when the test finishes
func Redirect(t testing.TB, level log.Level) *TestLogger {
	tl := &TestLogger{t: t}
	old := log.GetLogger()
	log.SetLogger(log.NewWriterLogger(tl, level, log.Llevelinitial))
	t.Cleanup(func() {
		log.SetLogger(old)
		tl.mu.Lock()
		tl.done = true
		tl.mu.Unlock()
	})
	return tl
}

func (tl *TestLogger) Write(p []byte) (int, error) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	line := strings.TrimSuffix(string(p), "\n")
	tl.lines = append(tl.lines, line)
	// the logger system could still try to output logs after the test is finished
	if !tl.done {
		tl.t.Log(line)
	}
	return len(p), nil
}

// Lines returns the lines logged so far
func (tl *TestLogger) Lines() []string {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return append([]string(nil), tl.lines...)
}

// Contains reports whether a logged line contains s
func (tl *TestLogger) Contains(s string) bool {
	for _, line := range tl.Lines() {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}
