// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"strings"
	"testing"
	"time"

	"code.gitea.io/safehtml/modules/json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, TRACE, LevelFromString("trace"))
	assert.Equal(t, WARN, LevelFromString(" Warning "))
	assert.Equal(t, NONE, LevelFromString("none"))
	assert.Equal(t, INFO, LevelFromString("no-such-level"))
	assert.Equal(t, "error", ERROR.String())
}

func TestLevelJSON(t *testing.T) {
	type testLevel struct {
		Level Level `json:"level"`
	}

	bs, err := json.Marshal(testLevel{Level: DEBUG})
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":"debug"}`, string(bs))

	var v testLevel
	require.NoError(t, json.Unmarshal([]byte(`{"level":"warn"}`), &v))
	assert.Equal(t, WARN, v.Level)
	require.NoError(t, json.Unmarshal([]byte(`{"level":5}`), &v))
	assert.Equal(t, ERROR, v.Level)
}

func TestFlagsFromString(t *testing.T) {
	assert.Equal(t, Ldate|Ltime, FlagsFromString("date, time"))
	assert.Equal(t, LstdFlags, FlagsFromString("stdflags"))
	assert.Equal(t, Flags(0), FlagsFromString("none"))
}

func TestWriterLogger(t *testing.T) {
	buf := &strings.Builder{}
	l := NewWriterLogger(buf, INFO, Ldate|Ltime|LUTC|Llevelinitial)
	l.now = func() time.Time {
		return time.Date(2019, time.January, 13, 22, 3, 30, 0, time.UTC)
	}

	l.Debug("hidden %d", 1)
	l.Info("visible %d", 2)
	l.Error("plain message")
	assert.Equal(t, "2019/01/13 22:03:30 [I] visible 2\n2019/01/13 22:03:30 [E] plain message\n", buf.String())

	buf.Reset()
	l.SetLevel(NONE)
	l.Error("dropped")
	assert.Empty(t, buf.String())
}

func TestWriterLoggerCaller(t *testing.T) {
	buf := &strings.Builder{}
	l := NewWriterLogger(buf, TRACE, Lshortfile|Llevel)
	l.Warn("here")
	assert.True(t, strings.HasPrefix(buf.String(), "log_test.go:"), buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), " [WARN] here\n"), buf.String())
}

func TestDefaultLogger(t *testing.T) {
	old := GetLogger()
	defer SetLogger(old)

	buf := &strings.Builder{}
	SetLogger(NewWriterLogger(buf, WARN, Llevelinitial))
	Info("skipped")
	Warn("kept %s", "value")
	assert.Equal(t, "[W] kept value\n", buf.String())
	assert.False(t, IsTrace())
}
