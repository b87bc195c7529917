// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

// Logger is implemented by WriterLogger, it is the surface the packages of the engine log through
type Logger interface {
	// Log writes an event, skip counts the frames between the caller and Log
	Log(skip int, level Level, format string, v ...any)
	GetLevel() Level
	LevelEnabled(level Level) bool

	Trace(format string, v ...any)
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}
