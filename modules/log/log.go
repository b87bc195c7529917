// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"io"
	"os"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[WriterLogger]

func init() {
	defaultLogger.Store(NewWriterLogger(os.Stderr, INFO, LstdFlags))
}

// GetLogger returns the default logger
func GetLogger() *WriterLogger {
	return defaultLogger.Load()
}

// SetLogger replaces the default logger, it is usually called once during startup or by tests
func SetLogger(l *WriterLogger) {
	defaultLogger.Store(l)
}

// SetLevel changes the level of the default logger
func SetLevel(level Level) {
	GetLogger().SetLevel(level)
}

// SetOutput changes the destination of the default logger
func SetOutput(out io.Writer) {
	GetLogger().SetOutput(out)
}

// GetLevel returns the minimum Logger level
func GetLevel() Level {
	return GetLogger().GetLevel()
}

// IsTrace returns true if at least one logger is TRACE
func IsTrace() bool {
	return GetLevel() <= TRACE
}

func Trace(format string, v ...any) {
	GetLogger().Log(1, TRACE, format, v...)
}

func Debug(format string, v ...any) {
	GetLogger().Log(1, DEBUG, format, v...)
}

func Info(format string, v ...any) {
	GetLogger().Log(1, INFO, format, v...)
}

func Warn(format string, v ...any) {
	GetLogger().Log(1, WARN, format, v...)
}

func Error(format string, v ...any) {
	GetLogger().Log(1, ERROR, format, v...)
}

// Fatal records a fatal log event and exits the process
func Fatal(format string, v ...any) {
	GetLogger().Log(1, FATAL, format, v...)
	os.Exit(1)
}
