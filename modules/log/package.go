// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package log provides logging capabilities for the SafeHTML engine and its tools.
// Concepts:
//
// * Logger: a Logger provides logging functions and formats log events for its writer
//
// * Event: a single log record, it carries the level, the caller and the formatted message
//
// Call graph:
// -> log.Info()
// -> WriterLogger.Log()
// -> prepare log event, format the message with the configured Flags
// -> the formatted line is written to the output writer under a lock
package log
