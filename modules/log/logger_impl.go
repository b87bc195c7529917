// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Event represents a logging event
type Event struct {
	Time          time.Time
	Level         Level
	Filename      string
	Line          int
	MsgSimpleText string
}

// WriterLogger formats events and writes them to an io.Writer
type WriterLogger struct {
	mu     sync.Mutex
	out    io.Writer
	level  atomic.Int32
	Flags  Flags
	Prefix string

	now func() time.Time
}

var _ Logger = (*WriterLogger)(nil)

// NewWriterLogger creates a logger writing the events at or above level to out
func NewWriterLogger(out io.Writer, level Level, flags Flags) *WriterLogger {
	l := &WriterLogger{out: out, Flags: flags, now: time.Now}
	l.level.Store(int32(level))
	return l
}

// SetLevel changes the minimal level of the events to be written
func (l *WriterLogger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

// SetOutput changes the destination of the logger
func (l *WriterLogger) SetOutput(out io.Writer) {
	l.mu.Lock()
	l.out = out
	l.mu.Unlock()
}

func (l *WriterLogger) GetLevel() Level {
	return Level(l.level.Load())
}

func (l *WriterLogger) LevelEnabled(level Level) bool {
	cur := l.GetLevel()
	return cur != NONE && cur <= level
}

// Log prepares the event and writes it, skip is the number of frames above the caller of Log
func (l *WriterLogger) Log(skip int, level Level, format string, v ...any) {
	if !l.LevelEnabled(level) {
		return
	}
	event := &Event{Time: l.now(), Level: level}
	if l.Flags&Lshortfile != 0 {
		if _, file, line, ok := runtime.Caller(skip + 1); ok {
			event.Filename, event.Line = filepath.Base(file), line
		}
	}
	if len(v) == 0 {
		event.MsgSimpleText = format
	} else {
		event.MsgSimpleText = fmt.Sprintf(format, v...)
	}

	buf := l.formatEvent(event)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.out != nil {
		_, _ = l.out.Write(buf)
	}
}

func (l *WriterLogger) formatEvent(event *Event) []byte {
	buf := make([]byte, 0, 64+len(event.MsgSimpleText))
	buf = append(buf, l.Prefix...)
	t := event.Time
	if l.Flags&LUTC != 0 {
		t = t.UTC()
	}
	if l.Flags&Ldate != 0 {
		buf = t.AppendFormat(buf, "2006/01/02 ")
	}
	if l.Flags&Ltime != 0 {
		buf = t.AppendFormat(buf, "15:04:05 ")
	}
	if l.Flags&Lshortfile != 0 && event.Filename != "" {
		buf = append(buf, event.Filename...)
		buf = append(buf, ':')
		buf = fmt.Appendf(buf, "%d ", event.Line)
	}
	if l.Flags&(Llevel|Llevelinitial) != 0 {
		upper := strings.ToUpper(event.Level.String())
		buf = append(buf, '[')
		if l.Flags&Llevel != 0 {
			buf = append(buf, upper...)
		} else {
			buf = append(buf, upper[0])
		}
		buf = append(buf, "] "...)
	}
	buf = append(buf, event.MsgSimpleText...)
	if len(buf) == 0 || buf[len(buf)-1] != '\n' {
		buf = append(buf, '\n')
	}
	return buf
}

func (l *WriterLogger) Trace(format string, v ...any) {
	l.Log(1, TRACE, format, v...)
}

func (l *WriterLogger) Debug(format string, v ...any) {
	l.Log(1, DEBUG, format, v...)
}

func (l *WriterLogger) Info(format string, v ...any) {
	l.Log(1, INFO, format, v...)
}

func (l *WriterLogger) Warn(format string, v ...any) {
	l.Log(1, WARN, format, v...)
}

func (l *WriterLogger) Error(format string, v ...any) {
	l.Log(1, ERROR, format, v...)
}
