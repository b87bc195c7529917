// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"strings"

	"code.gitea.io/safehtml/modules/json"
)

// Level is the minimal severity an event needs to be written
type Level int

const (
	UNDEFINED Level = iota
	TRACE
	DEBUG
	INFO
	WARN
	ERROR
	FATAL
	NONE
)

var levelNames = [...]string{"undefined", "trace", "debug", "info", "warn", "error", "fatal", "none"}

func (l Level) String() string {
	if l < UNDEFINED || int(l) >= len(levelNames) {
		return INFO.String()
	}
	return levelNames[l]
}

// LevelFromString parses a level name, case and surrounding spaces are ignored.
// Unknown names give INFO.
func LevelFromString(name string) Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		return WARN
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i)
		}
	}
	return INFO
}

// MarshalJSON writes the level by name
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON reads a level written by name or by number
func (l *Level) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case string:
		*l = LevelFromString(v)
	case float64:
		*l = LevelFromString(Level(v).String())
	default:
		*l = INFO
	}
	return nil
}
