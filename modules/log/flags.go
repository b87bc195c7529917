// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import "strings"

// Flags define which text to prefix to each log entry generated
// by the Logger. Bits are or'ed together to control what's printed.
// The standard is:
// 2009/01/23 01:23:23 d.go:23 [I] message
type Flags uint32

const (
	Ldate         Flags = 1 << iota // the date in the local time zone: 2009/01/23
	Ltime                           // the time in the local time zone: 01:23:23
	Lshortfile                      // final file name element and line number: d.go:23
	LUTC                            // if Ldate or Ltime is set, use UTC rather than the local time zone
	Llevelinitial                   // Initial character of the provided level in brackets eg. [I] for info
	Llevel                          // Provided level in brackets [INFO]

	// LstdFlags is the initial value for the standard logger
	LstdFlags = Ldate | Ltime | Lshortfile | Llevelinitial
)

var flagFromString = map[string]Flags{
	"date":         Ldate,
	"time":         Ltime,
	"shortfile":    Lshortfile,
	"utc":          LUTC,
	"levelinitial": Llevelinitial,
	"level":        Llevel,
	"stdflags":     LstdFlags,
}

// FlagsFromString takes a comma separated list of flags and returns
// the flags for this string, "none" or an empty list means no flags at all
func FlagsFromString(from string) Flags {
	var flags Flags
	for _, flag := range strings.Split(strings.ToLower(from), ",") {
		if f, ok := flagFromString[strings.TrimSpace(flag)]; ok {
			flags |= f
		}
	}
	return flags
}
