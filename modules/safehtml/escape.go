// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

import (
	"strings"
)

// DefaultTabWidth is the number of non-breaking spaces a tab expands to in preformatted text
const DefaultTabWidth = 4

var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#39;",
)

// Escape converts the markup-significant characters of s into entities.
// Escaping is not idempotent: an escaped text escaped again gets its "&" escaped twice.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

func writeEscaped(w *strings.Builder, s string) {
	_, _ = htmlEscaper.WriteString(w, s)
}

// writePreformatted escapes s and turns line breaks into <br />,
// leading and repeated spaces into &nbsp; and tabs into tabWidth &nbsp;
func writePreformatted(w *strings.Builder, s string, tabWidth int) {
	lineStart, prevSpace := true, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\r', '\n':
			if c == '\r' && i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			w.WriteString("<br />")
			lineStart, prevSpace = true, false
			continue
		case ' ':
			if lineStart || prevSpace {
				w.WriteString("&nbsp;")
			} else {
				w.WriteByte(' ')
			}
			lineStart, prevSpace = false, true
			continue
		case '\t':
			for range tabWidth {
				w.WriteString("&nbsp;")
			}
			lineStart, prevSpace = false, true
			continue
		case '&':
			w.WriteString("&amp;")
		case '<':
			w.WriteString("&lt;")
		case '>':
			w.WriteString("&gt;")
		case '"':
			w.WriteString("&quot;")
		case '\'':
			w.WriteString("&#39;")
		default:
			// bytes of multi-byte UTF-8 sequences are never ASCII, copying them one by one keeps the sequence intact
			w.WriteByte(c)
		}
		lineStart, prevSpace = false, false
	}
}
