// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package safehtml composes HTML from untrusted text without introducing injection points.
//
// A SafeHTML value is an immutable string that can be placed into a document without
// further escaping. Values are produced by a Builder, which escapes every raw text it is
// given, or by AsIs, which trusts its argument unconditionally. Transforms (ReplaceFirst,
// ReplaceAll, RuleSet.Apply, Linkify, Wikify, Markdownify) derive new values from existing
// ones.
//
// Safety is an invariant kept by the callers, not something checked at runtime: the
// arguments of AsIs and Builder.AppendAsIs, and the replacement text of every transform,
// must already be safe HTML. Nothing in this package can detect a violation.
package safehtml

import (
	"fmt"
	"html/template"
	"slices"
)

// SafeHTML is an immutable string safely placed as HTML without further escaping.
// The zero value is the empty document.
type SafeHTML struct {
	content string
}

// AsIs wraps an existing HTML text. The caller asserts that s is already safe.
func AsIs(s string) SafeHTML {
	return SafeHTML{content: s}
}

// FromText escapes the raw text s
func FromText(s string) SafeHTML {
	return SafeHTML{content: Escape(s)}
}

// String returns the HTML content, it is safe for inclusion in any element content or double-quoted attribute
func (s SafeHTML) String() string {
	return s.content
}

// HTML returns the content for html/template
func (s SafeHTML) HTML() template.HTML {
	return template.HTML(s.content) //nolint:gosec // content is safe by construction
}

func (s SafeHTML) IsEmpty() bool {
	return s.content == ""
}

func formatArgs(rawArgs []any) []any {
	args := slices.Clone(rawArgs)
	for i, v := range args {
		switch v := v.(type) {
		case nil, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			// for most basic types, just do nothing and use it
		case SafeHTML:
			args[i] = v.content
		case template.HTML:
			args[i] = string(v)
		case string:
			args[i] = Escape(v)
		case fmt.Stringer:
			args[i] = Escape(v.String())
		default:
			args[i] = Escape(fmt.Sprint(v))
		}
	}
	return args
}

// Format works like fmt.Sprintf, the format must be a trusted constant HTML text.
// SafeHTML and template.HTML arguments are used as they are, other arguments are escaped.
func Format(format string, args ...any) SafeHTML {
	return SafeHTML{content: fmt.Sprintf(format, formatArgs(args)...)}
}
