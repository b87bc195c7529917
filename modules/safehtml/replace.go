// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

// ReplaceFirst replaces the first occurrence of expr with repl, groups of expr can be referenced with $n.
// A malformed expr is reported as a *PatternError.
//
// WARNING: the replacement is performed against an otherwise safe HTML string and is not escaped.
// The caller must ensure that repl does not introduce cross-site scripting entry points.
func (s SafeHTML) ReplaceFirst(expr, repl string) (SafeHTML, error) {
	p, err := NewPattern(expr)
	if err != nil {
		return s, err
	}
	return p.ReplaceFirst(s, repl), nil
}

// ReplaceAll replaces each occurrence of expr with repl, groups of expr can be referenced with $n.
// A malformed expr is reported as a *PatternError.
//
// WARNING: the replacement is performed against an otherwise safe HTML string and is not escaped.
// The caller must ensure that repl does not introduce cross-site scripting entry points.
func (s SafeHTML) ReplaceAll(expr, repl string) (SafeHTML, error) {
	p, err := NewPattern(expr)
	if err != nil {
		return s, err
	}
	return p.ReplaceAll(s, repl), nil
}

// ReplaceAllRules applies all the find/replace rules of rs in a single pass
func (s SafeHTML) ReplaceAllRules(rs *RuleSet) SafeHTML {
	return rs.Apply(s)
}
