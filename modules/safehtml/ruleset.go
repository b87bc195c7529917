// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

import (
	"errors"
	"strings"

	"code.gitea.io/safehtml/modules/log"
	"code.gitea.io/safehtml/modules/regexplru"
	"code.gitea.io/safehtml/modules/util"

	"github.com/dlclark/regexp2"
)

// RuleSet applies an ordered list of FindReplace rules in one left-to-right pass.
// When several rules accept the same matched text the first one in the list wins.
// A RuleSet is immutable and safe for concurrent use.
//
// The rules are scanned with the alternation of their patterns, so numbered back references
// of every rule but the first one don't refer to the intended groups, use named groups instead.
type RuleSet struct {
	rules    []FindReplace
	combined *regexp2.Regexp
}

// NewRuleSet validates the rules and compiles their combined pattern.
// A rule whose pattern can match the empty string is refused with a *ConfigurationError wrapping ErrEmptyMatch.
func NewRuleSet(rules ...FindReplace) (*RuleSet, error) {
	rs := &RuleSet{rules: make([]FindReplace, 0, len(rules))}
	if len(rules) == 0 {
		return rs, nil
	}

	var combined strings.Builder
	for i, rule := range rules {
		if rule == nil || rule.Pattern() == nil {
			return nil, &ConfigurationError{Index: i, Err: util.NewInvalidArgumentErrorf("rule has no pattern")}
		}
		pat := rule.Pattern()
		if pat.CanMatchEmpty() {
			return nil, &ConfigurationError{Index: i, Pattern: pat.String(), Err: ErrEmptyMatch}
		}
		if i > 0 {
			combined.WriteByte('|')
		}
		combined.WriteString("(?:")
		combined.WriteString(pat.String())
		combined.WriteByte(')')
		rs.rules = append(rs.rules, rule)
	}

	re, err := regexplru.GetCompiled(combined.String(), regexp2.None)
	if err != nil {
		return nil, &ConfigurationError{Index: -1, Pattern: combined.String(), Err: &PatternError{Expr: combined.String(), Err: err}}
	}
	rs.combined = re
	return rs, nil
}

// MustRuleSet is like NewRuleSet but panics on an invalid rule
func MustRuleSet(rules ...FindReplace) *RuleSet {
	rs, err := NewRuleSet(rules...)
	if err != nil {
		panic(err)
	}
	return rs
}

// Len returns the number of rules
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Rules returns a copy of the rules in precedence order
func (rs *RuleSet) Rules() []FindReplace {
	if rs == nil {
		return nil
	}
	return append([]FindReplace(nil), rs.rules...)
}

// Apply replaces every match of the rules in s.
// Text outside the matches is copied byte for byte, a match no rule accepts is copied verbatim.
func (rs *RuleSet) Apply(s SafeHTML) SafeHTML {
	if rs.Len() == 0 || s.content == "" {
		return s
	}

	// regexp2 reports rune positions, offsets maps them to byte positions of the content.
	// An invalid UTF-8 byte is one rune, so the content can be sliced without rewriting it.
	input := []rune(s.content)
	offsets := make([]int, 0, len(input)+1)
	for i := range s.content {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s.content))

	m, err := rs.combined.FindRunesMatch(input)
	if err != nil || m == nil {
		if err != nil {
			log.Error("RuleSet: match failed: %v", err)
		}
		return s
	}

	var out strings.Builder
	out.Grow(len(s.content))
	last := 0
	for ; m != nil && err == nil; m, err = rs.combined.FindNextMatch(m) {
		if m.Length == 0 {
			continue
		}
		start, end := offsets[m.Index], offsets[m.Index+m.Length]
		out.WriteString(s.content[last:start])
		matched := s.content[start:end]
		if repl, ok := rs.replaceMatch(input, m.Index, m.Length, matched); ok {
			out.WriteString(repl.content)
		} else {
			out.WriteString(matched)
		}
		last = end
	}
	if err != nil {
		log.Error("RuleSet: match failed: %v", err)
	}
	out.WriteString(s.content[last:])
	return AsIs(out.String())
}

// replaceMatch asks the rules accepting input[index:index+length] for a replacement, in order
func (rs *RuleSet) replaceMatch(input []rune, index, length int, matched string) (SafeHTML, bool) {
	for i, rule := range rs.rules {
		if !rule.Pattern().matchAt(input, index, length) {
			continue
		}
		repl, err := rule.Replace(matched)
		if err == nil {
			return repl, true
		}
		if errors.Is(err, ErrReplacementRejected) {
			log.Trace("RuleSet: rule %d rejected %q: %v", i, matched, err)
		} else {
			log.Error("RuleSet: rule %d failed on %q: %v", i, matched, err)
		}
	}
	return SafeHTML{}, false
}
