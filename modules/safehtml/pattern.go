// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

import (
	"regexp/syntax"
	"strings"

	"code.gitea.io/safehtml/modules/log"
	"code.gitea.io/safehtml/modules/regexplru"

	"github.com/dlclark/regexp2"
)

// Pattern is a compiled regular expression with global-match semantics.
// The syntax is the Perl/.NET one of regexp2, so lookahead and lookbehind are available.
// Replacement templates reference groups with $n or ${name}, "$$" is a literal "$".
// A Pattern is safe for concurrent use.
type Pattern struct {
	expr string
	re   *regexp2.Regexp
	full *regexp2.Regexp // the expression anchored to the whole input
	at   *regexp2.Regexp // the expression anchored to the start position of a search
}

type compileFunc func(expr string, opts regexp2.RegexOptions) (*regexp2.Regexp, error)

func compilePattern(expr string, compile compileFunc) (*Pattern, error) {
	re, err := compile(expr, regexp2.None)
	if err != nil {
		return nil, &PatternError{Expr: expr, Err: err}
	}
	full, err := compile(`\A(?:`+expr+`)\z`, regexp2.None)
	if err != nil {
		return nil, &PatternError{Expr: expr, Err: err}
	}
	at, err := compile(`\G(?:`+expr+`)`, regexp2.None)
	if err != nil {
		return nil, &PatternError{Expr: expr, Err: err}
	}
	return &Pattern{expr: expr, re: re, full: full, at: at}, nil
}

// NewPattern compiles expr, compiled expressions are shared through an LRU cache
func NewPattern(expr string) (*Pattern, error) {
	return compilePattern(expr, regexplru.GetCompiled)
}

// MustPattern is like NewPattern but panics if expr can't be compiled, it is meant for package level patterns
func MustPattern(expr string) *Pattern {
	p, err := compilePattern(expr, regexp2.Compile)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) String() string {
	return p.expr
}

// MatchString reports whether s contains a match
func (p *Pattern) MatchString(s string) bool {
	ok, err := p.re.MatchString(s)
	if err != nil {
		log.Error("Pattern %q: match failed: %v", p.expr, err)
	}
	return ok
}

// MatchFull reports whether the whole s is a match
func (p *Pattern) MatchFull(s string) bool {
	ok, err := p.full.MatchString(s)
	if err != nil {
		log.Error("Pattern %q: match failed: %v", p.expr, err)
	}
	return ok
}

// matchAt reports whether the pattern matches exactly input[start:start+length].
// Lookaround sees the text surrounding the match, not the ends of the matched text.
func (p *Pattern) matchAt(input []rune, start, length int) bool {
	m, err := p.at.FindRunesMatchStartingAt(input, start)
	if err != nil {
		log.Error("Pattern %q: match failed: %v", p.expr, err)
		return false
	}
	if m != nil && m.Index == start && m.Length == length {
		return true
	}
	// a shorter or longer match at start may still be able to end where the candidate ends
	return p.MatchFull(string(input[start : start+length]))
}

func (p *Pattern) replace(input, repl string, count int) string {
	out, err := p.re.Replace(input, repl, -1, count)
	if err != nil {
		// regexp2 only fails on a match timeout, leave the input untouched
		log.Error("Pattern %q: replace failed: %v", p.expr, err)
		return input
	}
	return out
}

// ReplaceFirst replaces the first match in s with repl.
//
// WARNING: the replacement is performed against an otherwise safe HTML string and is not escaped.
// The caller must ensure that repl does not introduce cross-site scripting entry points.
func (p *Pattern) ReplaceFirst(s SafeHTML, repl string) SafeHTML {
	return AsIs(p.replace(s.content, repl, 1))
}

// ReplaceAll replaces every non-overlapping match in s, from left to right, with repl.
//
// WARNING: the replacement is performed against an otherwise safe HTML string and is not escaped.
// The caller must ensure that repl does not introduce cross-site scripting entry points.
func (p *Pattern) ReplaceAll(s SafeHTML, repl string) SafeHTML {
	return AsIs(p.replace(s.content, repl, -1))
}

// CanMatchEmpty reports whether the pattern might produce a zero-length match.
// The answer is conservative: lookaround counts as empty, a back reference as possibly empty,
// and an expression that can't be analyzed is assumed to match the empty string.
func (p *Pattern) CanMatchEmpty() bool {
	expr, ok := toRE2Syntax(p.expr)
	if !ok {
		return true
	}
	re, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return true
	}
	return nullable(re)
}

var lookaroundPrefixes = []string{"(?<=", "(?<!", "(?=", "(?!"}

// toRE2Syntax rewrites the regexp2 constructs RE2 doesn't know into ones with the same emptiness:
// lookaround groups become empty groups, back references become ".*", atomic groups plain groups.
func toRE2Syntax(expr string) (string, bool) {
	var out strings.Builder
	var dropGroup []bool // for each open group, whether it is a removed lookaround
	dropped := 0
	emit := func(s string) {
		if dropped == 0 {
			out.WriteString(s)
		}
	}

	for i := 0; i < len(expr); i++ {
		switch c := expr[i]; c {
		case '\\':
			if i+1 >= len(expr) {
				return "", false
			}
			n := expr[i+1]
			switch {
			case n >= '1' && n <= '9':
				j := i + 1
				for j < len(expr) && expr[j] >= '0' && expr[j] <= '9' {
					j++
				}
				emit("(?:.*)")
				i = j - 1
			case n == 'k' && i+2 < len(expr) && strings.IndexByte("<'{", expr[i+2]) >= 0:
				closer := map[byte]byte{'<': '>', '\'': '\'', '{': '}'}[expr[i+2]]
				j := strings.IndexByte(expr[i+3:], closer)
				if j < 0 {
					return "", false
				}
				emit("(?:.*)")
				i += 3 + j
			case n == 'G' || n == 'Z':
				emit("(?:)")
				i++
			case n == 'u' && i+6 <= len(expr):
				emit(`\x{` + expr[i+2:i+6] + `}`)
				i += 5
			default:
				emit(expr[i : i+2])
				i++
			}
		case '[':
			j := classEnd(expr, i)
			if j < 0 {
				return "", false
			}
			emit(expr[i : j+1])
			i = j
		case '(':
			rest := expr[i:]
			if prefix, ok := hasAnyPrefix(rest, lookaroundPrefixes); ok {
				if dropped == 0 {
					out.WriteString("(?:)")
				}
				dropGroup = append(dropGroup, true)
				dropped++
				i += len(prefix) - 1
				continue
			}
			switch {
			case strings.HasPrefix(rest, "(?#"):
				j := strings.IndexByte(rest, ')')
				if j < 0 {
					return "", false
				}
				i += j
				continue
			case strings.HasPrefix(rest, "(?("):
				// conditional groups have no RE2 equivalent
				return "", false
			case strings.HasPrefix(rest, "(?>"):
				emit("(?:")
				i += 2
			case strings.HasPrefix(rest, "(?'"):
				j := strings.IndexByte(rest[3:], '\'')
				if j < 0 {
					return "", false
				}
				emit("(?P<" + rest[3:3+j] + ">")
				i += 3 + j
			default:
				emit("(")
			}
			dropGroup = append(dropGroup, false)
		case ')':
			if len(dropGroup) == 0 {
				return "", false
			}
			drop := dropGroup[len(dropGroup)-1]
			dropGroup = dropGroup[:len(dropGroup)-1]
			if drop {
				dropped--
				continue
			}
			emit(")")
		default:
			emit(expr[i : i+1])
		}
	}
	if len(dropGroup) > 0 {
		return "", false
	}
	return out.String(), true
}

// classEnd returns the index of the "]" closing the character class opened at start, or -1
func classEnd(expr string, start int) int {
	i := start + 1
	if i < len(expr) && expr[i] == '^' {
		i++
	}
	if i < len(expr) && expr[i] == ']' {
		i++
	}
	for ; i < len(expr); i++ {
		switch expr[i] {
		case '\\':
			i++
		case ']':
			return i
		}
	}
	return -1
}

func hasAnyPrefix(s string, prefixes []string) (string, bool) {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return prefix, true
		}
	}
	return "", false
}

// nullable reports whether re matches the empty string, zero-width assertions count as empty
func nullable(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpNoMatch, syntax.OpCharClass, syntax.OpAnyCharNotNL, syntax.OpAnyChar:
		return false
	case syntax.OpLiteral:
		return len(re.Rune) == 0
	case syntax.OpCapture, syntax.OpPlus:
		return nullable(re.Sub[0])
	case syntax.OpStar, syntax.OpQuest:
		return true
	case syntax.OpRepeat:
		return re.Min == 0 || nullable(re.Sub[0])
	case syntax.OpConcat:
		for _, sub := range re.Sub {
			if !nullable(sub) {
				return false
			}
		}
		return true
	case syntax.OpAlternate:
		for _, sub := range re.Sub {
			if nullable(sub) {
				return true
			}
		}
		return false
	}
	// OpEmptyMatch and the assertions: ^ $ \A \z \b \B
	return true
}
