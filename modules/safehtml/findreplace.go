// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

import (
	"fmt"

	"golang.org/x/net/html"
)

// FindReplace is a rule of a RuleSet
type FindReplace interface {
	// Pattern is the expression the rule matches
	Pattern() *Pattern

	// Replace returns the replacement of a matched (already safe) text.
	// It returns an error wrapping ErrReplacementRejected to decline the match.
	Replace(input string) (SafeHTML, error)
}

type regexFindReplace struct {
	pat     *Pattern
	replace string
}

// NewRegexRule creates a rule replacing the matches of find with the replace template.
// The template is trusted: it must not introduce cross-site scripting entry points.
func NewRegexRule(find, replace string) (FindReplace, error) {
	pat, err := NewPattern(find)
	if err != nil {
		return nil, err
	}
	return &regexFindReplace{pat: pat, replace: replace}, nil
}

func (r *regexFindReplace) Pattern() *Pattern {
	return r.pat
}

func (r *regexFindReplace) Replace(input string) (SafeHTML, error) {
	return AsIs(r.pat.replace(input, r.replace, -1)), nil
}

func (r *regexFindReplace) String() string {
	return fmt.Sprintf("regex(%s -> %s)", r.pat, r.replace)
}

type linkFindReplace struct {
	pat  *Pattern
	link string
}

// NewLinkRule creates a rule turning the matches of find into links, the href is the link template
// expanded with the groups of the match. Matches whose href uses a scheme other than http or https
// are rejected, relative links are allowed.
func NewLinkRule(find, link string) (FindReplace, error) {
	pat, err := NewPattern(find)
	if err != nil {
		return nil, err
	}
	return &linkFindReplace{pat: pat, link: link}, nil
}

func (r *linkFindReplace) Pattern() *Pattern {
	return r.pat
}

func (r *linkFindReplace) Replace(input string) (SafeHTML, error) {
	// the input is escaped HTML, the attribute value gets escaped again by the builder
	href := html.UnescapeString(r.pat.replace(input, r.link, -1))
	if !hasLinkScheme(href) {
		return SafeHTML{}, fmt.Errorf("%w: invalid link %q", ErrReplacementRejected, href)
	}
	b := NewBuilder().OpenAnchor().SetAttribute("href", href).AppendAsIs(input).CloseAnchor()
	if err := b.Err(); err != nil {
		return SafeHTML{}, fmt.Errorf("%w: %v", ErrReplacementRejected, err)
	}
	return b.SafeHTML(), nil
}

func (r *linkFindReplace) String() string {
	return fmt.Sprintf("link(%s -> %s)", r.pat, r.link)
}

type funcFindReplace struct {
	pat *Pattern
	fn  func(input string) (SafeHTML, error)
}

// NewFuncRule creates a rule whose replacement is computed by fn
func NewFuncRule(pat *Pattern, fn func(input string) (SafeHTML, error)) FindReplace {
	return &funcFindReplace{pat: pat, fn: fn}
}

func (r *funcFindReplace) Pattern() *Pattern {
	return r.pat
}

func (r *funcFindReplace) Replace(input string) (SafeHTML, error) {
	return r.fn(input)
}
