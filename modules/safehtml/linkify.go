// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// linkPart is one character of a bare URL inside escaped text. An "&" is only accepted when
// it doesn't start a "&lt;" or "&gt;" entity, "." and "," only when they aren't sentence punctuation.
const linkPart = `(?:[a-zA-Z0-9$_+!*'%;:@=?#/~-]|&(?!lt;|gt;)|[.,](?!(?:\s|$)))`

var linkPattern = MustPattern(`(https?://` + linkPart + `{2,}(?:[(]` + linkPart + `*[)])*` + linkPart + `*)`)

// LinkPattern returns the pattern Linkify uses to find bare URLs
func LinkPattern() *Pattern {
	return linkPattern
}

// Linkify converts bare http:// and https:// URLs into links opening a new window
func (s SafeHTML) Linkify() SafeHTML {
	return s.LinkifyTarget("_blank")
}

// LinkifyTarget is like Linkify with the target attribute of the links set to target
func (s SafeHTML) LinkifyTarget(target string) SafeHTML {
	// the matched text can't break out of the attribute: a raw `"` is never part of escaped content
	repl := `<a href="$1" target="` + strings.ReplaceAll(Escape(target), "$", "$$") + `">$1</a>`
	return linkPattern.ReplaceAll(s, repl)
}

// NewLinkifyRule returns a rule linking the bare URLs like Linkify does, so they can be
// processed in the same pass as other rules
func NewLinkifyRule(target string) FindReplace {
	return NewFuncRule(linkPattern, func(input string) (SafeHTML, error) {
		href := html.UnescapeString(input)
		b := NewBuilder().OpenAnchor().SetAttribute("href", href).SetAttribute("target", target).AppendAsIs(input).CloseAnchor()
		if err := b.Err(); err != nil {
			return SafeHTML{}, fmt.Errorf("%w: %v", ErrReplacementRejected, err)
		}
		return b.SafeHTML(), nil
	})
}
