// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

import (
	"errors"
	"fmt"

	"code.gitea.io/safehtml/modules/util"
)

var (
	// ErrEmptyMatch is reported when a rule pattern could match the empty string,
	// such a rule would make the single-pass scan stall
	ErrEmptyMatch = util.NewInvalidArgumentErrorf("pattern can match the empty string")

	// ErrReplacementRejected is returned by a FindReplace which declines a match,
	// the rule set then tries the next rule
	ErrReplacementRejected = errors.New("replacement rejected")

	// ErrUnsafeName is recorded by the Builder for a tag or attribute outside the allow-lists
	ErrUnsafeName = util.NewInvalidArgumentErrorf("tag or attribute name is not allowed")

	// ErrUnsafeURL is recorded by the Builder for a link with a disallowed scheme
	ErrUnsafeURL = util.NewInvalidArgumentErrorf("URL scheme is not allowed")

	// ErrNoOpenElement is recorded by the Builder when an attribute is set outside a start tag
	ErrNoOpenElement = util.NewInvalidArgumentErrorf("no open element for attribute")
)

// PatternError is returned for a malformed regular expression
type PatternError struct {
	Expr string
	Err  error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Expr, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

func (e *PatternError) Is(target error) bool {
	return target == util.ErrInvalidArgument
}

// ConfigurationError is returned when a rule set can't be built, the rule set is unusable.
// Index is the position of the offending rule, or -1 when the combined pattern failed.
type ConfigurationError struct {
	Index   int
	Pattern string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid rule set: %v", e.Err)
	}
	return fmt.Sprintf("invalid rule %d (%q): %v", e.Index, e.Pattern, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return target == util.ErrInvalidArgument
}
