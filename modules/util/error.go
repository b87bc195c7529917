// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import (
	"errors"
	"fmt"
)

// Sentinel errors, callers classify the errors of the engine and the settings loader with errors.Is
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotExist        = errors.New("resource does not exist")
)

// SilentWrap reports Message but unwraps to Err, the message of Err is not repeated
type SilentWrap struct {
	Message string
	Err     error
}

func (w SilentWrap) Error() string {
	return w.Message
}

func (w SilentWrap) Unwrap() error {
	return w.Err
}

// NewSilentWrapErrorf formats message only when args are given, so a lone message is kept as is
func NewSilentWrapErrorf(unwrap error, message string, args ...any) error {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return SilentWrap{Message: message, Err: unwrap}
}

// NewInvalidArgumentErrorf is NewSilentWrapErrorf for ErrInvalidArgument
func NewInvalidArgumentErrorf(message string, args ...any) error {
	return NewSilentWrapErrorf(ErrInvalidArgument, message, args...)
}

// NewNotExistErrorf is NewSilentWrapErrorf for ErrNotExist
func NewNotExistErrorf(message string, args ...any) error {
	return NewSilentWrapErrorf(ErrNotExist, message, args...)
}
