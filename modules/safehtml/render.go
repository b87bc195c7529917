// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

import "io"

// Renderer displays a safe value, it must insert the content without escaping it again
type Renderer interface {
	Render(s SafeHTML) error
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(s SafeHTML) error

func (f RendererFunc) Render(s SafeHTML) error {
	return f(s)
}

// WriterRenderer writes the content to W
type WriterRenderer struct {
	W io.Writer
}

func (r WriterRenderer) Render(s SafeHTML) error {
	_, err := io.WriteString(r.W, s.content)
	return err
}
