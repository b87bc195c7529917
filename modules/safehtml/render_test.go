// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderer(t *testing.T) {
	var buf bytes.Buffer
	var r Renderer = WriterRenderer{W: &buf}
	assert.NoError(t, r.Render(NewBuilder().OpenDiv().Append("<x>").CloseDiv().SafeHTML()))
	assert.Equal(t, "<div>&lt;x&gt;</div>", buf.String())

	var got SafeHTML
	r = RendererFunc(func(s SafeHTML) error {
		got = s
		return nil
	})
	assert.NoError(t, r.Render(AsIs("<b>")))
	assert.Equal(t, "<b>", got.String())
}
