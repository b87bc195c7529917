// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package markdown

import (
	"bytes"

	"code.gitea.io/safehtml/modules/markup"
	"code.gitea.io/safehtml/modules/safehtml"
	"code.gitea.io/safehtml/modules/setting"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Options of the goldmark converter
type Options struct {
	EnableGFM           bool
	EnableHardLineBreak bool
}

// Converter renders markdown with goldmark. Raw HTML of the source is omitted from the output.
type Converter struct {
	md goldmark.Markdown
}

var _ safehtml.MarkdownConverter = (*Converter)(nil)

// NewConverter creates a converter
func NewConverter(opts Options) *Converter {
	var extensions []goldmark.Extender
	if opts.EnableGFM {
		extensions = append(extensions, extension.GFM)
	}
	rendererOptions := []renderer.Option{html.WithXHTML()}
	if opts.EnableHardLineBreak {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(extensions...),
			goldmark.WithRendererOptions(rendererOptions...),
		),
	}
}

// Convert renders the markdown source
func (c *Converter) Convert(source string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// NewConverterFromSettings creates the converter configured by the [markdown] section,
// its output is sanitized unless SANITIZE is disabled
func NewConverterFromSettings() safehtml.MarkdownConverter {
	conv := NewConverter(Options{
		EnableGFM:           setting.Markdown.EnableGFM,
		EnableHardLineBreak: setting.Markdown.EnableHardLineBreak,
	})
	if !setting.Markdown.Sanitize {
		// the settings loader already warned about it
		return conv
	}
	return safehtml.Sanitized(conv, markup.GetDefaultSanitizer())
}
