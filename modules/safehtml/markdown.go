// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

// MarkdownConverter renders markdown source to HTML
type MarkdownConverter interface {
	Convert(source string) (string, error)
}

// MarkdownConverterFunc adapts a function to MarkdownConverter
type MarkdownConverterFunc func(source string) (string, error)

func (f MarkdownConverterFunc) Convert(source string) (string, error) {
	return f(source)
}

// Sanitizer removes the unsafe parts of an HTML document
type Sanitizer interface {
	Sanitize(html string) string
}

// Sanitized returns a converter whose output is passed through sanitizer
func Sanitized(conv MarkdownConverter, sanitizer Sanitizer) MarkdownConverter {
	return MarkdownConverterFunc(func(source string) (string, error) {
		out, err := conv.Convert(source)
		if err != nil {
			return "", err
		}
		return sanitizer.Sanitize(out), nil
	})
}

// Markdown renders the raw markdown source with conv and wraps the result in a <div>.
//
// The output of conv is trusted as is. A converter which may let raw HTML through
// must be wrapped with Sanitized.
func Markdown(source string, conv MarkdownConverter) (SafeHTML, error) {
	out, err := conv.Convert(source)
	if err != nil {
		return SafeHTML{}, err
	}
	return NewBuilder().OpenDiv().AppendAsIs(out).CloseDiv().SafeHTML(), nil
}

// Markdownify is Markdown with the content as the source. The content is escaped text,
// entities render as the characters they stand for but markdown syntax made of "<", ">" or "&"
// (quotes, autolinks, code spans containing them) is lost. Raw text should go through Markdown.
func (s SafeHTML) Markdownify(conv MarkdownConverter) (SafeHTML, error) {
	out, err := Markdown(s.content, conv)
	if err != nil {
		return s, err
	}
	return out, nil
}
