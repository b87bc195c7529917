// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

import (
	"fmt"
	"strconv"
	"strings"

	"code.gitea.io/safehtml/modules/container"
)

var (
	allowedTags = container.SetOf(
		"div", "span", "p", "a", "b", "i", "em", "strong", "code", "pre", "br", "ul", "ol", "li", "blockquote",
		"table", "thead", "tbody", "tr", "th", "td",
	)
	allowedAttrs = container.SetOf(
		"class", "id", "title", "href", "target", "rel", "dir", "lang", "colspan", "rowspan", "width", "height",
	)
	allowedTargets = container.SetOf("_blank", "_self", "_parent", "_top")
)

type attribute struct {
	name, value string
}

// startTag is an element whose start tag is not terminated yet, attributes can still be added
type startTag struct {
	name  string
	attrs []attribute
}

func (t *startTag) writeTo(w *strings.Builder) {
	w.WriteByte('<')
	w.WriteString(t.name)
	for _, a := range t.attrs {
		w.WriteByte(' ')
		w.WriteString(a.name)
		w.WriteString(`="`)
		writeEscaped(w, a.value)
		w.WriteByte('"')
	}
	w.WriteByte('>')
}

// Builder composes a SafeHTML, raw text is always escaped.
//
// The first invalid tag, attribute or URL is kept as a sticky error returned by Err,
// the offending call emits nothing. A Builder must not be used by concurrent writers.
type Builder struct {
	// TabWidth is the number of &nbsp; a tab becomes in AppendPreformatted
	TabWidth int

	buf     strings.Builder
	pending *startTag
	err     error
}

// NewBuilder returns an empty Builder
func NewBuilder() *Builder {
	return &Builder{TabWidth: DefaultTabWidth}
}

func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) flush() {
	if b.pending != nil {
		b.pending.writeTo(&b.buf)
		b.pending = nil
	}
}

// Err returns the first error recorded by the builder
func (b *Builder) Err() error {
	return b.err
}

// Append escapes text and appends it
func (b *Builder) Append(text string) *Builder {
	b.flush()
	writeEscaped(&b.buf, text)
	return b
}

// AppendPreformatted escapes text and keeps its layout: line breaks become <br />,
// leading and repeated spaces become &nbsp; and tabs are expanded
func (b *Builder) AppendPreformatted(text string) *Builder {
	b.flush()
	tabWidth := b.TabWidth
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	writePreformatted(&b.buf, text, tabWidth)
	return b
}

func (b *Builder) AppendInt(v int) *Builder {
	b.flush()
	b.buf.WriteString(strconv.Itoa(v))
	return b
}

// AppendHTML appends an existing safe value without escaping it
func (b *Builder) AppendHTML(s SafeHTML) *Builder {
	return b.AppendAsIs(s.content)
}

// AppendAsIs appends html without escaping it.
//
// The precondition is not checked: html must already be safe, any markup it carries ends up in the document.
func (b *Builder) AppendAsIs(html string) *Builder {
	b.flush()
	b.buf.WriteString(html)
	return b
}

// Appendf appends Format(format, args...), the format must be a trusted constant
func (b *Builder) Appendf(format string, args ...any) *Builder {
	return b.AppendHTML(Format(format, args...))
}

// OpenElement starts a new element, its attributes can be set until something else is appended
func (b *Builder) OpenElement(tag string) *Builder {
	b.flush()
	if !allowedTags.Contains(tag) {
		b.setErr(fmt.Errorf("%w: element %q", ErrUnsafeName, tag))
		return b
	}
	b.pending = &startTag{name: tag}
	return b
}

// CloseElement ends an element
func (b *Builder) CloseElement(tag string) *Builder {
	b.flush()
	if !allowedTags.Contains(tag) {
		b.setErr(fmt.Errorf("%w: element %q", ErrUnsafeName, tag))
		return b
	}
	b.buf.WriteString("</")
	b.buf.WriteString(tag)
	b.buf.WriteByte('>')
	return b
}

// SetAttribute sets an attribute of the element opened last, replacing any previous value
func (b *Builder) SetAttribute(name, value string) *Builder {
	if b.pending == nil {
		b.setErr(fmt.Errorf("%w: attribute %q", ErrNoOpenElement, name))
		return b
	}
	if !allowedAttrs.Contains(name) {
		b.setErr(fmt.Errorf("%w: attribute %q", ErrUnsafeName, name))
		return b
	}
	switch name {
	case "href":
		if !IsSafeURL(value) {
			b.setErr(fmt.Errorf("%w: %q", ErrUnsafeURL, value))
			return b
		}
	case "target":
		if !allowedTargets.Contains(value) {
			b.setErr(fmt.Errorf("%w: target %q", ErrUnsafeName, value))
			return b
		}
	}
	for i := range b.pending.attrs {
		if b.pending.attrs[i].name == name {
			b.pending.attrs[i].value = value
			return b
		}
	}
	b.pending.attrs = append(b.pending.attrs, attribute{name: name, value: value})
	return b
}

func (b *Builder) SetAttributeInt(name string, value int) *Builder {
	return b.SetAttribute(name, strconv.Itoa(value))
}

// SetStyleName replaces the CSS classes of the open element
func (b *Builder) SetStyleName(style string) *Builder {
	return b.SetAttribute("class", style)
}

// AddStyleName adds a CSS class to the open element
func (b *Builder) AddStyleName(style string) *Builder {
	if b.pending != nil {
		for _, a := range b.pending.attrs {
			if a.name == "class" && a.value != "" {
				return b.SetAttribute("class", a.value+" "+style)
			}
		}
	}
	return b.SetAttribute("class", style)
}

func (b *Builder) OpenDiv() *Builder        { return b.OpenElement("div") }
func (b *Builder) CloseDiv() *Builder       { return b.CloseElement("div") }
func (b *Builder) OpenSpan() *Builder       { return b.OpenElement("span") }
func (b *Builder) CloseSpan() *Builder      { return b.CloseElement("span") }
func (b *Builder) OpenAnchor() *Builder     { return b.OpenElement("a") }
func (b *Builder) CloseAnchor() *Builder    { return b.CloseElement("a") }
func (b *Builder) OpenParagraph() *Builder  { return b.OpenElement("p") }
func (b *Builder) CloseParagraph() *Builder { return b.CloseElement("p") }

// BR appends a line break
func (b *Builder) BR() *Builder {
	return b.AppendAsIs("<br />")
}

func (b *Builder) render() string {
	if b.pending == nil {
		return b.buf.String()
	}
	var w strings.Builder
	w.WriteString(b.buf.String())
	b.pending.writeTo(&w)
	return w.String()
}

// Len returns the length in bytes of the content built so far
func (b *Builder) Len() int {
	return len(b.render())
}

func (b *Builder) IsEmpty() bool {
	return b.buf.Len() == 0 && b.pending == nil
}

// SafeHTML returns the content built so far, the builder stays usable.
// An element start tag which is still open is rendered terminated.
func (b *Builder) SafeHTML() SafeHTML {
	return SafeHTML{content: b.render()}
}
