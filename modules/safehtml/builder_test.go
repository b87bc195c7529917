// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

import (
	"testing"

	"code.gitea.io/safehtml/modules/util"

	"github.com/stretchr/testify/assert"
)

func TestBuilderAppendAsIs(t *testing.T) {
	for _, s := range []string{"", "<b>x</b>", "&amp;", "<script>raw</script>", "a\nb"} {
		assert.Equal(t, s, NewBuilder().AppendAsIs(s).SafeHTML().String())
	}
	assert.Equal(t, "<i>&amp;</i>", NewBuilder().AppendHTML(AsIs("<i>&amp;</i>")).SafeHTML().String())
}

func TestBuilderElements(t *testing.T) {
	b := NewBuilder().OpenDiv().SetStyleName("box").Append("a<b").CloseDiv()
	assert.NoError(t, b.Err())
	assert.Equal(t, `<div class="box">a&lt;b</div>`, b.SafeHTML().String())

	b = NewBuilder().OpenAnchor().SetAttribute("href", "/path?a=1&b=2").SetAttribute("title", `"><script>`).Append("x").CloseAnchor()
	assert.NoError(t, b.Err())
	assert.Equal(t, `<a href="/path?a=1&amp;b=2" title="&quot;&gt;&lt;script&gt;">x</a>`, b.SafeHTML().String())

	b = NewBuilder().OpenElement("td").SetAttributeInt("colspan", 2).AppendInt(42).CloseElement("td").BR()
	assert.Equal(t, `<td colspan="2">42</td><br />`, b.SafeHTML().String())

	b = NewBuilder().OpenParagraph().Appendf("<b>%s</b>", "<i>").CloseParagraph()
	assert.Equal(t, "<p><b>&lt;i&gt;</b></p>", b.SafeHTML().String())

	b = NewBuilder().OpenSpan().SetAttribute("id", "a").SetAttribute("id", "b").CloseSpan()
	assert.Equal(t, `<span id="b"></span>`, b.SafeHTML().String())
}

func TestBuilderStyleNames(t *testing.T) {
	b := NewBuilder().OpenSpan().AddStyleName("a").AddStyleName("b")
	assert.Equal(t, `<span class="a b">`, b.SafeHTML().String())
	b.SetStyleName("c")
	assert.Equal(t, `<span class="c">`, b.SafeHTML().String())
}

func TestBuilderSafeHTMLIdempotent(t *testing.T) {
	b := NewBuilder().OpenDiv().SetStyleName("x")
	first := b.SafeHTML()
	assert.Equal(t, first, b.SafeHTML())
	assert.Equal(t, len(first.String()), b.Len())

	// the pending start tag can still get attributes
	b.SetAttribute("id", "y")
	assert.Equal(t, `<div class="x" id="y">`, b.SafeHTML().String())
	b.Append("t").CloseDiv()
	assert.Equal(t, `<div class="x" id="y">t</div>`, b.SafeHTML().String())
	assert.Equal(t, b.SafeHTML(), b.SafeHTML())
}

func TestBuilderRejectsUnsafeNames(t *testing.T) {
	b := NewBuilder().OpenElement("script").Append("x").CloseElement("script")
	assert.ErrorIs(t, b.Err(), ErrUnsafeName)
	assert.ErrorIs(t, b.Err(), util.ErrInvalidArgument)
	assert.Equal(t, "x", b.SafeHTML().String())

	b = NewBuilder().OpenDiv().SetAttribute("onclick", "alert(1)").CloseDiv()
	assert.ErrorIs(t, b.Err(), ErrUnsafeName)
	assert.Equal(t, "<div></div>", b.SafeHTML().String())

	b = NewBuilder().OpenAnchor().SetAttribute("target", "evil").CloseAnchor()
	assert.ErrorIs(t, b.Err(), ErrUnsafeName)
	assert.Equal(t, "<a></a>", b.SafeHTML().String())

	b = NewBuilder().Append("x").SetAttribute("class", "y")
	assert.ErrorIs(t, b.Err(), ErrNoOpenElement)
	assert.Equal(t, "x", b.SafeHTML().String())
}

func TestBuilderRejectsUnsafeURLs(t *testing.T) {
	for _, href := range []string{"javascript:alert(1)", "JavaScript:alert(1)", "data:text/html,x", "vbscript:x", " javascript:x"} {
		b := NewBuilder().OpenAnchor().SetAttribute("href", href).CloseAnchor()
		assert.ErrorIs(t, b.Err(), ErrUnsafeURL, "href: %q", href)
		assert.Equal(t, "<a></a>", b.SafeHTML().String())
	}
	for _, href := range []string{"http://x.com", "HTTPS://x.com", "mailto:a@b.c", "/rel/path", "a/b:c", "?q=a:b", "#frag"} {
		assert.True(t, IsSafeURL(href), "href: %q", href)
	}
}

func TestBuilderStickyError(t *testing.T) {
	b := NewBuilder().OpenElement("iframe").OpenElement("object")
	assert.EqualError(t, b.Err(), `tag or attribute name is not allowed: element "iframe"`)
	assert.True(t, b.IsEmpty())
}
