// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// parseSingleText checks that s is parsed as one text node and returns its text
func parseSingleText(t *testing.T, s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	require.Equal(t, html.TextToken, z.Next(), "input: %q", s)
	text := z.Token().Data
	require.Equal(t, html.ErrorToken, z.Next(), "input: %q", s)
	return text
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;&amp;&#39;", Escape(`<a href="x">&'`))
	assert.Equal(t, "plain text", Escape("plain text"))
	assert.Equal(t, "", Escape(""))
	assert.Equal(t, "中文 &amp; ü", Escape("中文 & ü"))
}

func TestEscapeProperties(t *testing.T) {
	inputs := []string{
		`<script>alert("x")</script>`,
		`a & b < c > d "e" 'f'`,
		`&amp; is already an entity`,
		`"><img src=x onerror=alert(1)>`,
		"multi\nline\ttext & more",
		`&&&<<<>>>"""`,
	}
	for _, input := range inputs {
		out := NewBuilder().Append(input).SafeHTML().String()
		assert.NotContains(t, out, "<")
		assert.NotContains(t, out, ">")
		assert.NotContains(t, out, `"`)
		for i := strings.IndexByte(out, '&'); i >= 0; i = strings.IndexByte(out, '&') {
			out = out[i+1:]
			assert.Regexp(t, `^(amp|lt|gt|quot|#39);`, out)
		}
		assert.Equal(t, input, parseSingleText(t, NewBuilder().Append(input).SafeHTML().String()))
	}
}

func TestEscapeIsNotIdempotent(t *testing.T) {
	once := NewBuilder().Append("a & <b>").SafeHTML().String()
	twice := NewBuilder().Append(once).SafeHTML().String()
	assert.Equal(t, "a &amp; &lt;b&gt;", once)
	assert.Equal(t, "a &amp;amp; &amp;lt;b&amp;gt;", twice)
	assert.NotEqual(t, once, twice)
}

func TestAppendPreformatted(t *testing.T) {
	test := func(input, expected string) {
		assert.Equal(t, expected, NewBuilder().AppendPreformatted(input).SafeHTML().String(), "input: %q", input)
	}
	test("a b", "a b")
	test("a  b", "a &nbsp;b")
	test(" x", "&nbsp;x")
	test("a\nb", "a<br />b")
	test("a\r\nb\rc", "a<br />b<br />c")
	test("\tx", "&nbsp;&nbsp;&nbsp;&nbsp;x")
	test("a\n  b", "a<br />&nbsp;&nbsp;b")
	test("<x> & \"y\"", "&lt;x&gt; &amp; &quot;y&quot;")
	test("ü  中", "ü &nbsp;中")

	b := NewBuilder()
	b.TabWidth = 2
	assert.Equal(t, "&nbsp;&nbsp;x", b.AppendPreformatted("\tx").SafeHTML().String())
}
