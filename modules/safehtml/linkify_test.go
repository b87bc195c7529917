// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkify(t *testing.T) {
	link := func(href string) string {
		return `<a href="` + href + `" target="_blank">` + href + `</a>`
	}
	test := func(input, expected string) {
		assert.Equal(t, expected, AsIs(input).Linkify().String(), "input: %q", input)
	}

	test("see http://example.com/a(b) now", `see <a href="http://example.com/a(b)" target="_blank">http://example.com/a(b)</a> now`)
	test("&lt;a href=http://x.com&gt;", "&lt;a href="+link("http://x.com")+"&gt;")
	test("visit https://gitea.io.", "visit "+link("https://gitea.io")+".")
	test("http://a.com, http://b.com", link("http://a.com")+", "+link("http://b.com"))
	test("http://x.com/?a=1&amp;b=2", link("http://x.com/?a=1&amp;b=2"))
	test("(http://x.com/path)", "("+link("http://x.com/path")+")")
	test("http://x.com/v1.2/file", link("http://x.com/v1.2/file"))
	test("http://x.com/a(b)(c)d", link("http://x.com/a(b)(c)d"))
	test("line\nhttp://x.com\nnext", "line\n"+link("http://x.com")+"\nnext")

	// not links
	test("http://a", "http://a")
	test("ftp://example.com", "ftp://example.com")
	test("no links here", "no links here")
	test("", "")
}

func TestLinkifyTarget(t *testing.T) {
	assert.Equal(t, `<a href="http://x.com" target="_self">http://x.com</a>`, AsIs("http://x.com").LinkifyTarget("_self").String())
	assert.Equal(t, `<a href="http://x.com" target="a$1&quot;">http://x.com</a>`, AsIs("http://x.com").LinkifyTarget(`a$1"`).String())
}

func TestLinkifyRuleSet(t *testing.T) {
	// the link pattern can be combined with other rules
	rs := MustRuleSet(
		NewFuncRule(LinkPattern(), func(input string) (SafeHTML, error) {
			return NewBuilder().OpenAnchor().SetAttribute("href", input).AppendAsIs(input).CloseAnchor().SafeHTML(), nil
		}),
		mustRegexRule(t, "cat", "<b>cat</b>"),
	)
	assert.Equal(t, `<b>cat</b>: <a href="https://x.com/cat">https://x.com/cat</a> <b>cat</b>`, rs.Apply(AsIs("cat: https://x.com/cat cat")).String())
}

func TestLinkifyRule(t *testing.T) {
	rs := MustRuleSet(NewLinkifyRule("_blank"), mustRegexRule(t, `#(\d+)`, `<b>$1</b>`))
	assert.Equal(t, `<a href="http://x.com/#12" target="_blank">http://x.com/#12</a> <b>12</b>`, rs.Apply(AsIs("http://x.com/#12 #12")).String())
	assert.Equal(t, `<a href="http://x.com/?a=1&amp;b=2" target="_blank">http://x.com/?a=1&amp;b=2</a>`, rs.Apply(AsIs("http://x.com/?a=1&amp;b=2")).String())

	// a "." kept inside the URL because text follows it
	assert.Equal(t, `(see <a href="http://example.com/a." target="_blank">http://example.com/a.</a>)`, rs.Apply(AsIs("(see http://example.com/a.)")).String())
	assert.Equal(t, `<a href="http://x.com/x." target="_blank">http://x.com/x.</a>&lt;b&gt;`, rs.Apply(AsIs("http://x.com/x.&lt;b&gt;")).String())
	assert.Equal(t, AsIs("(see http://example.com/a.)").Linkify(), rs.Apply(AsIs("(see http://example.com/a.)")))

	// an invalid target rejects every link
	rs = MustRuleSet(NewLinkifyRule(`"evil`))
	assert.Equal(t, "http://x.com", rs.Apply(AsIs("http://x.com")).String())
}
