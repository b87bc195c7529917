// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package markup

import (
	"regexp"
	"testing"

	"code.gitea.io/safehtml/modules/setting"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer(t *testing.T) {
	st := NewSanitizer(nil)
	assert.Equal(t, "<b>x</b>", st.Sanitize(`<script>alert(1)</script><b>x</b>`))
	assert.Equal(t, "x", st.Sanitize(`<a href="javascript:alert(1)">x</a>`))
	assert.Equal(t, `<ul class="wikiList"><li>a</li></ul>`, st.Sanitize(`<ul class="wikiList" onclick="x()"><li>a</li></ul>`))
	assert.Equal(t, `<blockquote class="wikiQuote">q</blockquote>`, st.SanitizeHTML(`<blockquote class="wikiQuote">q</blockquote>`).String())
	assert.Equal(t, `<span>y</span>`, st.Sanitize(`<span class="a&quot;b">y</span>`))

	out := st.Sanitize(`<a href="https://x.com" target="_blank">x</a>`)
	assert.Contains(t, out, `href="https://x.com"`)
	assert.Contains(t, out, `target="_blank"`)
	assert.NotContains(t, st.Sanitize(`<a href="https://x.com" target="frame">x</a>`), "frame")
}

func TestSanitizerRules(t *testing.T) {
	testCases := []string{
		`<img src="data:image/png;base64,iVBORw0KGgo=" alt="x">`,
		`<span data-id="abc">x</span>`,
		`<span data-id="123">x</span>`,
	}

	st := NewSanitizer(nil)
	assert.NotContains(t, st.Sanitize(testCases[0]), "data:image")
	assert.Equal(t, "<span>x</span>", st.Sanitize(testCases[1]))

	st = NewSanitizer([]setting.MarkupSanitizerRule{
		{AllowDataURIImages: true},
		{Element: "span", AllowAttr: "data-id", Regexp: regexp.MustCompile(`^[a-z]+$`)},
	})
	assert.Contains(t, st.Sanitize(testCases[0]), "data:image/png;base64,iVBORw0KGgo=")
	assert.Equal(t, testCases[1], st.Sanitize(testCases[1]))
	assert.Equal(t, "<span>x</span>", st.Sanitize(testCases[2]))

	assert.Same(t, GetDefaultSanitizer(), GetDefaultSanitizer())
}
