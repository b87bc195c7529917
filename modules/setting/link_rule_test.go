// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"testing"

	"code.gitea.io/safehtml/modules/log"
	"code.gitea.io/safehtml/modules/testlogger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLinkRules(t *testing.T) {
	oldRules := LinkRules
	defer func() {
		LinkRules = oldRules
	}()

	cfg, err := NewConfigProviderFromData(`
[rule.issue]
MATCH = #(\d+)
LINK = /issues/$1

[rule.bold]
MATCH = \*(\w+)\*
HTML = <b>$1</b>
ENABLED = false

[rule.nomatch]
LINK = /x

[rule.both]
MATCH = x
LINK = /x
HTML = <i>x</i>

[rule.neither]
MATCH = y

[rule.change]
MATCH = (I[0-9a-f]{8,40}); comment
LINK = https://review.example.com/#/q/$1
`)
	require.NoError(t, err)
	tl := testlogger.Redirect(t, log.WARN)
	loadLinkRulesFrom(cfg)
	assert.True(t, tl.Contains("[E] Missing required key MATCH from rule.nomatch"))
	assert.True(t, tl.Contains("[E] rule.both must define exactly one of LINK and HTML"))
	assert.True(t, tl.Contains("[E] rule.neither must define exactly one of LINK and HTML"))

	require.Len(t, LinkRules, 3)
	assert.Equal(t, LinkRule{Name: "issue", Match: `#(\d+)`, Link: "/issues/$1", Enabled: true}, LinkRules[0])
	assert.Equal(t, LinkRule{Name: "bold", Match: `\*(\w+)\*`, HTML: "<b>$1</b>", Enabled: false}, LinkRules[1])
	assert.Equal(t, "change", LinkRules[2].Name)
	assert.Equal(t, "(I[0-9a-f]{8,40}); comment", LinkRules[2].Match)
	assert.Equal(t, "https://review.example.com/#/q/$1", LinkRules[2].Link)
}
