// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"testing"

	"code.gitea.io/safehtml/modules/log"
	"code.gitea.io/safehtml/modules/testlogger"
	"code.gitea.io/safehtml/modules/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMarkupSanitizerRules(t *testing.T) {
	oldRules := ExternalSanitizerRules
	defer func() {
		ExternalSanitizerRules = oldRules
	}()

	cfg, err := NewConfigProviderFromData(`
[markup.sanitizer.img]
ELEMENT = img
ALLOW_ATTR = src
REGEXP = ^https://

[markup.sanitizer.data]
ALLOW_DATA_URI_IMAGES = true

[markup.sanitizer.broken]
ELEMENT = span

[markup.sanitizer.badregexp]
ELEMENT = span
ALLOW_ATTR = class
REGEXP = (

[markup.sanitizer.empty]

[markup.other]
KEY = value
`)
	require.NoError(t, err)
	tl := testlogger.Redirect(t, log.WARN)
	loadMarkupFrom(cfg)
	assert.True(t, tl.Contains("[E] Invalid [markup.sanitizer.broken], ignored: both ELEMENT and ALLOW_ATTR must be defined"))
	assert.True(t, tl.Contains("[E] Invalid [markup.sanitizer.badregexp], ignored: error parsing regexp"))
	assert.True(t, tl.Contains("[E] Invalid [markup.sanitizer.empty], ignored: ELEMENT and ALLOW_ATTR, or ALLOW_DATA_URI_IMAGES must be defined"))
	assert.True(t, tl.Contains("[W] Unknown section [markup.other] ignored"))

	require.Len(t, ExternalSanitizerRules, 2)
	assert.Equal(t, "img", ExternalSanitizerRules[0].Element)
	assert.Equal(t, "src", ExternalSanitizerRules[0].AllowAttr)
	require.NotNil(t, ExternalSanitizerRules[0].Regexp)
	assert.True(t, ExternalSanitizerRules[0].Regexp.MatchString("https://x.com/a.png"))
	assert.False(t, ExternalSanitizerRules[0].AllowDataURIImages)
	assert.True(t, ExternalSanitizerRules[1].AllowDataURIImages)
	assert.Empty(t, ExternalSanitizerRules[1].Element)
}

func TestParseSanitizerRule(t *testing.T) {
	cfg, err := NewConfigProviderFromData(`
[markup.sanitizer.x]
ELEMENT = div
`)
	require.NoError(t, err)
	_, err = parseSanitizerRule(cfg.Section("markup.sanitizer.x"))
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}
