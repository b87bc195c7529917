// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"code.gitea.io/safehtml/modules/log"
)

// Markdown settings
var Markdown = struct {
	EnableGFM           bool `ini:"ENABLE_GFM"`
	EnableHardLineBreak bool `ini:"ENABLE_HARD_LINE_BREAK"`
	Sanitize            bool `ini:"SANITIZE"`
}{
	EnableGFM:           true,
	EnableHardLineBreak: false,
	Sanitize:            true,
}

func loadMarkdownFrom(rootCfg ConfigProvider) {
	mustMapSetting(rootCfg, "markdown", &Markdown)
	if !Markdown.Sanitize {
		log.Warn("[markdown] SANITIZE is disabled, the output of the markdown renderer will be trusted as-is")
	}
}
