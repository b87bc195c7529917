// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"regexp"

	"code.gitea.io/safehtml/modules/log"
)

// SafeHTML settings, they are loaded once at startup and never changed afterwards
var SafeHTML = struct {
	TabWidth           int    `ini:"TAB_WIDTH"`
	LinkTarget         string `ini:"LINK_TARGET"`
	WikiListClass      string `ini:"WIKI_LIST_CLASS"`
	WikiPreFormatClass string `ini:"WIKI_PREFORMAT_CLASS"`
	WikiQuoteClass     string `ini:"WIKI_QUOTE_CLASS"`
	RegexpCacheSize    int    `ini:"REGEXP_CACHE_SIZE"`
}{
	TabWidth:           4,
	LinkTarget:         "_blank",
	WikiListClass:      "wikiList",
	WikiPreFormatClass: "wikiPreFormat",
	WikiQuoteClass:     "wikiQuote",
	RegexpCacheSize:    1000,
}

var (
	linkTargetRegexp = regexp.MustCompile(`^_(blank|self|parent|top)$`)
	cssClassRegexp   = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)
)

func loadSafeHTMLFrom(rootCfg ConfigProvider) {
	mustMapSetting(rootCfg, "safehtml", &SafeHTML)

	if SafeHTML.TabWidth < 1 || SafeHTML.TabWidth > 16 {
		log.Warn("[safehtml] TAB_WIDTH %d is out of range [1, 16], use 4", SafeHTML.TabWidth)
		SafeHTML.TabWidth = 4
	}
	if !linkTargetRegexp.MatchString(SafeHTML.LinkTarget) {
		log.Error("[safehtml] invalid LINK_TARGET: %q, default to %q", SafeHTML.LinkTarget, "_blank")
		SafeHTML.LinkTarget = "_blank"
	}
	checkClass := func(key string, class *string, defaultClass string) {
		if !cssClassRegexp.MatchString(*class) {
			log.Error("[safehtml] invalid %s: %q, default to %q", key, *class, defaultClass)
			*class = defaultClass
		}
	}
	checkClass("WIKI_LIST_CLASS", &SafeHTML.WikiListClass, "wikiList")
	checkClass("WIKI_PREFORMAT_CLASS", &SafeHTML.WikiPreFormatClass, "wikiPreFormat")
	checkClass("WIKI_QUOTE_CLASS", &SafeHTML.WikiQuoteClass, "wikiQuote")
	if SafeHTML.RegexpCacheSize < 1 {
		SafeHTML.RegexpCacheSize = 1000
	}
}
