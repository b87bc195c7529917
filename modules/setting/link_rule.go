// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"strings"

	"code.gitea.io/safehtml/modules/log"
)

// LinkRule is a find/replace rule configured in a [rule.NAME] section.
// Exactly one of Link (a link template) and HTML (a trusted replacement template) is set,
// both can reference the groups of Match with $n.
type LinkRule struct {
	Name    string `json:"name"`
	Match   string `json:"match"`
	Link    string `json:"link,omitempty"`
	HTML    string `json:"html,omitempty"`
	Enabled bool   `json:"enabled"`
}

// LinkRules are the configured rules, in the order of precedence
var LinkRules []LinkRule

func loadLinkRulesFrom(rootCfg ConfigProvider) {
	LinkRules = make([]LinkRule, 0, 10)
	for _, sec := range rootCfg.Section("rule").ChildSections() {
		name := strings.TrimPrefix(sec.Name(), "rule.")
		if rule, ok := createLinkRule(name, sec); ok {
			LinkRules = append(LinkRules, rule)
		}
	}
}

func createLinkRule(name string, sec ConfigSection) (LinkRule, bool) {
	rule := LinkRule{
		Name:    name,
		Match:   sec.Key("MATCH").Value(),
		Link:    sec.Key("LINK").Value(),
		HTML:    sec.Key("HTML").Value(),
		Enabled: sec.Key("ENABLED").MustBool(true),
	}
	if name == "" || strings.Contains(name, ".") {
		log.Error("Invalid rule name %q in [%s], ignored", name, sec.Name())
		return rule, false
	}
	if rule.Match == "" {
		log.Error("Missing required key MATCH from rule.%s, ignored", name)
		return rule, false
	}
	if (rule.Link == "") == (rule.HTML == "") {
		log.Error("rule.%s must define exactly one of LINK and HTML, ignored", name)
		return rule, false
	}
	return rule, true
}
