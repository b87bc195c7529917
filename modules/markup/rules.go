// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package markup

import (
	"errors"
	"fmt"

	"code.gitea.io/safehtml/modules/log"
	"code.gitea.io/safehtml/modules/safehtml"
	"code.gitea.io/safehtml/modules/setting"
)

// NewLinkRules creates the rules of the enabled link rules, in order
func NewLinkRules(linkRules []setting.LinkRule) (rules []safehtml.FindReplace, names []string, err error) {
	for _, lr := range linkRules {
		if !lr.Enabled {
			log.Debug("Link rule %q is disabled", lr.Name)
			continue
		}
		var rule safehtml.FindReplace
		if lr.Link != "" {
			rule, err = safehtml.NewLinkRule(lr.Match, lr.Link)
		} else {
			rule, err = safehtml.NewRegexRule(lr.Match, lr.HTML)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("rule.%s: %w", lr.Name, err)
		}
		rules = append(rules, rule)
		names = append(names, lr.Name)
	}
	return rules, names, nil
}

// NewRuleSetFromSettings creates the rule set rendering plain text: bare URLs are linked with
// linkTarget, then the enabled link rules apply, all in a single pass
func NewRuleSetFromSettings(linkRules []setting.LinkRule, linkTarget string) (*safehtml.RuleSet, error) {
	rules, names, err := NewLinkRules(linkRules)
	if err != nil {
		return nil, err
	}
	rs, err := safehtml.NewRuleSet(append([]safehtml.FindReplace{safehtml.NewLinkifyRule(linkTarget)}, rules...)...)
	if err != nil {
		var cfgErr *safehtml.ConfigurationError
		if errors.As(err, &cfgErr) && cfgErr.Index > 0 {
			return nil, fmt.Errorf("rule.%s: %w", names[cfgErr.Index-1], err)
		}
		return nil, err
	}
	log.Debug("Rule set created with %d link rules", len(rules))
	return rs, nil
}
