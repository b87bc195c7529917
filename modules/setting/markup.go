// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"regexp"
	"strings"

	"code.gitea.io/safehtml/modules/log"
	"code.gitea.io/safehtml/modules/util"
)

// ExternalSanitizerRules extend the policy used for rendered markdown,
// they come from the [markup.sanitizer.*] sections
var ExternalSanitizerRules []MarkupSanitizerRule

// MarkupSanitizerRule allows AllowAttr on Element, optionally only when the value matches Regexp.
// A rule can also switch on data URI images.
type MarkupSanitizerRule struct {
	Element            string
	AllowAttr          string
	Regexp             *regexp.Regexp
	AllowDataURIImages bool
}

func loadMarkupFrom(rootCfg ConfigProvider) {
	ExternalSanitizerRules = nil
	for _, sec := range rootCfg.Section("markup").ChildSections() {
		name := strings.TrimPrefix(sec.Name(), "markup.")
		if name != "sanitizer" && !strings.HasPrefix(name, "sanitizer.") {
			log.Warn("Unknown section [%s] ignored", sec.Name())
			continue
		}
		rule, err := parseSanitizerRule(sec)
		if err != nil {
			log.Error("Invalid [%s], ignored: %v", sec.Name(), err)
			continue
		}
		ExternalSanitizerRules = append(ExternalSanitizerRules, rule)
	}
}

func parseSanitizerRule(sec ConfigSection) (rule MarkupSanitizerRule, err error) {
	hasDataURI := sec.HasKey("ALLOW_DATA_URI_IMAGES")
	hasAttr := sec.HasKey("ELEMENT") || sec.HasKey("ALLOW_ATTR")
	if !hasDataURI && !hasAttr {
		return rule, errMissingKeys("ELEMENT and ALLOW_ATTR, or ALLOW_DATA_URI_IMAGES")
	}
	rule.AllowDataURIImages = sec.Key("ALLOW_DATA_URI_IMAGES").MustBool(false)
	if !hasAttr {
		return rule, nil
	}

	rule.Element = sec.Key("ELEMENT").Value()
	rule.AllowAttr = sec.Key("ALLOW_ATTR").Value()
	if rule.Element == "" || rule.AllowAttr == "" {
		return rule, errMissingKeys("both ELEMENT and ALLOW_ATTR")
	}
	if expr := sec.Key("REGEXP").Value(); expr != "" {
		// the sanitizer policy takes a compiled std regexp
		if rule.Regexp, err = regexp.Compile(expr); err != nil {
			return rule, err
		}
	}
	return rule, nil
}

func errMissingKeys(keys string) error {
	return util.NewInvalidArgumentErrorf("%s must be defined", keys)
}
