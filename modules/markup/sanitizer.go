// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package markup

import (
	"regexp"
	"sync"

	"code.gitea.io/safehtml/modules/safehtml"
	"code.gitea.io/safehtml/modules/setting"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer is a protection wrapper of *bluemonday.Policy which does not allow
// any modification to the underlying policies once it's been created.
type Sanitizer struct {
	policy *bluemonday.Policy
}

var _ safehtml.Sanitizer = (*Sanitizer)(nil)

var (
	defaultSanitizer     *Sanitizer
	defaultSanitizerOnce sync.Once

	cssClassesRegexp = regexp.MustCompile(`^[\w -]+$`)
	linkTargetRegexp = regexp.MustCompile(`^_(blank|self|parent|top)$`)
)

// GetDefaultSanitizer returns the sanitizer built from the settings, it is created on first use
func GetDefaultSanitizer() *Sanitizer {
	defaultSanitizerOnce.Do(func() {
		defaultSanitizer = NewSanitizer(setting.ExternalSanitizerRules)
	})
	return defaultSanitizer
}

// NewSanitizer creates a sanitizer allowing user generated content, the classes and targets
// produced by the safehtml builders, and the extra rules
func NewSanitizer(rules []setting.MarkupSanitizerRule) *Sanitizer {
	policy := bluemonday.UGCPolicy()

	// wiki blocks and linkified URLs
	policy.AllowAttrs("class").Matching(cssClassesRegexp).OnElements("div", "span", "p", "ul", "ol", "li", "blockquote", "code", "pre")
	policy.AllowAttrs("target").Matching(linkTargetRegexp).OnElements("a")

	st := &Sanitizer{policy: policy}
	st.addSanitizerRules(policy, rules)
	return st
}

func (st *Sanitizer) addSanitizerRules(policy *bluemonday.Policy, rules []setting.MarkupSanitizerRule) {
	for _, rule := range rules {
		if rule.AllowDataURIImages {
			policy.AllowDataURIImages()
		}
		if rule.Element != "" {
			if rule.Regexp != nil {
				policy.AllowAttrs(rule.AllowAttr).Matching(rule.Regexp).OnElements(rule.Element)
			} else {
				policy.AllowAttrs(rule.AllowAttr).OnElements(rule.Element)
			}
		}
	}
}

// Sanitize removes the elements and attributes the policy doesn't allow
func (st *Sanitizer) Sanitize(s string) string {
	return st.policy.Sanitize(s)
}

// SanitizeHTML sanitizes s and marks the result as safe
func (st *Sanitizer) SanitizeHTML(s string) safehtml.SafeHTML {
	return safehtml.AsIs(st.policy.Sanitize(s))
}
