// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package markup

import (
	"code.gitea.io/safehtml/modules/safehtml"
	"code.gitea.io/safehtml/modules/setting"
)

// RenderOptions controls how RenderText formats a text
type RenderOptions struct {
	// Preformatted keeps the line breaks and the indentation of the text, it is ignored by Wikify
	Preformatted bool

	// Wikify formats the paragraphs, lists and quotes of the text
	Wikify bool

	// Rules are applied in a single pass, nil links the bare URLs only
	Rules *safehtml.RuleSet

	// Markdown renders the text as markdown, the rules are then applied to the text of the rendered document
	Markdown safehtml.MarkdownConverter
}

// WikiStyles returns the wiki classes of the settings
func WikiStyles() safehtml.WikiStyles {
	return safehtml.WikiStyles{
		List:      setting.SafeHTML.WikiListClass,
		PreFormat: setting.SafeHTML.WikiPreFormatClass,
		Quote:     setting.SafeHTML.WikiQuoteClass,
	}
}

// RenderText converts a raw text to HTML
func RenderText(text string, opts RenderOptions) (safehtml.SafeHTML, error) {
	rules := opts.Rules
	if rules == nil {
		rules = safehtml.MustRuleSet(safehtml.NewLinkifyRule(setting.SafeHTML.LinkTarget))
	}

	if opts.Markdown != nil {
		out, err := safehtml.Markdown(text, opts.Markdown)
		if err != nil {
			return safehtml.SafeHTML{}, err
		}
		return PostProcess(out, rules)
	}

	b := safehtml.NewBuilder()
	b.TabWidth = setting.SafeHTML.TabWidth
	if opts.Preformatted && !opts.Wikify {
		b.AppendPreformatted(text)
	} else {
		b.Append(text)
	}
	out := rules.Apply(b.SafeHTML())
	if opts.Wikify {
		out = out.WikifyWith(WikiStyles())
	}
	return out, nil
}
