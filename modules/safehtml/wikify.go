// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package safehtml

import "strings"

// WikiStyles are the CSS classes of the blocks produced by Wikify
type WikiStyles struct {
	List      string
	PreFormat string
	Quote     string
}

// DefaultWikiStyles are the classes used by Wikify
var DefaultWikiStyles = WikiStyles{
	List:      "wikiList",
	PreFormat: "wikiPreFormat",
	Quote:     "wikiQuote",
}

// Wikify formats plain text paragraphs, see WikifyWith
func (s SafeHTML) Wikify() SafeHTML {
	return s.WikifyWith(DefaultWikiStyles)
}

// WikifyWith formats the paragraphs (separated by a blank line) of an escaped plain text:
//   - a paragraph starting with "> " becomes a quote, its content is formatted again
//   - a paragraph with an indented line keeps its lines, each one in a preformatted span
//   - a paragraph with a line starting with "- " or "* " becomes a bullet list
//   - any other paragraph becomes a <p>
func (s SafeHTML) WikifyWith(styles WikiStyles) SafeHTML {
	b := NewBuilder()
	content := strings.ReplaceAll(s.content, "\r\n", "\n")
	for _, p := range strings.Split(content, "\n\n") {
		p = strings.Trim(p, "\n")
		if p == "" {
			continue
		}
		wikifyParagraph(b, p, styles)
	}
	return b.SafeHTML()
}

func wikifyParagraph(b *Builder, p string, styles WikiStyles) {
	switch {
	case isQuote(p):
		wikifyQuote(b, p, styles)
	case isPreFormat(p):
		b.OpenParagraph()
		for _, line := range strings.Split(p, "\n") {
			b.OpenSpan().SetStyleName(styles.PreFormat).AppendAsIs(line).CloseSpan().BR()
		}
		b.CloseParagraph()
	case isList(p):
		wikifyList(b, p, styles)
	default:
		b.OpenParagraph().AppendAsIs(p).CloseParagraph()
	}
}

func wikifyList(b *Builder, p string, styles WikiStyles) {
	inList, inParagraph := false, false
	for _, line := range strings.Split(p, "\n") {
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
			if !inList {
				if inParagraph {
					b.CloseParagraph()
					inParagraph = false
				}
				b.OpenElement("ul").SetStyleName(styles.List)
				inList = true
			}
			line = strings.TrimSpace(line[1:])
		} else if !inList {
			// text before the first bullet
			if inParagraph {
				b.AppendAsIs(" ")
			} else {
				b.OpenParagraph()
				inParagraph = true
			}
			b.AppendAsIs(line)
			continue
		}
		b.OpenElement("li").AppendAsIs(line).CloseElement("li")
	}
	if inList {
		b.CloseElement("ul")
	} else if inParagraph {
		b.CloseParagraph()
	}
}

func wikifyQuote(b *Builder, p string, styles WikiStyles) {
	lines := strings.Split(p, "\n")
	for i, line := range lines {
		if rest, ok := strings.CutPrefix(line, "&gt; "); ok {
			lines[i] = rest
		} else if rest, ok := strings.CutPrefix(line, " &gt; "); ok {
			lines[i] = rest
		} else if line == "&gt;" {
			lines[i] = ""
		}
	}
	b.OpenElement("blockquote").SetStyleName(styles.Quote)
	b.AppendHTML(AsIs(strings.Join(lines, "\n")).WikifyWith(styles))
	b.CloseElement("blockquote")
}

func isQuote(p string) bool {
	return strings.HasPrefix(p, "&gt; ") || strings.HasPrefix(p, " &gt; ")
}

func isPreFormat(p string) bool {
	return strings.HasPrefix(p, " ") || strings.HasPrefix(p, "\t") ||
		strings.Contains(p, "\n ") || strings.Contains(p, "\n\t")
}

func isList(p string) bool {
	return strings.HasPrefix(p, "- ") || strings.HasPrefix(p, "* ") ||
		strings.Contains(p, "\n- ") || strings.Contains(p, "\n* ")
}
