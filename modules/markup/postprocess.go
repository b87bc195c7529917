// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package markup

import (
	"strings"

	"code.gitea.io/safehtml/modules/container"
	"code.gitea.io/safehtml/modules/log"
	"code.gitea.io/safehtml/modules/safehtml"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// the text of these elements is never processed
var skipProcessElements = container.SetOf("a", "code", "pre", "script", "style", "textarea")

// PostProcess applies the rule set to the text nodes of an HTML document, the text
// of links and code blocks is left alone
func PostProcess(s safehtml.SafeHTML, rs *safehtml.RuleSet) (safehtml.SafeHTML, error) {
	if rs.Len() == 0 || s.IsEmpty() {
		return s, nil
	}

	body := &html.Node{Type: html.ElementNode, Data: atom.Body.String(), DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s.String()), body)
	if err != nil {
		return s, err
	}
	for _, node := range nodes {
		body.AppendChild(node)
	}

	visitNode(body, rs)

	var buf strings.Builder
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return s, err
		}
	}
	return safehtml.AsIs(buf.String()), nil
}

func visitNode(node *html.Node, rs *safehtml.RuleSet) {
	switch node.Type {
	case html.TextNode:
		processTextNode(node, rs)
		return
	case html.ElementNode:
		if skipProcessElements.Contains(node.Data) {
			return
		}
	}
	for c := node.FirstChild; c != nil; {
		next := c.NextSibling
		visitNode(c, rs)
		c = next
	}
}

func processTextNode(node *html.Node, rs *safehtml.RuleSet) {
	escaped := safehtml.FromText(node.Data)
	out := rs.Apply(escaped)
	if out == escaped {
		return
	}
	nodes, err := html.ParseFragment(strings.NewReader(out.String()), node.Parent)
	if err != nil {
		log.Error("Unable to parse the processed text %q: %v", out, err)
		return
	}
	for _, n := range nodes {
		node.Parent.InsertBefore(n, node)
	}
	node.Parent.RemoveChild(node)
}
