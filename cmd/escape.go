// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"code.gitea.io/safehtml/modules/safehtml"
	"code.gitea.io/safehtml/modules/setting"

	"github.com/urfave/cli/v2"
)

// CmdEscape represents the available escape sub-command.
var CmdEscape = &cli.Command{
	Name:        "escape",
	Usage:       "Escape a text",
	Description: "Escape the characters of a text which are significant in HTML.",
	ArgsUsage:   "[file]",
	Action:      runEscape,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "pre",
			Usage: "Keep the line breaks and the indentation",
		},
	},
}

// CmdLinkify represents the available linkify sub-command.
var CmdLinkify = &cli.Command{
	Name:        "linkify",
	Usage:       "Escape a text and link its URLs",
	Description: "Escape a text, then turn its bare http:// and https:// URLs into links.",
	ArgsUsage:   "[file]",
	Action:      runLinkify,
}

func runEscape(ctx *cli.Context) error {
	text, err := readInput(ctx)
	if err != nil {
		return err
	}
	b := safehtml.NewBuilder()
	b.TabWidth = setting.SafeHTML.TabWidth
	if ctx.Bool("pre") {
		b.AppendPreformatted(text)
	} else {
		b.Append(text)
	}
	return writeOutput(ctx, b.SafeHTML())
}

func runLinkify(ctx *cli.Context) error {
	text, err := readInput(ctx)
	if err != nil {
		return err
	}
	return writeOutput(ctx, safehtml.FromText(text).LinkifyTarget(setting.SafeHTML.LinkTarget))
}
