// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"code.gitea.io/safehtml/modules/markup"
	"code.gitea.io/safehtml/modules/markup/markdown"
	"code.gitea.io/safehtml/modules/setting"

	"github.com/urfave/cli/v2"
)

// CmdRender represents the available render sub-command.
var CmdRender = &cli.Command{
	Name:        "render",
	Usage:       "Render a text to HTML",
	Description: "Escape a text, link its URLs and apply the configured rules, optionally formatted as a wiki text or as markdown.",
	ArgsUsage:   "[file]",
	Action:      runRender,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "wikify",
			Usage: "Format paragraphs, lists and quotes",
		},
		&cli.BoolFlag{
			Name:  "markdown",
			Usage: "Render the text as markdown",
		},
		&cli.BoolFlag{
			Name:  "pre",
			Usage: "Keep the line breaks and the indentation",
		},
		&cli.BoolFlag{
			Name:  "no-rules",
			Usage: "Only link the URLs, skip the configured rules",
		},
	},
}

func runRender(ctx *cli.Context) error {
	text, err := readInput(ctx)
	if err != nil {
		return err
	}

	opts := markup.RenderOptions{
		Preformatted: ctx.Bool("pre"),
		Wikify:       ctx.Bool("wikify"),
	}
	if !ctx.Bool("no-rules") {
		opts.Rules, err = markup.NewRuleSetFromSettings(setting.LinkRules, setting.SafeHTML.LinkTarget)
		if err != nil {
			return err
		}
	}
	if ctx.Bool("markdown") {
		opts.Markdown = markdown.NewConverterFromSettings()
	}

	out, err := markup.RenderText(text, opts)
	if err != nil {
		return err
	}
	return writeOutput(ctx, out)
}
