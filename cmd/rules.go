// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"text/tabwriter"

	"code.gitea.io/safehtml/modules/json"
	"code.gitea.io/safehtml/modules/markup"
	"code.gitea.io/safehtml/modules/setting"

	"github.com/urfave/cli/v2"
)

// CmdRules represents the available rules sub-command.
var CmdRules = &cli.Command{
	Name:        "rules",
	Usage:       "List the configured rules",
	Description: "Check the [rule.*] sections of the config file and list the rules in the order of precedence.",
	Action:      runRules,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output JSON instead of a table",
		},
	},
}

func runRules(ctx *cli.Context) error {
	if _, err := markup.NewRuleSetFromSettings(setting.LinkRules, setting.SafeHTML.LinkTarget); err != nil {
		return err
	}

	if ctx.Bool("json") {
		data, err := json.MarshalIndent(setting.LinkRules, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ctx.App.Writer, string(data))
		return err
	}

	w := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tMATCH\tKIND\tREPLACEMENT\tENABLED")
	for _, rule := range setting.LinkRules {
		kind, repl := "link", rule.Link
		if rule.HTML != "" {
			kind, repl = "html", rule.HTML
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", rule.Name, rule.Match, kind, repl, rule.Enabled)
	}
	return w.Flush()
}
