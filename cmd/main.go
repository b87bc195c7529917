// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"code.gitea.io/safehtml/modules/log"
	"code.gitea.io/safehtml/modules/regexplru"
	"code.gitea.io/safehtml/modules/setting"

	"github.com/urfave/cli/v2"
)

func appGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Set the config file, the built-in defaults are used when it is empty",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Override the [log] LEVEL of the config file (trace, debug, info, warn, error, none)",
		},
	}
}

// prepareSettings loads the config file and initializes the shared state before any sub-command runs
func prepareSettings(ctx *cli.Context) error {
	log.SetOutput(ctx.App.ErrWriter)
	if err := setting.InitCfgProviderFromFile(ctx.String("config")); err != nil {
		return err
	}
	if ctx.IsSet("log-level") {
		log.SetLevel(log.LevelFromString(ctx.String("log-level")))
	}
	regexplru.Init(setting.SafeHTML.RegexpCacheSize)
	return nil
}

type AppVersion struct {
	Version string
	Extra   string
}

func NewMainApp(appVer AppVersion) *cli.App {
	app := cli.NewApp()
	app.Name = "safehtml" // must be lower-cased because it appears in the "USAGE" section
	app.Usage = "Render untrusted text as safe HTML"
	app.Description = `The safehtml program escapes text, links bare URLs and applies the configured find/replace rules in a single pass. The result is written to stdout.`
	app.Version = appVer.Version + appVer.Extra
	app.EnableBashCompletion = true
	app.Flags = appGlobalFlags()
	app.Before = prepareSettings
	app.Commands = []*cli.Command{
		CmdEscape,
		CmdLinkify,
		CmdRender,
		CmdRules,
	}
	return app
}

func RunMainApp(app *cli.App, args ...string) error {
	err := app.Run(args)
	if err == nil {
		return nil
	}
	if strings.HasPrefix(err.Error(), "flag provided but not defined:") {
		// the cli package should already have output the error message, so just exit
		cli.OsExiter(1)
		return err
	}
	_, _ = fmt.Fprintf(app.ErrWriter, "Command error: %v\n", err)
	cli.OsExiter(1)
	return err
}
