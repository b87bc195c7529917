// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"

	"code.gitea.io/safehtml/modules/safehtml"

	"github.com/urfave/cli/v2"
)

// readInput reads the file given as first argument, or the standard input without argument
func readInput(ctx *cli.Context) (string, error) {
	if ctx.NArg() > 1 {
		return "", fmt.Errorf("too many arguments, expect at most one file")
	}
	if ctx.NArg() == 1 && ctx.Args().First() != "-" {
		data, err := os.ReadFile(ctx.Args().First())
		if err != nil {
			return "", fmt.Errorf("unable to read input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(ctx.App.Reader)
	if err != nil {
		return "", fmt.Errorf("unable to read input: %w", err)
	}
	return string(data), nil
}

func writeOutput(ctx *cli.Context, s safehtml.SafeHTML) error {
	var r safehtml.Renderer = safehtml.WriterRenderer{W: ctx.App.Writer}
	if err := r.Render(s); err != nil {
		return err
	}
	_, err := fmt.Fprintln(ctx.App.Writer)
	return err
}
