// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// main.go - numspect entry point.
//
// Parses the command line and dispatches to the handlers in internal/cli.
// Handlers print their own diagnostics; main only translates the returned
// error into a process exit code.
package main

import (
	"os"

	"github.com/jeranaias/numspect/internal/cli"
)

// Version information (set via -ldflags at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdInspect:
		err = cli.HandleInspect(args)
	case cli.CmdL2CP:
		err = cli.HandleL2CP(args)
	case cli.CmdCP2L:
		err = cli.HandleCP2L(args)
	case cli.CmdVersion:
		err = cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp(args)
	}

	if err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
