// Package main is the entry point for the graphyc CLI.
//
// This binary solves and visualizes two-variable linear programs using the
// graphical method. It delegates all functionality to the internal/cli
// package, which defines cobra commands.
package main

import (
	"github.com/DavidOlmos03/graphyc/internal/cli"
)

// version, commit, and date are set at build time via ldflags. During
// development they default to "dev", "none", and "unknown" respectively.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package, keeping the
	// build system decoupled from the CLI framework.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
