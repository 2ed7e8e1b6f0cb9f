// Package cli implements the cobra-based CLI commands for graphyc.
//
// Each subcommand (solve, plot, gui) is defined in its own file within
// this package. This file defines the root command that serves as the
// parent for all subcommands and handles global flags.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/DavidOlmos03/graphyc/internal/logger"
	"github.com/DavidOlmos03/graphyc/internal/model"
)

// Global flag variables shared across all subcommands. These are bound to
// cobra persistent flags on the root command, which makes them available
// to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	jsonOutput bool

	// verbose lowers the log level to debug for solver tracing.
	verbose bool
)

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// The root command itself does not perform any action — it only provides
// help text and global flags. Actual functionality is provided by the
// solve, plot and gui subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "graphyc",
		Short: "Graphical-method solver for two-variable linear programs",
		Long: `graphyc solves small linear programs in two variables the way the
graphical method teaches it: it intersects the constraint boundary lines,
keeps the intersections satisfying every constraint, and orders them into
the feasible polygon — optionally picking the vertex optimizing a linear
objective.

Constraints are written as plain expressions ("x + y <= 4", "2x1 - x2 >= 3")
on the command line or in a YAML/JSON problem file. Non-negativity of both
variables is implied.`,

		// We format errors ourselves (text or JSON based on --json), so
		// cobra's automatic usage/error printing is silenced.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewSolveCommand())
	rootCmd.AddCommand(NewPlotCommand())
	rootCmd.AddCommand(NewGUICommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes. This is the main
// entry point called from main.go.
//
// Errors carrying a CLIError are translated into their exit codes; any
// other error exits with the general error code.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format (JSON or
// text) based on the --json global flag. Errors always go to stderr —
// stdout is reserved for successful command output.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// IsJSONOutput returns whether the --json flag is set. Subcommands use
// this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
