// Package cli — solve.go implements the "graphyc solve" command.
//
// Solve is the core operation: it reads the problem, runs the
// feasible-region solver, and prints the ordered vertices plus the
// optimum when an objective was supplied.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DavidOlmos03/graphyc/internal/model"
	"github.com/DavidOlmos03/graphyc/internal/solver"
)

// solveOutput is the JSON schema of the solve command.
type solveOutput struct {
	Constraints []string             `json:"constraints"`
	Objective   string               `json:"objective,omitempty"`
	Empty       bool                 `json:"empty"`
	Region      model.FeasibleRegion `json:"region"`
}

// NewSolveCommand creates the "solve" cobra command.
func NewSolveCommand() *cobra.Command {
	flags := &inputFlags{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the feasible region and optional optimum",
		Long: `Compute the feasible-region vertices for the given constraints and,
when an objective is supplied, the vertex optimizing it.

The implicit non-negativity constraints x >= 0 and y >= 0 are always
applied. An empty feasible region is a valid answer, reported as such
with a zero exit code.`,
		Example: `  graphyc solve -c "x + y <= 4" -c "x <= 3" --objective "max 3x + 2y"
  graphyc solve -f problem.yaml --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			constraints, objective, err := flags.load()
			if err != nil {
				return err
			}

			region := solver.New().Solve(constraints, objective)

			if IsJSONOutput() {
				return printSolveJSON(cmd, constraints, objective, region)
			}
			printSolveText(cmd, constraints, objective, region)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// printSolveJSON writes the machine-readable result to stdout.
func printSolveJSON(cmd *cobra.Command, constraints []model.Constraint, objective *model.Objective, region model.FeasibleRegion) error {
	out := solveOutput{
		Constraints: constraintStrings(constraints),
		Empty:       region.Empty(),
		Region:      region,
	}
	if objective != nil {
		out.Objective = objective.String()
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "encoding result", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// printSolveText writes the human-readable result to stdout.
func printSolveText(cmd *cobra.Command, constraints []model.Constraint, objective *model.Objective, region model.FeasibleRegion) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Constraints (plus x >= 0, y >= 0):")
	for _, k := range constraints {
		fmt.Fprintf(out, "  %s\n", k)
	}

	switch n := len(region.Vertices); {
	case n == 0:
		fmt.Fprintln(out, "No feasible region: the constraints admit no vertex in the first quadrant.")
		return
	case n == 1:
		fmt.Fprintln(out, "Feasible region degenerates to a single point:")
	case n == 2:
		fmt.Fprintln(out, "Feasible region degenerates to a segment:")
	default:
		fmt.Fprintf(out, "Feasible region: polygon with %d vertices (counter-clockwise):\n", n)
	}
	for _, p := range region.Vertices {
		fmt.Fprintf(out, "  %s\n", p)
	}

	if region.Optimum != nil {
		fmt.Fprintf(out, "Optimum (%s): %s  Z = %g\n",
			objective, region.Optimum.Point, region.Optimum.Value)
	}
}

// constraintStrings renders the constraint set for output.
func constraintStrings(constraints []model.Constraint) []string {
	out := make([]string, 0, len(constraints))
	for _, k := range constraints {
		out = append(out, k.String())
	}
	return out
}
