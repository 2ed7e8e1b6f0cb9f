// Package cli — gui.go implements the "graphyc gui" command: open the
// desktop viewer window.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/DavidOlmos03/graphyc/internal/gui"
	"github.com/DavidOlmos03/graphyc/internal/model"
	"github.com/DavidOlmos03/graphyc/internal/solver"
)

// NewGUICommand creates the "gui" cobra command.
func NewGUICommand() *cobra.Command {
	flags := &inputFlags{}

	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Show the feasible region in a desktop window",
		Long: `Open a window displaying the feasible region. Arrow keys pan, +/- zoom,
O toggles the optimum marker and Escape closes the window.`,
		Example: `  graphyc gui -f problem.yaml
  graphyc gui -c "x + y <= 4" -c "x <= 3" --objective "max 3x + 2y"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			constraints, objective, err := flags.load()
			if err != nil {
				return err
			}

			region := solver.New().Solve(constraints, objective)

			if err := gui.Run(constraints, region); err != nil {
				return model.WrapCLIError(model.ExitGeneralError, "running viewer", err)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
