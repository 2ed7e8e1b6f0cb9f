// Package cli — plot.go implements the "graphyc plot" command: render the
// feasible region to a PNG file.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DavidOlmos03/graphyc/internal/model"
	"github.com/DavidOlmos03/graphyc/internal/plot"
	"github.com/DavidOlmos03/graphyc/internal/solver"
)

// plotFlags holds the flag values specific to the plot command.
type plotFlags struct {
	input  inputFlags
	output string  // --output/-o: PNG path
	extent float64 // --range: world extent shown on both axes
	size   int     // --size: image edge length in pixels
}

// NewPlotCommand creates the "plot" cobra command.
func NewPlotCommand() *cobra.Command {
	flags := &plotFlags{}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the feasible region to a PNG image",
		Long: `Render the constraints' feasible region to a PNG: the feasible set is
shaded, boundary lines are drawn, and the feasible vertices (plus the
optimum, when an objective is supplied) are marked.`,
		Example: `  graphyc plot -c "x + y <= 4" -c "x <= 3" -o region.png
  graphyc plot -f problem.yaml --range 10 --size 800`,
		RunE: func(cmd *cobra.Command, args []string) error {
			constraints, objective, err := flags.input.load()
			if err != nil {
				return err
			}
			if flags.extent <= 0 || flags.size <= 0 {
				return model.NewCLIError(model.ExitGeneralError,
					"--range and --size must be positive")
			}

			region := solver.New().Solve(constraints, objective)

			view := plot.DefaultViewport()
			view.XMax, view.YMax = flags.extent, flags.extent
			view.Width, view.Height = flags.size, flags.size

			img := plot.NewRenderer(view).Render(constraints, region)
			if err := plot.WritePNG(flags.output, img); err != nil {
				return model.WrapCLIError(model.ExitPlotError, "writing plot", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n",
				flags.output, flags.size, flags.size)
			return nil
		},
	}

	flags.input.register(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "region.png", "Output PNG path")
	cmd.Flags().Float64Var(&flags.extent, "range", 50, "World extent shown on both axes")
	cmd.Flags().IntVar(&flags.size, "size", 500, "Image edge length in pixels")
	return cmd
}
