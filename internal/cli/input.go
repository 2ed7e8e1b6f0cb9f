// Package cli — input.go implements the problem-input flags shared by the
// solve, plot and gui commands.
//
// A problem can come from repeated --constraint flags, from a problem file
// (--file), or both: file constraints load first and flag constraints are
// appended. An --objective flag overrides the file's objective.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/DavidOlmos03/graphyc/internal/model"
	"github.com/DavidOlmos03/graphyc/internal/parse"
	"github.com/DavidOlmos03/graphyc/internal/problem"
)

// inputFlags holds the problem-input flag values shared by subcommands.
type inputFlags struct {
	constraints []string // --constraint/-c: constraint expressions
	objective   string   // --objective: objective expression ("max 3x + 2y")
	file        string   // --file/-f: problem-definition file
}

// register binds the shared input flags onto a subcommand.
func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.constraints, "constraint", "c", nil,
		`Constraint expression, repeatable (e.g. -c "x + y <= 4")`)
	cmd.Flags().StringVar(&f.objective, "objective", "",
		`Objective expression (e.g. "max 3x + 2y")`)
	cmd.Flags().StringVarP(&f.file, "file", "f", "",
		"Problem-definition file (.yaml, .yml, .json or .jsonc)")
}

// load resolves the flags into a validated problem definition, translating
// failures into CLIErrors with the proper exit codes.
func (f *inputFlags) load() ([]model.Constraint, *model.Objective, error) {
	var constraints []model.Constraint
	var objective *model.Objective

	if f.file != "" {
		def, err := problem.Load(f.file)
		if err != nil {
			return nil, nil, inputError("loading problem file", err, model.ExitProblemFile)
		}
		constraints = def.Constraints
		objective = def.Objective
	}

	for _, expr := range f.constraints {
		k, err := parse.Constraint(expr)
		if err != nil {
			return nil, nil, inputError("parsing constraint", err, model.ExitBadExpression)
		}
		constraints = append(constraints, k)
	}

	if f.objective != "" {
		obj, err := parse.Objective(f.objective)
		if err != nil {
			return nil, nil, inputError("parsing objective", err, model.ExitBadExpression)
		}
		objective = &obj
	}

	if len(constraints) == 0 {
		return nil, nil, model.NewCLIError(model.ExitGeneralError,
			"no constraints given (use --constraint or --file)")
	}
	return constraints, objective, nil
}

// inputError wraps an input failure into a CLIError. A degenerate
// constraint keeps its dedicated exit code regardless of which input path
// produced it.
func inputError(message string, err error, code model.ExitCode) *model.CLIError {
	var invalid *model.InvalidConstraintError
	if errors.As(err, &invalid) {
		code = model.ExitInvalidConstraint
	}
	return model.WrapCLIError(code, message, err)
}
