package model

import "fmt"

// InvalidConstraintError reports a constraint definition that cannot
// describe a boundary line. It is returned at construction/input-validation
// time only — a constraint set that passed validation never fails mid-solve.
type InvalidConstraintError struct {
	// Constraint is the rejected definition, kept for error messages.
	Constraint Constraint

	// Reason is a human-readable description of what is wrong.
	Reason string
}

// Error satisfies the error interface.
func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("invalid constraint %q: %s", e.Constraint.String(), e.Reason)
}

// ExitCode defines standard CLI exit codes. These codes allow scripts and
// CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully. An empty
	// feasible region is still a success: it is a well-formed answer, not
	// a failure mode.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidConstraint indicates a constraint definition was rejected
	// at validation time (degenerate coefficients or unknown relation).
	ExitInvalidConstraint ExitCode = 2

	// ExitBadExpression indicates a constraint or objective expression
	// could not be parsed.
	ExitBadExpression ExitCode = 3

	// ExitProblemFile indicates a problem-definition file could not be
	// read or decoded.
	ExitProblemFile ExitCode = 4

	// ExitPlotError indicates the plot image could not be rendered or
	// written.
	ExitPlotError ExitCode = 5
)

// CLIError is a custom error type that carries an exit code. This allows
// the CLI layer to translate domain errors into appropriate process exit
// codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
