// Package model defines the domain types and value objects for the
// graphyc CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (Constraint, Point, Objective, FeasibleRegion) are immutable
// values: a constraint is validated once at construction time and never
// mutated afterwards, and a feasible region is recomputed in full from the
// current constraint set — there is no incremental or persistent state.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling,
// plus the validation error (InvalidConstraintError) surfaced when a
// degenerate constraint is rejected.
package model
