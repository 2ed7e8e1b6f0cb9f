// Package parse turns textual linear expressions into model values.
//
// It understands the notation the tool accepts on the command line and in
// problem files:
//
//	x + y <= 4
//	2x1 - 3.5x2 >= 10
//	max 3x + 2y
//
// Variables may be spelled x/y or x1/x2, coefficients may be omitted
// (meaning 1), and the unicode relations ≤ and ≥ are accepted alongside
// their ASCII forms. Parsing is presentation-layer input handling: a parsed
// constraint is still validated by model.NewConstraint before use.
package parse
