package model

import (
	"fmt"
	"math"
	"strings"
)

// Epsilon is the numeric tolerance used throughout the solver when comparing
// floating-point quantities: a point within Epsilon of a constraint boundary
// is treated as satisfying the constraint, and a pair of boundary lines whose
// determinant magnitude is below Epsilon is treated as parallel.
//
// It is exported as a named constant (rather than inlined at call sites) so
// tests can probe boundary sensitivity against the same value the solver uses.
const Epsilon = 1e-9

// Relation is the comparison operator of a linear constraint, relating the
// left-hand side a*x + b*y to the right-hand side c.
type Relation string

const (
	// LessEq is the "<=" relation: a*x + b*y <= c.
	LessEq Relation = "<="

	// GreaterEq is the ">=" relation: a*x + b*y >= c.
	GreaterEq Relation = ">="

	// Equal is the "=" relation: a*x + b*y = c. The feasible set of an
	// equality constraint is the boundary line itself.
	Equal Relation = "="
)

// String returns the ASCII representation of the relation.
// This method satisfies fmt.Stringer for readable CLI output.
func (r Relation) String() string {
	return string(r)
}

// IsValid checks whether the Relation value is one of the predefined
// operators.
func (r Relation) IsValid() bool {
	switch r {
	case LessEq, GreaterEq, Equal:
		return true
	default:
		return false
	}
}

// ParseRelation converts a string to a Relation. Both the ASCII forms
// ("<=", ">=", "=") and the unicode forms ("≤", "≥") used in textbook
// notation are accepted. Returns an error for anything else.
func ParseRelation(s string) (Relation, error) {
	switch strings.TrimSpace(s) {
	case "<=", "≤", "=<":
		return LessEq, nil
	case ">=", "≥", "=>":
		return GreaterEq, nil
	case "=", "==":
		return Equal, nil
	default:
		return "", fmt.Errorf("invalid relation: %q (valid: <=, >=, =)", s)
	}
}

// Point is a position in the two-variable solution space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Equal reports whether p and q coincide within the given tolerance,
// component-wise. Used by the solver to deduplicate vertices produced by
// different boundary-line pairs.
func (p Point) Equal(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// String formats the point with enough precision for CLI output.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Constraint is one linear inequality (or equality) bounding the feasible
// set:
//
//	A*x + B*y  Rel  C
//
// A Constraint is an immutable value: it is validated by NewConstraint and
// never modified afterwards. The zero value is not valid — always construct
// through NewConstraint.
type Constraint struct {
	A   float64  `json:"a"`
	B   float64  `json:"b"`
	Rel Relation `json:"rel"`
	C   float64  `json:"c"`
}

// NewConstraint validates and builds a Constraint.
//
// A constraint with both coefficients zero has no boundary line (the
// left-hand side is constant), so it is rejected with InvalidConstraintError
// rather than silently producing a degenerate region later. An unknown
// relation is rejected for the same reason.
func NewConstraint(a, b float64, rel Relation, c float64) (Constraint, error) {
	if a == 0 && b == 0 {
		return Constraint{}, &InvalidConstraintError{
			Constraint: Constraint{A: a, B: b, Rel: rel, C: c},
			Reason:     "coefficients a and b are both zero",
		}
	}
	if !rel.IsValid() {
		return Constraint{}, &InvalidConstraintError{
			Constraint: Constraint{A: a, B: b, Rel: rel, C: c},
			Reason:     fmt.Sprintf("invalid relation %q", string(rel)),
		}
	}
	return Constraint{A: a, B: b, Rel: rel, C: c}, nil
}

// Evaluate reports whether the point satisfies this single constraint.
//
// The comparison uses the Epsilon tolerance so that points lying on the
// boundary line (which every vertex of the feasible region does, by
// construction) are not rejected by floating-point noise.
func (k Constraint) Evaluate(p Point) bool {
	lhs := k.A*p.X + k.B*p.Y
	switch k.Rel {
	case LessEq:
		return lhs <= k.C+Epsilon
	case GreaterEq:
		return lhs >= k.C-Epsilon
	case Equal:
		return math.Abs(lhs-k.C) <= Epsilon
	default:
		return false
	}
}

// String renders the constraint in the "2x + 3y <= 12" form used by the CLI
// and by error messages.
func (k Constraint) String() string {
	var sb strings.Builder
	writeTerm(&sb, k.A, "x", true)
	writeTerm(&sb, k.B, "y", sb.Len() == 0)
	if sb.Len() == 0 {
		// Only reachable for the (invalid) all-zero constraint, but keep
		// the output well-formed anyway.
		sb.WriteString("0")
	}
	fmt.Fprintf(&sb, " %s %g", k.Rel, k.C)
	return sb.String()
}

// writeTerm appends one "<coef><var>" term, omitting zero coefficients,
// unit coefficients, and the leading "+" of the first term.
func writeTerm(sb *strings.Builder, coef float64, name string, first bool) {
	if coef == 0 {
		return
	}
	switch {
	case !first && coef >= 0:
		sb.WriteString(" + ")
	case !first:
		sb.WriteString(" - ")
		coef = -coef
	case coef < 0:
		sb.WriteString("-")
		coef = -coef
	}
	if coef != 1 {
		fmt.Fprintf(sb, "%g", coef)
	}
	sb.WriteString(name)
}

// Line is the boundary line a*x + b*y = c of a constraint, in a form
// suitable for drawing.
//
// A vertical boundary (b == 0) has no slope/intercept form, so it is
// represented distinctly by the Vertical flag and its x-coordinate. This
// avoids a division by zero when converting the general form.
type Line struct {
	// Vertical is true when the line is x = X.
	Vertical bool

	// X is the x-coordinate of a vertical line. Only meaningful when
	// Vertical is true.
	X float64

	// Slope and Intercept describe a non-vertical line y = Slope*x + Intercept.
	// Only meaningful when Vertical is false.
	Slope     float64
	Intercept float64
}

// Line returns the boundary line of the constraint.
func (k Constraint) Line() Line {
	if k.B == 0 {
		return Line{Vertical: true, X: k.C / k.A}
	}
	return Line{Slope: -k.A / k.B, Intercept: k.C / k.B}
}

// Direction selects whether an objective is maximized or minimized.
type Direction string

const (
	// Maximize searches for the vertex with the largest objective value.
	Maximize Direction = "max"

	// Minimize searches for the vertex with the smallest objective value.
	Minimize Direction = "min"
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	return string(d)
}

// IsValid checks whether the Direction value is one of the predefined
// directions.
func (d Direction) IsValid() bool {
	return d == Maximize || d == Minimize
}

// ParseDirection converts a string to a Direction. Common long forms
// ("maximize", "minimise", ...) are accepted alongside "max"/"min".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "maximise":
		return Maximize, nil
	case "min", "minimize", "minimise":
		return Minimize, nil
	default:
		return "", fmt.Errorf("invalid direction: %q (valid: max, min)", s)
	}
}

// Objective is a linear function P*x + Q*y to optimize over the feasible
// region, together with the optimization direction.
type Objective struct {
	P         float64   `json:"p"`
	Q         float64   `json:"q"`
	Direction Direction `json:"direction"`
}

// Value evaluates the objective at a point.
func (o Objective) Value(p Point) float64 {
	return o.P*p.X + o.Q*p.Y
}

// String renders the objective in the "max 3x + 2y" form.
func (o Objective) String() string {
	var sb strings.Builder
	writeTerm(&sb, o.P, "x", true)
	writeTerm(&sb, o.Q, "y", sb.Len() == 0)
	if sb.Len() == 0 {
		sb.WriteString("0")
	}
	return fmt.Sprintf("%s %s", o.Direction, sb.String())
}

// Optimum is the result of optimizing an objective over the feasible
// vertices: the chosen vertex and its objective value.
type Optimum struct {
	Point Point   `json:"point"`
	Value float64 `json:"value"`
}

// FeasibleRegion is the solver's output: the feasible vertices ordered into
// a counter-clockwise polygon traversal, plus the optimum when an objective
// was supplied.
//
// A FeasibleRegion is derived data. It holds no identity beyond the input
// set it was computed from and is recomputed in full whenever the constraint
// set or the objective changes.
type FeasibleRegion struct {
	// Vertices is the ordered polygon boundary. It may be empty (no point
	// satisfies all constraints), a single point, or a segment — see
	// Empty and Degenerate.
	Vertices []Point `json:"vertices"`

	// Optimum is the extremal vertex for the supplied objective, or nil
	// when no objective was supplied or the region is empty.
	Optimum *Optimum `json:"optimum,omitempty"`
}

// Empty reports whether no feasible vertex exists. Contradictory constraint
// sets and constraint sets whose region has no corner in the first quadrant
// both collapse to this state.
func (r FeasibleRegion) Empty() bool {
	return len(r.Vertices) == 0
}

// Degenerate reports whether the region has too few vertices to form a
// polygon: a single point or a segment. Presentation layers draw these
// without a closing edge.
func (r FeasibleRegion) Degenerate() bool {
	n := len(r.Vertices)
	return n == 1 || n == 2
}
