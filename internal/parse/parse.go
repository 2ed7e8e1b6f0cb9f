package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/DavidOlmos03/graphyc/internal/model"
)

// relationPattern splits an expression at its comparison operator. The
// two-character operators must come first so "<=" is not consumed as "<".
var relationPattern = regexp.MustCompile(`<=|>=|=<|=>|≤|≥|=`)

// termPattern matches one linear term: an optional sign, an optional
// numeric coefficient, and a variable name. "x1" and "x2" are listed before
// "x" so the longer spellings win.
var termPattern = regexp.MustCompile(`^([+-]?)((?:\d+(?:\.\d+)?|\.\d+)?)(x1|x2|x|y)`)

// Constraint parses a textual linear constraint such as "2x + 3y <= 12"
// into a validated model.Constraint.
func Constraint(s string) (model.Constraint, error) {
	loc := relationPattern.FindStringIndex(s)
	if loc == nil {
		return model.Constraint{}, fmt.Errorf("constraint %q has no relation operator (<=, >=, =)", s)
	}

	rel, err := model.ParseRelation(s[loc[0]:loc[1]])
	if err != nil {
		return model.Constraint{}, fmt.Errorf("constraint %q: %w", s, err)
	}

	a, b, err := linearTerms(s[:loc[0]])
	if err != nil {
		return model.Constraint{}, fmt.Errorf("constraint %q: %w", s, err)
	}

	rhs := strings.TrimSpace(s[loc[1]:])
	c, err := strconv.ParseFloat(rhs, 64)
	if err != nil {
		return model.Constraint{}, fmt.Errorf("constraint %q: right-hand side %q is not a number", s, rhs)
	}

	return model.NewConstraint(a, b, rel, c)
}

// Objective parses a textual objective such as "max 3x + 2y". The first
// word is the direction, the remainder the linear function.
func Objective(s string) (model.Objective, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) < 2 {
		return model.Objective{}, fmt.Errorf("objective %q: expected \"<max|min> <expression>\"", s)
	}

	dir, err := model.ParseDirection(fields[0])
	if err != nil {
		return model.Objective{}, fmt.Errorf("objective %q: %w", s, err)
	}

	p, q, err := linearTerms(strings.Join(fields[1:], " "))
	if err != nil {
		return model.Objective{}, fmt.Errorf("objective %q: %w", s, err)
	}
	if p == 0 && q == 0 {
		return model.Objective{}, fmt.Errorf("objective %q: coefficients are both zero", s)
	}

	return model.Objective{P: p, Q: q, Direction: dir}, nil
}

// linearTerms scans a linear expression in the two variables and returns
// the accumulated coefficients (x-coefficient, y-coefficient). Repeated
// variables accumulate, so "x + 2x" parses as coefficient 3.
func linearTerms(expr string) (a, b float64, err error) {
	rest := strings.ReplaceAll(expr, " ", "")
	if rest == "" {
		return 0, 0, fmt.Errorf("empty expression")
	}

	for rest != "" {
		m := termPattern.FindStringSubmatch(rest)
		if m == nil {
			return 0, 0, fmt.Errorf("unexpected input at %q", rest)
		}

		coef := 1.0
		if m[2] != "" {
			// The coefficient substring is matched by termPattern, so it
			// always parses.
			coef, _ = strconv.ParseFloat(m[2], 64)
		}
		if m[1] == "-" {
			coef = -coef
		}

		switch m[3] {
		case "x", "x1":
			a += coef
		case "y", "x2":
			b += coef
		}

		rest = rest[len(m[0]):]
		// After the first term every following term must be signed,
		// otherwise "2x3y" would silently parse.
		if rest != "" && rest[0] != '+' && rest[0] != '-' {
			return 0, 0, fmt.Errorf("missing + or - before %q", rest)
		}
	}
	return a, b, nil
}
