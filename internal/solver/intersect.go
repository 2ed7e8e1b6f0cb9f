package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/DavidOlmos03/graphyc/internal/model"
)

// boundary is one line a*x + b*y = c whose pairwise intersections are
// vertex candidates. It is the constraint's boundary stripped of its
// relation: for intersection purposes only the line matters.
type boundary struct {
	a, b, c float64
}

// boundaries extracts the boundary line of every constraint.
func boundaries(constraints []model.Constraint) []boundary {
	lines := make([]boundary, 0, len(constraints))
	for _, k := range constraints {
		lines = append(lines, boundary{a: k.A, b: k.B, c: k.C})
	}
	return lines
}

// intersections computes the intersection point of every unordered pair of
// boundary lines. Pairs whose coefficient matrix has a determinant smaller
// in magnitude than eps are parallel (or nearly so) and contribute no
// candidate — skipped, not an error.
func intersections(lines []boundary, eps float64) []model.Point {
	if len(lines) < 2 {
		return nil
	}

	points := make([]model.Point, 0, len(lines)*(len(lines)-1)/2)
	for _, pair := range combin.Combinations(len(lines), 2) {
		l1, l2 := lines[pair[0]], lines[pair[1]]

		// Solve the 2×2 system
		//   l1.a*x + l1.b*y = l1.c
		//   l2.a*x + l2.b*y = l2.c
		coef := mat.NewDense(2, 2, []float64{
			l1.a, l1.b,
			l2.a, l2.b,
		})
		if math.Abs(mat.Det(coef)) < eps {
			continue
		}

		rhs := mat.NewVecDense(2, []float64{l1.c, l2.c})
		var sol mat.VecDense
		if err := sol.SolveVec(coef, rhs); err != nil {
			// Near-singular systems that slipped past the determinant
			// test behave like parallel pairs.
			continue
		}
		points = append(points, model.Point{X: sol.AtVec(0), Y: sol.AtVec(1)})
	}
	return points
}

// dedupe collapses candidates that coincide within eps. The same vertex is
// routinely produced by several line pairs — e.g. the origin appears once
// for the two axes and again for every user-supplied x >= 0 or y >= 0
// duplicate of them.
func dedupe(points []model.Point, eps float64) []model.Point {
	unique := make([]model.Point, 0, len(points))
	for _, p := range points {
		seen := false
		for _, q := range unique {
			if p.Equal(q, eps) {
				seen = true
				break
			}
		}
		if !seen {
			unique = append(unique, p)
		}
	}
	return unique
}
