package solver

import (
	"math"
	"sort"

	"github.com/DavidOlmos03/graphyc/internal/logger"
	"github.com/DavidOlmos03/graphyc/internal/model"
)

// Solver computes feasible regions. It carries only its numeric tolerance:
// there is no state shared between calls, so a single Solver may be reused
// for any number of problems.
type Solver struct {
	// Epsilon is the tolerance for the parallel-line determinant test and
	// for vertex deduplication. Defaults to model.Epsilon via New.
	Epsilon float64
}

// New creates a Solver with the default tolerance.
func New() *Solver {
	return &Solver{Epsilon: model.Epsilon}
}

// Solve computes the feasible region of the given constraint set, plus the
// implicit non-negativity constraints x >= 0 and y >= 0 that this problem
// class assumes.
//
// The returned region's vertices are ordered counter-clockwise. When obj is
// non-nil and the region is non-empty, the region carries the extremal
// vertex and its objective value; ties are broken in favor of the vertex
// encountered first in the angular order.
//
// Solve never fails: contradictory or degenerate constraint sets produce an
// empty region through the same path as any other input.
func (s *Solver) Solve(constraints []model.Constraint, obj *model.Objective) model.FeasibleRegion {
	eps := s.Epsilon
	if eps <= 0 {
		eps = model.Epsilon
	}

	all := withNonNegativity(constraints)
	lines := boundaries(all)

	candidates := dedupe(intersections(lines, eps), eps)
	vertices := feasibleVertices(candidates, all)
	orderVertices(vertices)

	log := logger.Logger()
	log.Debug().
		Int("constraints", len(constraints)).
		Int("boundaries", len(lines)).
		Int("candidates", len(candidates)).
		Int("vertices", len(vertices)).
		Msg("feasible region solved")

	region := model.FeasibleRegion{Vertices: vertices}
	if obj != nil {
		region.Optimum = optimize(vertices, *obj, eps)
	}
	return region
}

// withNonNegativity appends the implicit first-quadrant constraints. They
// are appended unconditionally; if the caller already supplied x >= 0 or
// y >= 0 the duplicate boundary pair is parallel (skipped) and the duplicate
// vertices collapse in deduplication.
func withNonNegativity(constraints []model.Constraint) []model.Constraint {
	all := make([]model.Constraint, 0, len(constraints)+2)
	all = append(all, constraints...)
	all = append(all,
		model.Constraint{A: 1, B: 0, Rel: model.GreaterEq, C: 0},
		model.Constraint{A: 0, B: 1, Rel: model.GreaterEq, C: 0},
	)
	return all
}

// feasibleVertices filters the candidates down to those satisfying every
// constraint — not just the two whose boundary lines generated them.
func feasibleVertices(candidates []model.Point, constraints []model.Constraint) []model.Point {
	vertices := make([]model.Point, 0, len(candidates))
	for _, p := range candidates {
		feasible := true
		for _, k := range constraints {
			if !k.Evaluate(p) {
				feasible = false
				break
			}
		}
		if feasible {
			vertices = append(vertices, p)
		}
	}
	return vertices
}

// orderVertices sorts the vertices in place into a counter-clockwise
// traversal: ascending angle around the centroid (arithmetic mean). For a
// convex vertex set this yields a simple polygon boundary suitable for
// drawing without self-intersection.
func orderVertices(vertices []model.Point) {
	if len(vertices) < 3 {
		return
	}

	var cx, cy float64
	for _, p := range vertices {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(vertices))
	cy /= float64(len(vertices))

	sort.Slice(vertices, func(i, j int) bool {
		ai := math.Atan2(vertices[i].Y-cy, vertices[i].X-cx)
		aj := math.Atan2(vertices[j].Y-cy, vertices[j].X-cx)
		return ai < aj
	})
}

// optimize evaluates the objective over the ordered vertex set and returns
// the extremal vertex. An incumbent is only displaced by a strictly better
// value (beyond eps), so vertices tying the optimum lose to the first one
// in angular order.
//
// Exhaustive evaluation is exact here: a linear objective over a convex
// polygon attains its optimum at a vertex (corner-point theorem).
func optimize(vertices []model.Point, obj model.Objective, eps float64) *model.Optimum {
	if len(vertices) == 0 {
		return nil
	}

	best := model.Optimum{Point: vertices[0], Value: obj.Value(vertices[0])}
	for _, p := range vertices[1:] {
		v := obj.Value(p)
		better := v > best.Value+eps
		if obj.Direction == model.Minimize {
			better = v < best.Value-eps
		}
		if better {
			best = model.Optimum{Point: p, Value: v}
		}
	}
	return &best
}
