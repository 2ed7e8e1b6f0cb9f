// Package solver computes the feasible region of a two-variable linear
// program by exact vertex enumeration.
//
// The algorithm is the classical "graphical method":
//
//  1. Collect the boundary lines of every constraint, plus the implicit
//     non-negativity boundaries x = 0 and y = 0.
//  2. Intersect every unordered pair of boundary lines by solving the
//     2×2 linear system of their equations. Parallel pairs (determinant
//     magnitude below tolerance) yield no candidate and are skipped.
//  3. Keep the candidates that satisfy every constraint — these are exactly
//     the vertices of the convex feasible polygon, because each vertex of a
//     bounded 2D polyhedron is the intersection of two of its defining
//     lines and lies inside all other half-planes.
//  4. Order the vertices counter-clockwise by angle around their centroid,
//     giving a simple polygon traversal for drawing.
//  5. Optionally pick the vertex extremizing a linear objective. By the
//     corner-point theorem a linear optimum over a convex polygon is
//     attained at a vertex, so exhaustive evaluation is exact.
//
// Pair enumeration is O(n²) in the number of boundary lines, which is fine
// for the tens-of-constraints problems this tool targets.
//
// The solver is stateless and never mutates its input: every call derives a
// fresh FeasibleRegion from the constraint snapshot it is given. Any input
// that passed model.NewConstraint validation produces a well-formed result;
// an empty region is reported as an empty vertex list, never as an error.
package solver
