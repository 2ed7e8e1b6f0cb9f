// Package plot renders a feasible region to a raster image.
//
// The rendering model follows the tool's teaching purpose: the feasible set
// is shaded by evaluating the constraints at every pixel of the viewport
// grid, boundary lines are drawn on top, and the feasible vertices (plus
// the optimum, when present) are marked. The same renderer backs both the
// PNG export command and the desktop viewer, which only differ in where the
// pixels end up.
package plot
