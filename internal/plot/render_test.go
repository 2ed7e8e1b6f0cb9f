package plot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidOlmos03/graphyc/internal/model"
	"github.com/DavidOlmos03/graphyc/internal/solver"
)

// testConstraints is the textbook problem used across the render tests.
func testConstraints(t *testing.T) []model.Constraint {
	t.Helper()
	k1, err := model.NewConstraint(1, 1, model.LessEq, 4)
	require.NoError(t, err)
	k2, err := model.NewConstraint(1, 0, model.LessEq, 3)
	require.NoError(t, err)
	return []model.Constraint{k1, k2}
}

// smallView is a low-resolution viewport over 0–5 so individual pixels map
// to easily reasoned world positions.
func smallView() Viewport {
	return Viewport{XMin: 0, XMax: 5, YMin: 0, YMax: 5, Width: 50, Height: 50}
}

// TestRender_FeasibleShading verifies that pixels inside the feasible set
// get the feasible shade and clearly infeasible pixels do not.
func TestRender_FeasibleShading(t *testing.T) {
	constraints := testConstraints(t)
	region := solver.New().Solve(constraints, nil)

	view := smallView()
	img := NewRenderer(view).Render(constraints, region)

	// (1, 1) is interior: x+y=2 <= 4, x=1 <= 3.
	px, py := view.ToPixel(model.Point{X: 1, Y: 1})
	assert.Equal(t, colorFeasible, img.RGBAAt(px, py), "interior point should be shaded")

	// (4.5, 4.5) violates x + y <= 4 by a wide margin.
	px, py = view.ToPixel(model.Point{X: 4.5, Y: 4.5})
	assert.Equal(t, colorBackground, img.RGBAAt(px, py), "exterior point should be background")
}

// TestRender_Markers verifies that vertex and optimum markers land on the
// image: the pixel at each vertex carries a marker color, not shading.
func TestRender_Markers(t *testing.T) {
	constraints := testConstraints(t)
	obj := model.Objective{P: 3, Q: 2, Direction: model.Maximize}
	region := solver.New().Solve(constraints, &obj)
	require.NotNil(t, region.Optimum)

	view := smallView()
	img := NewRenderer(view).Render(constraints, region)

	for _, p := range region.Vertices {
		px, py := view.ToPixel(p)
		c := img.RGBAAt(px, py)
		marked := c == colorVertex || c == colorOptimum
		assert.True(t, marked, "vertex %s should carry a marker color, got %v", p, c)
	}

	px, py := view.ToPixel(region.Optimum.Point)
	assert.Equal(t, colorOptimum, img.RGBAAt(px, py), "optimum marker should be drawn last")
}

// TestRender_VerticalBoundary verifies that a vertical constraint line is
// drawn as a full pixel column.
func TestRender_VerticalBoundary(t *testing.T) {
	k, err := model.NewConstraint(1, 0, model.LessEq, 3)
	require.NoError(t, err)

	view := smallView()
	img := NewRenderer(view).Render([]model.Constraint{k}, model.FeasibleRegion{})

	px, _ := view.ToPixel(model.Point{X: 3, Y: 0})
	column := 0
	for py := 0; py < view.Height; py++ {
		if img.RGBAAt(px, py) == colorBoundary {
			column++
		}
	}
	assert.Equal(t, view.Height, column, "vertical boundary should span the full column")
}

// TestRender_EmptyRegion verifies that an empty region renders without
// panicking and without feasible shading.
func TestRender_EmptyRegion(t *testing.T) {
	k1, err := model.NewConstraint(1, 1, model.LessEq, 1)
	require.NoError(t, err)
	k2, err := model.NewConstraint(1, 1, model.GreaterEq, 5)
	require.NoError(t, err)
	constraints := []model.Constraint{k1, k2}

	view := smallView()
	img := NewRenderer(view).Render(constraints, solver.New().Solve(constraints, nil))

	for py := 0; py < view.Height; py++ {
		for px := 0; px < view.Width; px++ {
			assert.NotEqual(t, colorFeasible, img.RGBAAt(px, py),
				"no pixel should be shaded feasible at (%d,%d)", px, py)
		}
	}
}

// TestWritePNG verifies that the exported file exists and decodes back to
// an image of the rendered dimensions.
func TestWritePNG(t *testing.T) {
	constraints := testConstraints(t)
	view := smallView()
	img := NewRenderer(view).Render(constraints, solver.New().Solve(constraints, nil))

	path := filepath.Join(t.TempDir(), "region.png")
	require.NoError(t, WritePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, view.Width, decoded.Bounds().Dx())
	assert.Equal(t, view.Height, decoded.Bounds().Dy())
}
