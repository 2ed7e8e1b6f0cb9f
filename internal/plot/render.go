package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/DavidOlmos03/graphyc/internal/model"
)

// Palette for the rendered plot. The feasible shading is deliberately
// translucent-looking (a light green over white) so boundary lines stay
// visible through it.
var (
	colorBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorFeasible   = color.RGBA{R: 0xC8, G: 0xE6, B: 0xC9, A: 0xFF}
	colorAxis       = color.RGBA{R: 0x9E, G: 0x9E, B: 0x9E, A: 0xFF}
	colorBoundary   = color.RGBA{R: 0x1B, G: 0x5E, B: 0x20, A: 0xFF}
	colorVertex     = color.RGBA{R: 0x0D, G: 0x47, B: 0xA1, A: 0xFF}
	colorOptimum    = color.RGBA{R: 0xD3, G: 0x2F, B: 0x2F, A: 0xFF}
)

// Renderer draws constraint sets and their feasible regions into an RGBA
// image through a Viewport.
type Renderer struct {
	View Viewport
}

// NewRenderer creates a Renderer for the given viewport.
func NewRenderer(view Viewport) *Renderer {
	return &Renderer{View: view}
}

// Render produces the full plot: shaded feasible set, axes, boundary lines,
// vertex markers and the optimum marker when present.
//
// The feasible shading is computed per pixel by evaluating every constraint
// at the pixel's world position (plus the implicit non-negativity bounds),
// which handles unbounded regions gracefully: the shading simply runs to
// the viewport edge.
func (r *Renderer) Render(constraints []model.Constraint, region model.FeasibleRegion) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.View.Width, r.View.Height))

	r.shadeFeasible(img, constraints)
	r.drawAxes(img)
	for _, k := range constraints {
		r.drawBoundary(img, k)
	}
	for _, p := range region.Vertices {
		r.drawDisc(img, p, 3, colorVertex)
	}
	if region.Optimum != nil {
		r.drawDisc(img, region.Optimum.Point, 5, colorOptimum)
	}
	return img
}

// shadeFeasible fills every pixel whose world position satisfies all
// constraints and lies in the first quadrant.
func (r *Renderer) shadeFeasible(img *image.RGBA, constraints []model.Constraint) {
	for py := 0; py < r.View.Height; py++ {
		for px := 0; px < r.View.Width; px++ {
			p := r.View.ToWorld(px, py)
			img.SetRGBA(px, py, colorBackground)
			if p.X < 0 || p.Y < 0 {
				continue
			}
			feasible := true
			for _, k := range constraints {
				if !k.Evaluate(p) {
					feasible = false
					break
				}
			}
			if feasible {
				img.SetRGBA(px, py, colorFeasible)
			}
		}
	}
}

// drawAxes draws the x = 0 and y = 0 lines when they are in view.
func (r *Renderer) drawAxes(img *image.RGBA) {
	if r.View.XMin <= 0 && r.View.XMax >= 0 {
		px, _ := r.View.ToPixel(model.Point{X: 0, Y: r.View.YMin})
		for py := 0; py < r.View.Height; py++ {
			setPixel(img, px, py, colorAxis)
		}
	}
	if r.View.YMin <= 0 && r.View.YMax >= 0 {
		_, py := r.View.ToPixel(model.Point{X: r.View.XMin, Y: 0})
		for px := 0; px < r.View.Width; px++ {
			setPixel(img, px, py, colorAxis)
		}
	}
}

// drawBoundary draws the constraint's boundary line across the viewport.
// Non-vertical lines are sampled per pixel column, with the vertical gap to
// the previous column filled so steep lines stay connected; vertical lines
// are a single pixel column.
func (r *Renderer) drawBoundary(img *image.RGBA, k model.Constraint) {
	line := k.Line()

	if line.Vertical {
		px, _ := r.View.ToPixel(model.Point{X: line.X, Y: r.View.YMin})
		if px < 0 || px >= r.View.Width {
			return
		}
		for py := 0; py < r.View.Height; py++ {
			setPixel(img, px, py, colorBoundary)
		}
		return
	}

	prevY := -1
	for px := 0; px < r.View.Width; px++ {
		wx := r.View.ToWorld(px, 0).X
		wy := line.Slope*wx + line.Intercept
		_, py := r.View.ToPixel(model.Point{X: wx, Y: wy})

		if py >= 0 && py < r.View.Height {
			setPixel(img, px, py, colorBoundary)
		}
		if prevY >= 0 && abs(py-prevY) > 1 {
			lo, hi := min(py, prevY)+1, max(py, prevY)
			for y := lo; y < hi; y++ {
				setPixel(img, px, y, colorBoundary)
			}
		}
		prevY = py
	}
}

// drawDisc fills a small disc around a world point, clipped to the image.
func (r *Renderer) drawDisc(img *image.RGBA, p model.Point, radius int, c color.RGBA) {
	cx, cy := r.View.ToPixel(p)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				setPixel(img, cx+dx, cy+dy, c)
			}
		}
	}
}

// setPixel writes a pixel if it is inside the image bounds.
func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// WritePNG encodes the image to a PNG file at the given path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating plot file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding plot: %w", err)
	}
	return f.Close()
}
