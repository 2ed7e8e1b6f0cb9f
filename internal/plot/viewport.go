package plot

import "github.com/DavidOlmos03/graphyc/internal/model"

const (
	// defaultRange is the world-coordinate extent shown by default on both
	// axes. First-quadrant problems at teaching scale fit comfortably in
	// 0–50.
	defaultRange = 50.0

	// defaultSize is the default image edge length in pixels.
	defaultSize = 500
)

// Viewport maps a rectangular window of the solution space onto a pixel
// grid. World y grows upwards while image y grows downwards, so the
// vertical mapping is inverted.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64

	// Width and Height are the pixel dimensions of the target image.
	Width, Height int
}

// DefaultViewport shows the first quadrant from the origin to 50 on both
// axes at 500×500 pixels, matching the tool's traditional plot window.
func DefaultViewport() Viewport {
	return Viewport{
		XMin: 0, XMax: defaultRange,
		YMin: 0, YMax: defaultRange,
		Width: defaultSize, Height: defaultSize,
	}
}

// ToPixel maps a world point to pixel coordinates. The result may lie
// outside the image bounds; callers clip.
func (v Viewport) ToPixel(p model.Point) (px, py int) {
	fx := (p.X - v.XMin) / (v.XMax - v.XMin)
	fy := (p.Y - v.YMin) / (v.YMax - v.YMin)
	px = int(fx * float64(v.Width-1))
	py = v.Height - 1 - int(fy*float64(v.Height-1))
	return px, py
}

// ToWorld maps pixel coordinates back to the world point at the pixel's
// position. Inverse of ToPixel up to pixel quantization.
func (v Viewport) ToWorld(px, py int) model.Point {
	fx := float64(px) / float64(v.Width-1)
	fy := float64(v.Height-1-py) / float64(v.Height-1)
	return model.Point{
		X: v.XMin + fx*(v.XMax-v.XMin),
		Y: v.YMin + fy*(v.YMax-v.YMin),
	}
}

// Contains reports whether a world point lies inside the viewport window.
func (v Viewport) Contains(p model.Point) bool {
	return p.X >= v.XMin && p.X <= v.XMax && p.Y >= v.YMin && p.Y <= v.YMax
}

// Zoom scales the window about its center. Factors below 1 zoom in,
// above 1 zoom out.
func (v Viewport) Zoom(factor float64) Viewport {
	cx := (v.XMin + v.XMax) / 2
	cy := (v.YMin + v.YMax) / 2
	hw := (v.XMax - v.XMin) / 2 * factor
	hh := (v.YMax - v.YMin) / 2 * factor
	v.XMin, v.XMax = cx-hw, cx+hw
	v.YMin, v.YMax = cy-hh, cy+hh
	return v
}

// Pan shifts the window by a fraction of its extent. dx and dy are in
// window-widths, so Pan(0.1, 0) moves one tenth of the view to the right.
func (v Viewport) Pan(dx, dy float64) Viewport {
	sx := (v.XMax - v.XMin) * dx
	sy := (v.YMax - v.YMin) * dy
	v.XMin += sx
	v.XMax += sx
	v.YMin += sy
	v.YMax += sy
	return v
}
