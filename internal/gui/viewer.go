package gui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/DavidOlmos03/graphyc/internal/model"
	"github.com/DavidOlmos03/graphyc/internal/plot"
)

const (
	// panStep is the fraction of the view panned per keypress.
	panStep = 0.05

	// zoomIn and zoomOut are the per-keypress zoom factors.
	zoomIn  = 0.8
	zoomOut = 1.25
)

// Run opens a window showing the feasible region for the given constraint
// set and blocks until the window closes.
func Run(constraints []model.Constraint, region model.FeasibleRegion) error {
	v := &viewer{
		constraints: constraints,
		region:      region,
		view:        plot.DefaultViewport(),
		showOptimum: true,
		dirty:       true,
	}

	ebiten.SetWindowTitle("graphyc — feasible region")
	ebiten.SetWindowSize(v.view.Width, v.view.Height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(v)
}

// viewer implements ebiten.Game. It owns an immutable problem snapshot and
// a mutable viewport; all it does per frame is react to view keys and blit
// the staged plot.
type viewer struct {
	constraints []model.Constraint
	region      model.FeasibleRegion
	view        plot.Viewport
	showOptimum bool

	staging *image.RGBA
	tex     *ebiten.Image
	dirty   bool
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.view = v.view.Pan(-panStep, 0)
		v.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.view = v.view.Pan(panStep, 0)
		v.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		v.view = v.view.Pan(0, panStep)
		v.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		v.view = v.view.Pan(0, -panStep)
		v.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		v.view = v.view.Zoom(zoomIn)
		v.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		v.view = v.view.Zoom(zoomOut)
		v.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		v.showOptimum = !v.showOptimum
		v.dirty = true
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.dirty {
		v.rerender()
		v.dirty = false
	}

	screen.DrawImage(v.tex, nil)
	ebitenutil.DebugPrint(screen, v.status())
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.view.Width, v.view.Height
}

// rerender redraws the plot into the staging buffer and uploads it.
func (v *viewer) rerender() {
	shown := v.region
	if !v.showOptimum {
		shown.Optimum = nil
	}

	v.staging = plot.NewRenderer(v.view).Render(v.constraints, shown)
	if v.tex == nil {
		v.tex = ebiten.NewImage(v.view.Width, v.view.Height)
	}
	v.tex.WritePixels(v.staging.Pix)
}

// status builds the overlay line shown in the window corner.
func (v *viewer) status() string {
	switch {
	case v.region.Empty():
		return "no feasible region"
	case v.region.Optimum != nil && v.showOptimum:
		return fmt.Sprintf("%d vertices  optimum %s = %g",
			len(v.region.Vertices), v.region.Optimum.Point, v.region.Optimum.Value)
	default:
		return fmt.Sprintf("%d vertices", len(v.region.Vertices))
	}
}
