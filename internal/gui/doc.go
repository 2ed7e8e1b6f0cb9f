// Package gui shows a feasible-region plot in a desktop window.
//
// The window is an ebiten game loop around the same raster renderer the
// PNG export uses: the plot package draws into an image.RGBA staging
// buffer, which is uploaded to an ebiten texture and blitted to the
// screen. The plot is only re-rendered when the view changes.
//
// Keys: arrows pan, +/- zoom, O toggles the optimum marker, Escape closes
// the window.
package gui
