package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DavidOlmos03/graphyc/internal/model"
	"github.com/DavidOlmos03/graphyc/internal/plot"
)

// TestViewer_Status verifies the overlay line for the three region states.
// The game loop itself needs a display and is not exercised here.
func TestViewer_Status(t *testing.T) {
	empty := &viewer{view: plot.DefaultViewport()}
	assert.Equal(t, "no feasible region", empty.status())

	region := model.FeasibleRegion{
		Vertices: []model.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}, {X: 0, Y: 4}},
		Optimum:  &model.Optimum{Point: model.Point{X: 3, Y: 1}, Value: 11},
	}

	withOptimum := &viewer{region: region, showOptimum: true, view: plot.DefaultViewport()}
	assert.Equal(t, "4 vertices  optimum (3, 1) = 11", withOptimum.status())

	hidden := &viewer{region: region, showOptimum: false, view: plot.DefaultViewport()}
	assert.Equal(t, "4 vertices", hidden.status())
}
