package overlay

import (
	"image"

	"github.com/soocke/crop-tool-go/domain/selection"
)

// The overlay is recomputed from selection state on every redraw tick;
// nothing here touches pixels. The windowing layer rasterizes the plan.

// Marker flags one corner handle for display.
type Marker struct {
	At     image.Point
	Active bool // currently grabbed, drawn with a highlight ring
}

// DrawPlan describes one frame of selection overlay in preview space.
// Corners keeps the raw insertion order of the two handles; the
// rasterizer normalizes the opposite-corner pair itself.
type DrawPlan struct {
	Markers []Marker
	Corners [2]image.Point
	HasRect bool
}

// Build derives the current frame's plan from the selection.
func Build(sel *selection.Selection) DrawPlan {
	var plan DrawPlan
	if sel == nil {
		return plan
	}
	points := sel.Points()
	active, hasActive := sel.ActiveIndex()
	for i, p := range points {
		plan.Markers = append(plan.Markers, Marker{At: p, Active: hasActive && i == active})
	}
	if len(points) == selection.MaxHandles {
		plan.Corners[0] = points[0]
		plan.Corners[1] = points[1]
		plan.HasRect = true
	}
	return plan
}
