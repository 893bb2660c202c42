package view

import (
	"image"
	"image/color"

	"github.com/soocke/crop-tool-go/ui/overlay"
)

var (
	markerFill = color.NRGBA{G: 255, A: 255}
	activeRing = color.NRGBA{R: 255, G: 200, A: 255}
	rectStroke = color.NRGBA{G: 255, A: 255}
)

const rectStrokeWidth = 2

// renderPlan composites the overlay plan over a copy of the base
// preview: a filled marker per handle, a highlight ring on the active
// one, and the selection rectangle once both corners exist.
func renderPlan(base *image.NRGBA, plan overlay.DrawPlan, handleRadius int) *image.NRGBA {
	canvas := image.NewNRGBA(base.Bounds())
	copy(canvas.Pix, base.Pix)
	for _, m := range plan.Markers {
		fillCircle(canvas, m.At, handleRadius, markerFill)
		if m.Active {
			strokeCircle(canvas, m.At, handleRadius+3, activeRing)
		}
	}
	if plan.HasRect {
		strokeRect(canvas, plan.Corners[0], plan.Corners[1], rectStrokeWidth, rectStroke)
	}
	return canvas
}

func fillCircle(dst *image.NRGBA, c image.Point, r int, col color.NRGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				setInside(dst, c.X+dx, c.Y+dy, col)
			}
		}
	}
}

func strokeCircle(dst *image.NRGBA, c image.Point, r int, col color.NRGBA) {
	inner := (r - 1) * (r - 1)
	outer := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := dx*dx + dy*dy
			if d >= inner && d <= outer {
				setInside(dst, c.X+dx, c.Y+dy, col)
			}
		}
	}
}

// strokeRect outlines the axis-aligned rectangle spanned by the two
// corners, normalizing the pair itself so callers can pass them in any
// order.
func strokeRect(dst *image.NRGBA, a, b image.Point, width int, col color.NRGBA) {
	x0, x1 := a.X, b.X
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	y0, y1 := a.Y, b.Y
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for t := 0; t < width; t++ {
		for x := x0 - t; x <= x1+t; x++ {
			setInside(dst, x, y0-t, col)
			setInside(dst, x, y1+t, col)
		}
		for y := y0 - t; y <= y1+t; y++ {
			setInside(dst, x0-t, y, col)
			setInside(dst, x1+t, y, col)
		}
	}
}

func setInside(dst *image.NRGBA, x, y int, col color.NRGBA) {
	if (image.Point{X: x, Y: y}).In(dst.Bounds()) {
		dst.SetNRGBA(x, y, col)
	}
}
