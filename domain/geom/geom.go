package geom

import (
	"image"
	"math"
)

// Mapping between the two coordinate spaces of a crop session: the
// downscaled preview shown to the user and the full-resolution source.
// A session computes its scale once and keeps it fixed afterwards.

// PreviewScale returns the factor that fits a w x h source inside a
// maxW x maxH box. Both axes use the same factor so the aspect ratio is
// preserved exactly. Sources that already fit are never upscaled, so the
// result is always in (0, 1] for positive dimensions.
func PreviewScale(w, h, maxW, maxH int) float64 {
	if w <= 0 || h <= 0 {
		return 1
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	if scale > 1 {
		scale = 1
	}
	return scale
}

// PreviewSize returns the preview dimensions for a w x h source at the
// given scale, guaranteeing at least 1x1.
func PreviewSize(w, h int, scale float64) (int, int) {
	pw := int(math.Round(float64(w) * scale))
	ph := int(math.Round(float64(h) * scale))
	if pw < 1 {
		pw = 1
	}
	if ph < 1 {
		ph = 1
	}
	return pw, ph
}

// PreviewToSource converts a point from preview space to source space.
// A non-positive scale returns the point unchanged; that cannot happen
// for a session scale produced by PreviewScale.
func PreviewToSource(p image.Point, scale float64) image.Point {
	if scale <= 0 {
		return p
	}
	return image.Point{
		X: int(math.Round(float64(p.X) / scale)),
		Y: int(math.Round(float64(p.Y) / scale)),
	}
}

// SourceToPreview converts a point from source space to preview space.
func SourceToPreview(p image.Point, scale float64) image.Point {
	if scale <= 0 {
		return p
	}
	return image.Point{
		X: int(math.Round(float64(p.X) * scale)),
		Y: int(math.Round(float64(p.Y) * scale)),
	}
}

// ClampToBounds restricts p to [0, w-1] x [0, h-1]. Used against preview
// bounds while selecting and against source bounds while committing.
func ClampToBounds(p image.Point, w, h int) image.Point {
	if p.X < 0 {
		p.X = 0
	}
	if p.X > w-1 {
		p.X = w - 1
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y > h-1 {
		p.Y = h - 1
	}
	return p
}
