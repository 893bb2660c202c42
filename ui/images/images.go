package images

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	// Register additional decode formats beyond the ones imaging ships
	// with, so sources in these formats load like any other.
	_ "golang.org/x/image/webp"

	"github.com/soocke/crop-tool-go/domain/geom"
)

// LoadSource decodes the image at path into an in-memory raster,
// honoring EXIF orientation. The returned raster is treated as
// immutable for the rest of the session.
func LoadSource(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("load image %q: %w", path, err)
	}
	return img, nil
}

// BuildPreview returns a display copy of src scaled by the session
// scale. A scale of 1 yields an unscaled copy; the source is never
// upscaled because PreviewScale never exceeds 1.
func BuildPreview(src image.Image, scale float64) *image.NRGBA {
	if scale >= 1 {
		return imaging.Clone(src)
	}
	b := src.Bounds()
	w, h := geom.PreviewSize(b.Dx(), b.Dy(), scale)
	return imaging.Resize(src, w, h, imaging.Lanczos)
}

// EncodePNG encodes an image to PNG bytes for Tk photo display. Errors
// are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
