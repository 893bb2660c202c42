package crop

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/soocke/crop-tool-go/domain/geom"
)

var (
	// ErrIncompleteSelection is returned when a commit is requested with
	// fewer than two corners placed.
	ErrIncompleteSelection = errors.New("crop: selection needs two corners")
	// ErrDegenerateRegion is returned when the clamped rectangle has no area.
	ErrDegenerateRegion = errors.New("crop: selected region has no area")
)

// OutputSuffix is appended to the source base name for the cropped file.
const OutputSuffix = "_cut"

// Encoder writes a raster to a path, inferring the format from the
// extension. Injectable so tests can capture the write instead.
type Encoder func(img image.Image, path string) error

// Result reports a successful commit.
type Result struct {
	Path   string          // file the crop was written to
	Region image.Rectangle // extracted region in source space
}

// Committer validates the final selection, extracts the matching region
// from the full-resolution source and writes it beside the source file.
// The source raster is never mutated; extraction copies the sub-region.
type Committer struct {
	logger  *slog.Logger
	quality int
	encode  Encoder
}

// NewCommitter returns a committer that encodes via the imaging library
// with the given JPEG quality. A nil enc selects that default encoder.
func NewCommitter(quality int, enc Encoder, logger *slog.Logger) *Committer {
	c := &Committer{logger: logger, quality: quality, encode: enc}
	if c.encode == nil {
		c.encode = func(img image.Image, path string) error {
			return imaging.Save(img, path, imaging.JPEGQuality(c.quality))
		}
	}
	return c
}

// OutputPath derives the crop destination: same directory and extension
// as the source, base name suffixed with OutputSuffix.
func OutputPath(srcPath string) string {
	ext := filepath.Ext(srcPath)
	return strings.TrimSuffix(srcPath, ext) + OutputSuffix + ext
}

// Commit maps both preview-space corners into source space with the
// session's fixed scale, clamps the resulting rectangle to the source
// bounds and writes the extracted region. On any failure nothing is
// written and the caller's selection state is left untouched.
func (c *Committer) Commit(points []image.Point, scale float64, src image.Image, srcPath string) (Result, error) {
	if len(points) != selectionSize {
		return Result{}, ErrIncompleteSelection
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	p0 := geom.PreviewToSource(points[0], scale)
	p1 := geom.PreviewToSource(points[1], scale)

	xMin, xMax := order(p0.X, p1.X)
	yMin, yMax := order(p0.Y, p1.Y)
	xMin = clamp(xMin, 0, w-1)
	yMin = clamp(yMin, 0, h-1)
	xMax = clamp(xMax, 0, w)
	yMax = clamp(yMax, 0, h)

	if xMax <= xMin || yMax <= yMin {
		return Result{}, ErrDegenerateRegion
	}

	region := image.Rect(b.Min.X+xMin, b.Min.Y+yMin, b.Min.X+xMax, b.Min.Y+yMax)
	cropped := imaging.Crop(src, region)

	out := OutputPath(srcPath)
	if err := c.encode(cropped, out); err != nil {
		return Result{}, fmt.Errorf("write cropped image %q: %w", out, err)
	}
	if c.logger != nil {
		c.logger.Info("cropped image saved",
			"path", out,
			"width", region.Dx(),
			"height", region.Dy(),
		)
	}
	return Result{Path: out, Region: region}, nil
}

const selectionSize = 2

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
