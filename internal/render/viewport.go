package render

import (
	"fmt"
	"math"

	"geomage/internal/geom"
)

// MaxDimension bounds both image sides so neither a huge width nor a
// sliver of data can ask for a multi-gigabyte canvas.
const MaxDimension = 1 << 15

// Viewport is the geographic window mapped onto a width x height canvas.
// It is computed once per run and not modified afterwards.
type Viewport struct {
	BBox   geom.BBox
	Width  int
	Height int
}

// Resolve computes the viewport for c. Without fit the whole world is used
// and the image is square. With fit the tightest box around every
// coordinate is used and the height keeps the data's aspect ratio.
func Resolve(c geom.Collection, fit bool, width int) (Viewport, error) {
	if width <= 0 {
		return Viewport{}, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if width > MaxDimension {
		return Viewport{}, fmt.Errorf("%w: width %d exceeds %d", ErrTooLarge, width, MaxDimension)
	}
	if !fit {
		return Viewport{BBox: geom.World, Width: width, Height: width}, nil
	}
	bbox, ok := geom.Bounds(c)
	if !ok {
		return Viewport{}, ErrEmptyGeometry
	}
	// negated comparisons also catch NaN extents
	if !(bbox.Width() > 0) {
		return Viewport{}, &DegenerateViewportError{BBox: bbox, Reason: "zero width"}
	}
	if !(bbox.Height() > 0) {
		return Viewport{}, &DegenerateViewportError{BBox: bbox, Reason: "zero height"}
	}
	h := math.Round(float64(width) / (bbox.Width() / bbox.Height()))
	if h < 1 {
		return Viewport{}, &DegenerateViewportError{BBox: bbox, Reason: "height rounds to zero pixels"}
	}
	if h > MaxDimension {
		return Viewport{}, fmt.Errorf("%w: height %.0f exceeds %d", ErrTooLarge, h, MaxDimension)
	}
	return Viewport{BBox: bbox, Width: width, Height: int(h)}, nil
}

// Project maps p into this viewport's pixel space.
func (v Viewport) Project(p geom.Point) Pixel {
	return Project(p, v.BBox, v.Width, v.Height)
}

func (v Viewport) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g] -> %dx%d",
		v.BBox.MinX, v.BBox.MinY, v.BBox.MaxX, v.BBox.MaxY, v.Width, v.Height)
}
