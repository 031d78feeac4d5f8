package render

import (
	"image"
	"math"

	"geomage/internal/geom"
)

// Pixel is a canvas coordinate. It may lie outside the canvas.
type Pixel = image.Point

// Project maps a lon/lat point onto a w x h canvas covering bbox.
// Row 0 is the top of the image, so y is flipped.
//
// An infinite y becomes h and an undefined y becomes 0. x is passed through
// unchanged; Resolve never hands out a viewport where that matters.
// Both axes are truncated toward zero and never clamped.
func Project(p geom.Point, bbox geom.BBox, w, h int) Pixel {
	fw, fh := float64(w), float64(h)
	px := (p[0] - bbox.MinX) * (fw / bbox.Width())
	py := fh - (p[1]-bbox.MinY)*(fh/bbox.Height())
	switch {
	case math.IsInf(py, 0):
		py = fh
	case math.IsNaN(py):
		py = 0
	}
	return Pixel{X: int(px), Y: int(py)}
}
