package render

import (
	"image/color"

	"geomage/internal/geom"
)

type drawOp struct {
	kind string // "circle" or "line"
	a, b Pixel
	r    int
}

// recorder is a Canvas that remembers every call.
type recorder struct {
	ops []drawOp
}

func (r *recorder) FillCircle(center Pixel, radius int, _ color.Color) {
	r.ops = append(r.ops, drawOp{kind: "circle", a: center, r: radius})
}

func (r *recorder) Line(a, b Pixel, _ color.Color) {
	r.ops = append(r.ops, drawOp{kind: "line", a: a, b: b})
}

func (r *recorder) lines() int {
	n := 0
	for _, op := range r.ops {
		if op.kind == "line" {
			n++
		}
	}
	return n
}

// worldVP is a 360x180 whole-world viewport: one pixel per degree.
var worldVP = Viewport{BBox: geom.World, Width: 360, Height: 180}

var (
	black = color.Black
	white = color.White
)
