package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// clipMargin keeps far off-canvas coordinates inside the 26.6 fixed point
// range the scanner works in.
const clipMargin = 64

// ImageCanvas is an RGBA canvas drawn with anti-aliased rasterx paths.
type ImageCanvas struct {
	img     *image.RGBA
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

// NewImageCanvas allocates a w x h canvas cleared to bg.
func NewImageCanvas(w, h int, bg color.Color) *ImageCanvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	stroker := rasterx.NewStroker(w, h, scanner)
	stroker.SetStroke(fixed.I(1), fixed.I(4), rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.MiterClip)
	return &ImageCanvas{
		img:     img,
		filler:  rasterx.NewFiller(w, h, scanner),
		stroker: stroker,
	}
}

// Image returns the backing image.
func (cv *ImageCanvas) Image() *image.RGBA { return cv.img }

func (cv *ImageCanvas) FillCircle(center Pixel, r int, c color.Color) {
	b := cv.img.Bounds().Inset(-r - 1)
	if !center.In(b) {
		return
	}
	x, y := pixelCenter(center)
	cv.filler.SetColor(c)
	rasterx.AddCircle(x, y, float64(r), cv.filler)
	cv.filler.Draw()
	cv.filler.Clear()
}

func (cv *ImageCanvas) Line(a, b Pixel, c color.Color) {
	ax, ay := pixelCenter(a)
	bx, by := pixelCenter(b)
	r := cv.img.Bounds().Inset(-clipMargin)
	ax, ay, bx, by, ok := clipSegment(ax, ay, bx, by, r)
	if !ok {
		return
	}
	cv.stroker.SetColor(c)
	cv.stroker.Start(rasterx.ToFixedP(ax, ay))
	cv.stroker.Line(rasterx.ToFixedP(bx, by))
	cv.stroker.Stop(false)
	cv.stroker.Draw()
	cv.stroker.Clear()
}

func pixelCenter(p Pixel) (float64, float64) {
	return float64(p.X) + 0.5, float64(p.Y) + 0.5
}

// clipSegment trims a segment to r (Liang-Barsky). ok is false when nothing
// of the segment is left.
func clipSegment(x0, y0, x1, y1 float64, r image.Rectangle) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - float64(r.Min.X)},
		{dx, float64(r.Max.X) - x0},
		{-dy, y0 - float64(r.Min.Y)},
		{dy, float64(r.Max.Y) - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
