package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func red(img *image.RGBA, x, y int) uint8 {
	return img.RGBAAt(x, y).R
}

func allWhite(img *image.RGBA) bool {
	for _, v := range img.Pix {
		if v != 0xff {
			return false
		}
	}
	return true
}

func TestImageCanvasClear(t *testing.T) {
	cv := NewImageCanvas(8, 4, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img := cv.Image()
	require.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, img.RGBAAt(7, 3))
}

func TestImageCanvasLine(t *testing.T) {
	cv := NewImageCanvas(20, 20, white)
	cv.Line(Pixel{X: 2, Y: 10}, Pixel{X: 17, Y: 10}, black)
	img := cv.Image()
	assert.Less(t, red(img, 10, 10), uint8(64))
	assert.Equal(t, uint8(0xff), red(img, 10, 5))
	assert.Equal(t, uint8(0xff), red(img, 0, 10))
}

func TestImageCanvasCircle(t *testing.T) {
	cv := NewImageCanvas(20, 20, white)
	cv.FillCircle(Pixel{X: 10, Y: 10}, PointRadius, black)
	img := cv.Image()
	assert.Less(t, red(img, 10, 10), uint8(64))
	assert.Equal(t, uint8(0xff), red(img, 10, 16))
	assert.Equal(t, uint8(0xff), red(img, 0, 0))
}

func TestImageCanvasOffCanvas(t *testing.T) {
	cv := NewImageCanvas(20, 20, white)
	cv.Line(Pixel{X: -1000, Y: -5}, Pixel{X: -10, Y: 50}, black)
	cv.FillCircle(Pixel{X: 500, Y: 500}, PointRadius, black)
	cv.FillCircle(Pixel{X: -1 << 30, Y: 3}, PointRadius, black)
	assert.True(t, allWhite(cv.Image()))

	// huge coordinates are clipped before reaching the fixed point scanner
	cv.Line(Pixel{X: -1e9, Y: -1e9}, Pixel{X: 1e9, Y: 1e9}, black)
	assert.Less(t, red(cv.Image(), 10, 10), uint8(128))
}

func TestClipSegment(t *testing.T) {
	r := image.Rect(0, 0, 10, 10)

	x0, y0, x1, y1, ok := clipSegment(2, 2, 8, 8, r)
	require.True(t, ok)
	assert.Equal(t, [4]float64{2, 2, 8, 8}, [4]float64{x0, y0, x1, y1})

	x0, y0, x1, y1, ok = clipSegment(-10, 5, 20, 5, r)
	require.True(t, ok)
	assert.Equal(t, [4]float64{0, 5, 10, 5}, [4]float64{x0, y0, x1, y1})

	_, _, _, _, ok = clipSegment(-10, -1, 20, -1, r)
	assert.False(t, ok)

	_, _, _, _, ok = clipSegment(-5, 20, 20, -5, image.Rect(0, 0, 5, 5))
	assert.False(t, ok)
}
