package render

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geomage/internal/geom"
)

func record(vp Viewport, g geom.Geometry) []drawOp {
	r := &recorder{}
	Draw(r, vp, g, black)
	return r.ops
}

func TestDrawPoint(t *testing.T) {
	ops := record(worldVP, geom.Point{10, 20})
	assert.Equal(t, []drawOp{{kind: "circle", a: Pixel{X: 190, Y: 70}, r: PointRadius}}, ops)
	assert.Equal(t, 2, PointRadius)
}

func TestDrawLine(t *testing.T) {
	ops := record(worldVP, geom.Line{Start: geom.Point{0, 0}, End: geom.Point{10, 20}})
	assert.Equal(t, []drawOp{{kind: "line", a: Pixel{X: 180, Y: 90}, b: Pixel{X: 190, Y: 70}}}, ops)
}

func TestDrawLineString(t *testing.T) {
	assert.Empty(t, record(worldVP, geom.LineString{}))
	assert.Empty(t, record(worldVP, geom.LineString{{5, 5}}))

	two := geom.LineString{{0, 0}, {10, 20}}
	line := geom.Line{Start: geom.Point{0, 0}, End: geom.Point{10, 20}}
	assert.Equal(t, record(worldVP, line), record(worldVP, two))

	ops := record(worldVP, geom.LineString{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	require.Len(t, ops, 3)
	assert.Equal(t, Pixel{X: 180, Y: 90}, ops[0].a)
	assert.Equal(t, ops[0].b, ops[1].a)
	assert.Equal(t, ops[1].b, ops[2].a)
	assert.Equal(t, Pixel{X: 180, Y: 80}, ops[2].b)
}

func TestDrawWorldDiagonal(t *testing.T) {
	vp := Viewport{BBox: geom.World, Width: 200, Height: 100}
	ops := record(vp, geom.LineString{{-180, -90}, {180, 90}})
	assert.Equal(t, []drawOp{{kind: "line", a: Pixel{X: 0, Y: 100}, b: Pixel{X: 200, Y: 0}}}, ops)
}

func TestDrawPolygonExteriorOnly(t *testing.T) {
	poly := geom.Polygon{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		{{2, 2}, {4, 2}, {4, 4}, {2, 2}},
	}
	ops := record(worldVP, poly)
	require.Len(t, ops, 4)
	for _, op := range ops {
		assert.Equal(t, "line", op.kind)
	}
	assert.Equal(t, ops[0].a, ops[3].b, "ring is closed")
}

func TestDrawPolygonOpenRing(t *testing.T) {
	open := geom.Polygon{{{0, 0}, {10, 0}, {10, 10}}}
	closed := geom.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 0}}}
	assert.Equal(t, record(worldVP, closed), record(worldVP, open))
	assert.Empty(t, record(worldVP, geom.Polygon{}))
}

func TestDrawRectAndTriangle(t *testing.T) {
	rect := geom.Rect{Min: geom.Point{0, 0}, Max: geom.Point{20, 10}}
	assert.Equal(t, record(worldVP, rect.ToPolygon()), record(worldVP, rect))
	assert.Len(t, record(worldVP, rect), 4)

	tri := geom.Triangle{{0, 0}, {10, 0}, {5, 5}}
	assert.Equal(t, record(worldVP, tri.ToPolygon()), record(worldVP, tri))
	assert.Len(t, record(worldVP, tri), 3)
}

func TestDrawMultiMemberwise(t *testing.T) {
	mp := geom.MultiPoint{{0, 0}, {1, 1}, {0, 0}}
	assert.Equal(t, []drawOp{
		{kind: "circle", a: Pixel{X: 180, Y: 90}, r: PointRadius},
		{kind: "circle", a: Pixel{X: 181, Y: 89}, r: PointRadius},
		{kind: "circle", a: Pixel{X: 180, Y: 90}, r: PointRadius},
	}, record(worldVP, mp), "no dedup")

	ls1 := orb.LineString{{0, 0}, {1, 0}}
	ls2 := orb.LineString{{5, 5}, {6, 6}, {7, 5}}
	var want []drawOp
	want = append(want, record(worldVP, geom.LineString(ls1))...)
	want = append(want, record(worldVP, geom.LineString(ls2))...)
	assert.Equal(t, want, record(worldVP, geom.MultiLineString{ls1, ls2}))

	p1 := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}
	p2 := orb.Polygon{{{5, 5}, {6, 5}, {6, 6}}}
	want = append(record(worldVP, geom.Polygon(p1)), record(worldVP, geom.Polygon(p2))...)
	assert.Equal(t, want, record(worldVP, geom.MultiPolygon{p1, p2}))
}

func TestDrawNestedEqualsFlat(t *testing.T) {
	a := geom.Point{1, 2}
	b := geom.LineString{{0, 0}, {30, 40}, {-20, 10}}
	c := geom.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 0}}}
	d := geom.Triangle{{-50, -50}, {-40, -50}, {-45, -40}}

	flat := geom.Collection{a, b, c, d}
	nested := geom.Collection{a, geom.Collection{b, geom.Collection{c}}, geom.Collection{}, d}
	assert.Equal(t, record(worldVP, flat), record(worldVP, nested))

	r := &recorder{}
	DrawAll(r, worldVP, flat, black)
	assert.Equal(t, record(worldVP, flat), r.ops)
	assert.Equal(t, 1+2+3+3, len(r.ops))
	assert.Equal(t, 8, r.lines())
}

func TestDrawNestedEqualsFlatPixels(t *testing.T) {
	vp := Viewport{BBox: geom.World, Width: 120, Height: 60}
	a := geom.LineString{{-170, -80}, {170, 80}}
	b := geom.Point{0, 0}
	c := geom.Rect{Min: geom.Point{-90, -45}, Max: geom.Point{90, 45}}

	flat := NewImageCanvas(vp.Width, vp.Height, white)
	DrawAll(flat, vp, geom.Collection{a, b, c}, black)
	nested := NewImageCanvas(vp.Width, vp.Height, white)
	DrawAll(nested, vp, geom.Collection{geom.Collection{a, geom.Collection{b}}, c}, black)
	assert.Equal(t, flat.Image().Pix, nested.Image().Pix)
}
