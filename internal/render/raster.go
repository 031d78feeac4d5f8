package render

import (
	"image/color"

	"github.com/paulmach/orb"

	"geomage/internal/geom"
)

// PointRadius is the radius in pixels of the disc drawn for a Point.
const PointRadius = 2

// Canvas is the pixel surface the rasterizer draws on.
type Canvas interface {
	// FillCircle paints a filled disc of radius r centered on center.
	FillCircle(center Pixel, r int, c color.Color)
	// Line paints an anti-aliased segment from a to b.
	Line(a, b Pixel, c color.Color)
}

// DrawAll draws every top-level geometry of coll, in order.
func DrawAll(cv Canvas, vp Viewport, coll geom.Collection, c color.Color) {
	for _, g := range coll {
		Draw(cv, vp, g, c)
	}
}

// Draw reduces g to point and segment calls on cv. Collections recurse,
// multi geometries draw member by member, Rect and Triangle draw as
// polygons. Only the exterior ring of a polygon is stroked.
func Draw(cv Canvas, vp Viewport, g geom.Geometry, c color.Color) {
	switch g := g.(type) {
	case geom.Point:
		cv.FillCircle(vp.Project(g), PointRadius, c)
	case geom.Line:
		cv.Line(vp.Project(g.Start), vp.Project(g.End), c)
	case geom.LineString:
		drawPath(cv, vp, g, c)
	case geom.Polygon:
		drawPolygon(cv, vp, g, c)
	case geom.MultiPoint:
		for _, p := range g {
			cv.FillCircle(vp.Project(geom.Point(p)), PointRadius, c)
		}
	case geom.MultiLineString:
		for _, ls := range g {
			drawPath(cv, vp, ls, c)
		}
	case geom.MultiPolygon:
		for _, poly := range g {
			drawPolygon(cv, vp, geom.Polygon(poly), c)
		}
	case geom.Collection:
		for _, child := range g {
			Draw(cv, vp, child, c)
		}
	case geom.Rect:
		drawPolygon(cv, vp, g.ToPolygon(), c)
	case geom.Triangle:
		drawPolygon(cv, vp, g.ToPolygon(), c)
	}
}

// drawPath strokes consecutive vertex pairs. Fewer than two vertices draw nothing.
func drawPath(cv Canvas, vp Viewport, pts []orb.Point, c color.Color) {
	if len(pts) < 2 {
		return
	}
	prev := vp.Project(geom.Point(pts[0]))
	for _, p := range pts[1:] {
		cur := vp.Project(geom.Point(p))
		cv.Line(prev, cur, c)
		prev = cur
	}
}

func drawPolygon(cv Canvas, vp Viewport, poly geom.Polygon, c color.Color) {
	if len(poly) == 0 {
		return
	}
	ring := poly[0]
	drawPath(cv, vp, ring, c)
	// open rings still get their closing edge
	if n := len(ring); n > 2 && !ring[0].Equal(ring[n-1]) {
		cv.Line(vp.Project(geom.Point(ring[n-1])), vp.Project(geom.Point(ring[0])), c)
	}
}
