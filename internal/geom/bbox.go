package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// EachPoint calls fn for every coordinate of g in traversal order,
// including polygon holes and the corners of a Rect.
func EachPoint(g Geometry, fn func(Point)) {
	ring := func(pts []orb.Point) {
		for _, p := range pts {
			fn(Point(p))
		}
	}
	switch g := g.(type) {
	case Point:
		fn(g)
	case Line:
		fn(g.Start)
		fn(g.End)
	case LineString:
		ring(g)
	case Polygon:
		for _, r := range g {
			ring(r)
		}
	case MultiPoint:
		ring(g)
	case MultiLineString:
		for _, ls := range g {
			ring(ls)
		}
	case MultiPolygon:
		for _, poly := range g {
			for _, r := range poly {
				ring(r)
			}
		}
	case Collection:
		for _, child := range g {
			EachPoint(child, fn)
		}
	case Rect:
		fn(g.Min)
		fn(Point{g.Max[0], g.Min[1]})
		fn(g.Max)
		fn(Point{g.Min[0], g.Max[1]})
	case Triangle:
		fn(g[0])
		fn(g[1])
		fn(g[2])
	}
}

// Bounds returns the smallest box holding every coordinate of g.
// ok is false when g has no coordinates at all. NaN ordinates are skipped;
// an axis on which every ordinate is NaN comes back as NaN.
func Bounds(g Geometry) (bbox BBox, ok bool) {
	bbox = BBox{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	EachPoint(g, func(p Point) {
		ok = true
		bbox = bbox.Extend(p)
	})
	if !ok {
		return BBox{}, false
	}
	if bbox.MinX > bbox.MaxX {
		bbox.MinX, bbox.MaxX = math.NaN(), math.NaN()
	}
	if bbox.MinY > bbox.MaxY {
		bbox.MinY, bbox.MaxY = math.NaN(), math.NaN()
	}
	return bbox, true
}

// Counts summarizes a geometry tree.
type Counts struct {
	Points      int
	Lines       int
	Polygons    int
	Collections int
	Coords      int
}

// Stats counts the primitives in g. Multi geometries count each member.
func Stats(g Geometry) Counts {
	var c Counts
	var walk func(g Geometry)
	walk = func(g Geometry) {
		switch g := g.(type) {
		case Point:
			c.Points++
		case MultiPoint:
			c.Points += len(g)
		case Line, LineString:
			c.Lines++
		case MultiLineString:
			c.Lines += len(g)
		case Polygon, Rect, Triangle:
			c.Polygons++
		case MultiPolygon:
			c.Polygons += len(g)
		case Collection:
			c.Collections++
			for _, child := range g {
				walk(child)
			}
		}
	}
	walk(g)
	EachPoint(g, func(Point) { c.Coords++ })
	return c
}
