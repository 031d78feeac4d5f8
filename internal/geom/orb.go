package geom

import "github.com/paulmach/orb"

// FromOrb converts an orb geometry into the local union.
// A nil geometry yields nil.
func FromOrb(g orb.Geometry) Geometry {
	switch g := g.(type) {
	case orb.Point:
		return Point(g)
	case orb.MultiPoint:
		return MultiPoint(g)
	case orb.LineString:
		return LineString(g)
	case orb.MultiLineString:
		return MultiLineString(g)
	case orb.Ring:
		return Polygon{g}
	case orb.Polygon:
		return Polygon(g)
	case orb.MultiPolygon:
		return MultiPolygon(g)
	case orb.Bound:
		return Rect{Min: Point(g.Min), Max: Point(g.Max)}
	case orb.Collection:
		out := make(Collection, 0, len(g))
		for _, child := range g {
			if cg := FromOrb(child); cg != nil {
				out = append(out, cg)
			}
		}
		return out
	}
	return nil
}
