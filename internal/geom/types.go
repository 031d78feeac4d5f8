package geom

import "github.com/paulmach/orb"

// Geometry is the closed set of shapes the rasterizer knows how to draw.
type Geometry interface {
	// Kind names the variant, mostly for logs and errors.
	Kind() string
	geometry()
}

type (
	// Point is a single lon/lat coordinate.
	Point orb.Point
	// Line is a two point segment.
	Line struct {
		Start Point
		End   Point
	}
	LineString      orb.LineString
	Polygon         orb.Polygon // rings: first outer, following holes
	MultiPoint      orb.MultiPoint
	MultiLineString orb.MultiLineString
	MultiPolygon    orb.MultiPolygon
	// Collection is an ordered list of geometries, possibly nested.
	Collection []Geometry
	// Rect is an axis aligned rectangle given by its corners.
	Rect struct {
		Min Point
		Max Point
	}
	Triangle [3]Point
)

func (Point) Kind() string           { return "Point" }
func (Line) Kind() string            { return "Line" }
func (LineString) Kind() string      { return "LineString" }
func (Polygon) Kind() string         { return "Polygon" }
func (MultiPoint) Kind() string      { return "MultiPoint" }
func (MultiLineString) Kind() string { return "MultiLineString" }
func (MultiPolygon) Kind() string    { return "MultiPolygon" }
func (Collection) Kind() string      { return "GeometryCollection" }
func (Rect) Kind() string            { return "Rect" }
func (Triangle) Kind() string        { return "Triangle" }

func (Point) geometry()           {}
func (Line) geometry()            {}
func (LineString) geometry()      {}
func (Polygon) geometry()         {}
func (MultiPoint) geometry()      {}
func (MultiLineString) geometry() {}
func (MultiPolygon) geometry()    {}
func (Collection) geometry()      {}
func (Rect) geometry()            {}
func (Triangle) geometry()        {}

func (p Point) X() float64 { return p[0] }
func (p Point) Y() float64 { return p[1] }

// ToPolygon returns the rectangle as a closed counter-clockwise ring.
func (r Rect) ToPolygon() Polygon {
	return Polygon{orb.Ring{
		{r.Min[0], r.Min[1]},
		{r.Max[0], r.Min[1]},
		{r.Max[0], r.Max[1]},
		{r.Min[0], r.Max[1]},
		{r.Min[0], r.Min[1]},
	}}
}

// ToPolygon returns the triangle as a closed ring.
func (t Triangle) ToPolygon() Polygon {
	return Polygon{orb.Ring{
		orb.Point(t[0]), orb.Point(t[1]), orb.Point(t[2]), orb.Point(t[0]),
	}}
}

// BBox is an axis aligned lon/lat rectangle.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// World spans the whole lon/lat range.
var World = BBox{MinX: -180, MinY: -90, MaxX: 180, MaxY: 90}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

func (b BBox) Min() Point { return Point{b.MinX, b.MinY} }
func (b BBox) Max() Point { return Point{b.MaxX, b.MaxY} }

// Extend returns the smallest box holding both b and p. A NaN ordinate
// leaves that axis unchanged.
func (b BBox) Extend(p Point) BBox {
	if p[0] < b.MinX {
		b.MinX = p[0]
	}
	if p[1] < b.MinY {
		b.MinY = p[1]
	}
	if p[0] > b.MaxX {
		b.MaxX = p[0]
	}
	if p[1] > b.MaxY {
		b.MaxY = p[1]
	}
	return b
}

// Contains reports whether p lies inside b, edges included.
func (b BBox) Contains(p Point) bool {
	return p[0] >= b.MinX && p[0] <= b.MaxX && p[1] >= b.MinY && p[1] <= b.MaxY
}
