package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPolygon struct {
	Outer kmlCoords   `xml:"outerBoundaryIs>LinearRing"`
	Inner []kmlCoords `xml:"innerBoundaryIs>LinearRing"`
}

// kmlGeometry matches both Placemark and MultiGeometry bodies.
type kmlGeometry struct {
	Points   []kmlCoords   `xml:"Point"`
	Lines    []kmlCoords   `xml:"LineString"`
	Polygons []kmlPolygon  `xml:"Polygon"`
	Multi    []kmlGeometry `xml:"MultiGeometry"`
}

// DecodeKML extracts Point, LineString, Polygon and MultiGeometry shapes
// from every Placemark, however deeply it is nested in folders.
// KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func DecodeKML(r io.Reader) (Collection, error) {
	dec := xml.NewDecoder(r)
	var out Collection
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("kml: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlGeometry
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return nil, fmt.Errorf("kml placemark: %w", err)
		}
		switch g := pm.collect(); len(g) {
		case 0:
		case 1:
			out = append(out, g[0])
		default:
			out = append(out, g)
		}
	}
	if _, ok := Bounds(out); !ok {
		return nil, fmt.Errorf("kml: %w", ErrNoCoordinates)
	}
	return out, nil
}

func (k kmlGeometry) collect() Collection {
	var out Collection
	for _, p := range k.Points {
		// a Point may carry several tuples in sloppy files; keep them all
		for _, pt := range parseKMLCoords(p.Coordinates) {
			out = append(out, Point(pt))
		}
	}
	for _, l := range k.Lines {
		out = append(out, LineString(parseKMLCoords(l.Coordinates)))
	}
	for _, p := range k.Polygons {
		poly := Polygon{orb.Ring(parseKMLCoords(p.Outer.Coordinates))}
		for _, in := range p.Inner {
			poly = append(poly, orb.Ring(parseKMLCoords(in.Coordinates)))
		}
		out = append(out, poly)
	}
	for _, m := range k.Multi {
		if sub := m.collect(); len(sub) > 0 {
			out = append(out, sub)
		}
	}
	return out
}

func parseKMLCoords(s string) []orb.Point {
	var pts []orb.Point
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		pts = append(pts, orb.Point{lon, lat})
	}
	return pts
}
