package geom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DecodeCSV reads a CSV with latitude/longitude columns and returns one
// Point per row. Column detection: lat|latitude|y and lon|lng|long|longitude|x
// (case-insensitive). A wkt|geometry|geom column takes precedence and is
// parsed as WKT.
func DecodeCSV(r io.Reader) (Collection, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idxLat, idxLon, idxWKT := -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		case "wkt", "geometry", "geom":
			if idxWKT == -1 {
				idxWKT = i
			}
		}
	}
	if idxWKT == -1 && (idxLat == -1 || idxLon == -1) {
		return nil, errors.New("csv: latitude/longitude columns not found")
	}
	var out Collection
	for n, row := range recs[1:] {
		if idxWKT >= 0 {
			if idxWKT >= len(row) || strings.TrimSpace(row[idxWKT]) == "" {
				continue
			}
			g, err := ParseWKT(row[idxWKT])
			if err != nil {
				return nil, fmt.Errorf("csv row %d: %w", n+2, err)
			}
			out = append(out, g)
			continue
		}
		if idxLon >= len(row) || idxLat >= len(row) {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxLon]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxLat]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, Point{lon, lat})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("csv: %w", ErrNoCoordinates)
	}
	return out, nil
}
