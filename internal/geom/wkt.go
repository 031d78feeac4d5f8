package geom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
)

// ParseWKT parses a single WKT geometry.
func ParseWKT(s string) (Geometry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("wkt: %w", err)
	}
	out := FromOrb(g)
	if out == nil {
		return nil, fmt.Errorf("wkt: unsupported geometry %s", g.GeoJSONType())
	}
	return out, nil
}

// DecodeWKT reads a WKT document holding one geometry per line. Blank
// lines and lines starting with # are skipped. A document whose lines do
// not parse on their own is read as a single geometry spread over them.
func DecodeWKT(text string) (Collection, error) {
	var lines []string
	var lineNo []int
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
		lineNo = append(lineNo, i+1)
	}
	if len(lines) == 0 {
		return nil, errors.New("empty wkt")
	}
	var out Collection
	for i, line := range lines {
		g, err := ParseWKT(line)
		if err != nil {
			if whole, werr := ParseWKT(strings.Join(lines, " ")); werr == nil {
				return Collection{whole}, nil
			}
			return nil, fmt.Errorf("line %d: %w", lineNo[i], err)
		}
		out = append(out, g)
	}
	return out, nil
}
