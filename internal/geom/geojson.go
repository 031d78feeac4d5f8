package geom

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb/geojson"
)

// DecodeGeoJSON decodes a FeatureCollection, a Feature or a bare geometry
// (GeometryCollection included). Features without geometry are skipped.
func DecodeGeoJSON(data []byte) (Collection, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	var out Collection
	add := func(f *geojson.Feature) {
		if f == nil || f.Geometry == nil {
			return
		}
		if g := FromOrb(f.Geometry); g != nil {
			out = append(out, g)
		}
	}
	switch head.Type {
	case "":
		return nil, errors.New("invalid geojson: missing type")
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		for _, f := range fc.Features {
			add(f)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		add(f)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("geojson %s: %w", head.Type, err)
		}
		if cg := FromOrb(g.Geometry()); cg != nil {
			out = append(out, cg)
		}
	}
	return out, nil
}
