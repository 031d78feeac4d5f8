package geom

import (
	"fmt"

	"github.com/paulmach/orb/encoding/wkb"
)

// DecodeWKB decodes one well-known-binary geometry.
func DecodeWKB(data []byte) (Collection, error) {
	g, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("wkb: %w", err)
	}
	out := FromOrb(g)
	if out == nil {
		return nil, fmt.Errorf("wkb: unsupported geometry %s", g.GeoJSONType())
	}
	return Collection{out}, nil
}
