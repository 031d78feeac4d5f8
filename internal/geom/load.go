package geom

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for file extensions with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported input format")
	// ErrNoCoordinates is returned by point-oriented decoders that parsed nothing.
	ErrNoCoordinates = errors.New("no coordinates found")
)

// Extensions lists the input file extensions Load understands.
var Extensions = []string{".geojson", ".json", ".wkt", ".txt", ".wkb", ".kml", ".csv"}

// Supported reports whether path has a known input extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads one input file, choosing the decoder from its extension.
func Load(path string) (Collection, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(path) {
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Collection
	switch ext {
	case ".geojson", ".json":
		c, err = DecodeGeoJSON(data)
	case ".wkt", ".txt":
		c, err = DecodeWKT(string(data))
	case ".wkb":
		c, err = DecodeWKB(data)
	case ".kml":
		c, err = DecodeKML(bytes.NewReader(data))
	case ".csv":
		c, err = DecodeCSV(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return c, nil
}

// LoadAll loads every path in order and concatenates the results.
func LoadAll(paths []string) (Collection, error) {
	var out Collection
	for _, p := range paths {
		c, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, c...)
	}
	return out, nil
}
