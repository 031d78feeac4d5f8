package render

import (
	"errors"
	"fmt"

	"geomage/internal/geom"
)

var (
	// ErrEmptyGeometry means a fit-to-data viewport was requested for a
	// dataset without a single coordinate.
	ErrEmptyGeometry = errors.New("no coordinates to fit the viewport to")
	// ErrDegenerateViewport means the viewport has no area on at least one axis.
	ErrDegenerateViewport = errors.New("degenerate viewport")
	// ErrInvalidWidth means the requested pixel width is not positive.
	ErrInvalidWidth = errors.New("width must be a positive number of pixels")
	// ErrTooLarge means the derived image height exceeds MaxDimension.
	ErrTooLarge = errors.New("image too large")
)

// DegenerateViewportError carries the offending bounding box.
type DegenerateViewportError struct {
	BBox   geom.BBox
	Reason string
}

func (e *DegenerateViewportError) Error() string {
	return fmt.Sprintf("degenerate viewport [%g, %g, %g, %g]: %s",
		e.BBox.MinX, e.BBox.MinY, e.BBox.MaxX, e.BBox.MaxY, e.Reason)
}

func (e *DegenerateViewportError) Unwrap() error { return ErrDegenerateViewport }
