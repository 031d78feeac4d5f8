// Package convert runs one input-to-image conversion.
package convert

import (
	"context"
	"fmt"
	"log/slog"

	"geomage/internal/config"
	"geomage/internal/geom"
	"geomage/internal/imgfile"
	"geomage/internal/render"
)

// Result describes a finished conversion.
type Result struct {
	Viewport render.Viewport
	Counts   geom.Counts
	Output   string
}

// Run loads cfg.Inputs, rasterizes them and writes cfg.Output. Any failure
// aborts the run before the output file is created.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) (Result, error) {
	if err := cfg.Validate(true); err != nil {
		return Result{}, err
	}
	format, err := imgfile.FormatOf(cfg.Output)
	if err != nil {
		return Result{}, err
	}
	paint, err := cfg.Paint()
	if err != nil {
		return Result{}, err
	}
	bg, err := cfg.Fill()
	if err != nil {
		return Result{}, err
	}

	coll, err := geom.LoadAll(cfg.Inputs)
	if err != nil {
		return Result{}, err
	}
	log.Debug("inputs decoded", "paths", cfg.Inputs, "geometries", len(coll))
	counts := geom.Stats(coll)
	log.Info("dataset loaded",
		"inputs", len(cfg.Inputs),
		"points", counts.Points,
		"lines", counts.Lines,
		"polygons", counts.Polygons,
		"coords", counts.Coords)

	vp, err := render.Resolve(coll, cfg.Fit, cfg.Width)
	if err != nil {
		return Result{}, fmt.Errorf("resolve viewport: %w", err)
	}
	log.Info("viewport resolved", "fit", cfg.Fit, "viewport", vp.String())

	cv := render.NewImageCanvas(vp.Width, vp.Height, bg)
	for _, g := range coll {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		render.Draw(cv, vp, g, paint)
	}

	if err := imgfile.Save(cv.Image(), cfg.Output); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	log.Info("image written", "path", cfg.Output, "format", format.String(), "width", vp.Width, "height", vp.Height)
	return Result{Viewport: vp, Counts: counts, Output: cfg.Output}, nil
}
