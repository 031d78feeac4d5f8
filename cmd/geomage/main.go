package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"geomage/internal/config"
	"geomage/internal/convert"
	"geomage/internal/logger"
)

var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "geomage:", err)
		os.Exit(2)
	}
	if err := newRootCmd(&cfg).ExecuteContext(ctx); err != nil {
		logger.New(os.Stderr, cfg.LogLevel).Error("geomage failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "geomage -i INPUT [-i INPUT...] -o OUTPUT",
		Short:         "Convert geographic vector data to an image",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
			res, err := convert.Run(cmd.Context(), *cfg, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%dx%d)\n", res.Output, res.Viewport.Width, res.Viewport.Height)
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringArrayVarP(&cfg.Inputs, "input", "i", cfg.Inputs, "input file (geojson, json, wkt, wkb, kml, csv); repeatable")
	pf.IntVarP(&cfg.Width, "width", "w", cfg.Width, "image width in pixels")
	pf.BoolVarP(&cfg.Fit, "fit", "f", cfg.Fit, "fit the viewport to the data instead of the whole world")
	pf.StringVar(&cfg.Color, "color", cfg.Color, "paint color as #rrggbb")
	pf.StringVar(&cfg.Background, "background", cfg.Background, "background color as #rrggbb")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "output image (png, jpg, gif, bmp, tiff)")

	root.AddCommand(newPreviewCmd(cfg))
	return root
}
