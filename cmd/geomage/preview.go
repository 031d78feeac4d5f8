package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"geomage/internal/config"
	"geomage/internal/geom"
	"geomage/internal/logger"
	"geomage/internal/tui"
)

func newPreviewCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "preview -i INPUT [-i INPUT...]",
		Short: "Preview the inputs in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(false); err != nil {
				return err
			}
			log := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
			inputs := make([]tui.Input, 0, len(cfg.Inputs))
			for _, p := range cfg.Inputs {
				c, err := geom.Load(p)
				if err != nil {
					return err
				}
				log.Debug("input decoded", "path", p, "geometries", len(c))
				inputs = append(inputs, tui.Input{Path: p, Geoms: c})
			}
			m := tui.New(inputs, cfg.Fit)
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
