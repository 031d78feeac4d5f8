package tui

import (
	"fmt"
	"path/filepath"

	table "github.com/charmbracelet/bubbles/table"

	"geomage/internal/geom"
)

var statsColumns = []string{"source", "points", "lines", "polygons", "coords", "bbox"}

// statsRows returns one row per input, one for pasted shapes and a total.
func (m Model) statsRows() [][]string {
	row := func(name string, g geom.Collection) []string {
		c := geom.Stats(g)
		bb := "-"
		if b, ok := geom.Bounds(g); ok {
			bb = fmt.Sprintf("[%.4f, %.4f, %.4f, %.4f]", b.MinX, b.MinY, b.MaxX, b.MaxY)
		}
		return []string{name, fmt.Sprint(c.Points), fmt.Sprint(c.Lines), fmt.Sprint(c.Polygons), fmt.Sprint(c.Coords), bb}
	}
	var rows [][]string
	for _, in := range m.inputs {
		rows = append(rows, row(filepath.Base(in.Path), in.Geoms))
	}
	if len(m.pasted) > 0 {
		rows = append(rows, row("<pasted>", m.pasted))
	}
	rows = append(rows, row("shown", m.current()))
	return rows
}

// refreshStats rebuilds the table columns/rows from the current data.
func (m *Model) refreshStats() {
	rows := m.statsRows()
	widths := make([]int, len(statsColumns))
	for i, c := range statsColumns {
		widths[i] = len(c) + 2
	}
	maxColW := 44
	for _, r := range rows {
		for i, v := range r {
			if w := len(v) + 2; w > widths[i] {
				widths[i] = min(w, maxColW)
			}
		}
	}
	tcols := make([]table.Column, len(statsColumns))
	for i, c := range statsColumns {
		tcols[i] = table.Column{Title: c, Width: widths[i]}
	}
	trows := make([]table.Row, len(rows))
	for i, r := range rows {
		trows[i] = table.Row(r)
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}
