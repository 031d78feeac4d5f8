package tui

import (
	"fmt"
	"path/filepath"

	list "github.com/charmbracelet/bubbles/list"

	"geomage/internal/geom"
)

type inputItem struct {
	title, desc string
	idx         int // -1 selects every input
}

func (f inputItem) Title() string       { return f.title }
func (f inputItem) Description() string { return f.desc }
func (f inputItem) FilterValue() string { return f.title }

func inputItems(inputs []Input) []list.Item {
	items := []list.Item{inputItem{title: "all inputs", desc: fmt.Sprintf("%d files", len(inputs)), idx: -1}}
	for i, in := range inputs {
		c := geom.Stats(in.Geoms)
		items = append(items, inputItem{
			title: filepath.Base(in.Path),
			desc:  fmt.Sprintf("pts=%d ls=%d poly=%d", c.Points, c.Lines, c.Polygons),
			idx:   i,
		})
	}
	return items
}

// selectInput switches the preview to the input behind the selected item.
func (m *Model) selectInput(it inputItem) {
	m.sel = it.idx
	if it.idx < 0 {
		m.status = "showing all inputs"
	} else {
		m.status = "showing " + it.title
	}
	if m.showStats {
		m.refreshStats()
	}
}
