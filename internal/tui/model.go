package tui

import (
	help "github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"geomage/internal/geom"
)

// Input is one decoded file shown by the preview.
type Input struct {
	Path  string
	Geoms geom.Collection
}

type Model struct {
	width  int
	height int

	showSidebar bool
	showStats   bool

	fit    bool
	status string

	// Data
	inputs []Input
	sel    int // index into inputs, -1 for all of them
	pasted geom.Collection

	// inputs sidebar
	l list.Model

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// stats table
	tbl table.Model

	keys keyMap
	help help.Model
}

// New builds a preview over the given inputs.
func New(inputs []Input, fit bool) Model {
	m := Model{
		fit:    fit,
		status: "geomage preview",
		inputs: inputs,
		sel:    -1,
		keys:   defaultKeys(),
		help:   help.New(),
	}
	// list setup
	d := list.NewDefaultDelegate()
	m.l = list.New(inputItems(inputs), d, 0, 0)
	m.l.Title = "Inputs"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here. Press Enter to add it to the preview; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// current returns the geometries on screen: the selected input (or all of
// them) followed by anything pasted.
func (m Model) current() geom.Collection {
	var out geom.Collection
	for i, in := range m.inputs {
		if m.sel < 0 || m.sel == i {
			out = append(out, in.Geoms...)
		}
	}
	return append(out, m.pasted...)
}
