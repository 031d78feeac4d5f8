package tui

import (
	"image/color"
	"strings"

	"geomage/internal/geom"
	"geomage/internal/render"
)

// previewViewport resolves a viewport for a w x h cell area. The image
// keeps its aspect ratio and is shrunk until it fits the 2x4 micro grid.
func previewViewport(c geom.Collection, fit bool, w, h int) (render.Viewport, error) {
	mw, mh := w*2, h*4
	vp, err := render.Resolve(c, fit, mw)
	if err != nil {
		return render.Viewport{}, err
	}
	if vp.Height > mh {
		vp, err = render.Resolve(c, fit, max(1, mw*mh/vp.Height))
		if err != nil {
			return render.Viewport{}, err
		}
	}
	return vp, nil
}

// renderMap draws the shown geometries into a braille buffer of w x h
// cells. A viewport error is returned for the status line.
func (m Model) renderMap(w, h int) (string, error) {
	br := newBrailleBuf(w, h)
	coll := m.current()
	vp, err := previewViewport(coll, m.fit, w, h)
	if err != nil {
		return "", err
	}
	render.DrawAll(br, vp, coll, color.White)
	return strings.Join(br.toLines(), "\n"), nil
}
