package state

import (
	"image/color"

	"EZSketch/internal/surface"
)

// Ink is the color every drawable is painted with.
var Ink color.Color = color.Black

// Paint redraws the whole surface: clear, reset styling, render items in
// order, then the overlays (nil overlays are skipped).
func Paint(s surface.Surface, items []Drawable, overlays ...Drawable) {
	w, h := s.Size()
	s.ClearRect(0, 0, w, h)
	s.SetLineCap(surface.LineCapRound)
	s.SetStrokeColor(Ink)
	s.SetFillColor(Ink)

	for _, d := range items {
		d.Render(s)
	}
	for _, d := range overlays {
		if d == nil {
			continue
		}
		d.Render(s)
	}
}
