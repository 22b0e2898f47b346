// Package state holds the drawing model: drawables, the undo/redo history
// and the sketchpad controller that turns pointer events into strokes and
// stickers.
package state

import (
	"math"

	"github.com/google/uuid"

	"EZSketch/internal/surface"
)

type Point struct{ X, Y float64 }

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Drawable is anything that can paint itself onto a surface.
type Drawable interface {
	Render(s surface.Surface)
	Bounds() Rect
}

// drawableIDs lists the IDs of strokes and stickers in order.
func drawableIDs(items []Drawable) []string {
	ids := make([]string, 0, len(items))
	for _, d := range items {
		switch v := d.(type) {
		case *Stroke:
			ids = append(ids, v.ID)
		case *Sticker:
			ids = append(ids, v.ID)
		}
	}
	return ids
}

// Stroke is a freehand line. Its thickness is fixed at creation and its
// points can only grow until Finish is called.
type Stroke struct {
	ID        string
	points    []Point
	thickness float64
	finished  bool
}

func NewStroke(p Point, thickness float64) *Stroke {
	return &Stroke{
		ID:        uuid.NewString(),
		points:    []Point{p},
		thickness: thickness,
	}
}

// Extend appends a point. It is ignored once the stroke is finished.
func (s *Stroke) Extend(p Point) {
	if s.finished {
		return
	}
	s.points = append(s.points, p)
}

// Finish freezes the stroke.
func (s *Stroke) Finish() { s.finished = true }

func (s *Stroke) Finished() bool     { return s.finished }
func (s *Stroke) Thickness() float64 { return s.thickness }
func (s *Stroke) Len() int           { return len(s.points) }

// Points returns a copy of the points in drawing order.
func (s *Stroke) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

func (s *Stroke) Render(surf surface.Surface) {
	surf.BeginPath()
	surf.SetLineWidth(s.thickness)
	for i, p := range s.points {
		if i == 0 {
			surf.MoveTo(p.X, p.Y)
		} else {
			surf.LineTo(p.X, p.Y)
		}
	}
	surf.Stroke()
}

func (s *Stroke) Bounds() Rect {
	return boundsOf(s.points).Inset(-s.thickness / 2)
}

// Sticker is an emoji glyph drawn with its baseline at Pos.
type Sticker struct {
	ID       string
	Glyph    string
	pos      Point
	fontSize float64
	placed   bool
}

func NewSticker(p Point, glyph string, fontSize float64) *Sticker {
	return &Sticker{
		ID:       uuid.NewString(),
		Glyph:    glyph,
		pos:      p,
		fontSize: fontSize,
	}
}

// Reposition moves the sticker while it is still being dragged.
func (s *Sticker) Reposition(p Point) {
	if s.placed {
		return
	}
	s.pos = p
}

// Place fixes the sticker where it is.
func (s *Sticker) Place() { s.placed = true }

func (s *Sticker) Placed() bool      { return s.placed }
func (s *Sticker) Position() Point   { return s.pos }
func (s *Sticker) FontSize() float64 { return s.fontSize }

func (s *Sticker) Render(surf surface.Surface) {
	surf.SetFont(s.fontSize)
	surf.FillText(s.Glyph, s.pos.X, s.pos.Y)
}

func (s *Sticker) Bounds() Rect {
	return glyphBounds(s.pos, s.fontSize)
}
