// Package surface defines the immediate-mode drawing context that drawables
// render onto, plus the raster and recording implementations.
package surface

import "image/color"

// LineCap selects how open path ends are drawn.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// Surface is a 2D immediate-mode drawing context. Paths are built with
// BeginPath/MoveTo/LineTo/Arc and painted with Stroke or Fill.
type Surface interface {
	Size() (w, h float64)
	ClearRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc centered on (x, y). Angles are in radians.
	Arc(x, y, r, start, end float64)
	Stroke()
	Fill()

	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)

	// SetFont selects the glyph size used by FillText.
	SetFont(size float64)
	// FillText draws text with its baseline starting at (x, y).
	FillText(text string, x, y float64)
}
