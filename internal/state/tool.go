package state

import (
	"fmt"
	"math"

	"EZSketch/internal/surface"
)

type ToolKind int

const (
	ToolMarker ToolKind = iota
	ToolSticker
)

func (k ToolKind) String() string {
	if k == ToolSticker {
		return "sticker"
	}
	return "marker"
}

// Tool is the active drawing tool: a marker of some thickness or a sticker
// glyph. Exactly one is active at any time.
type Tool struct {
	Kind      ToolKind
	Thickness float64
	Glyph     string
}

func Marker(thickness float64) Tool {
	return Tool{Kind: ToolMarker, Thickness: thickness}
}

// StickerTool keeps the marker thickness so that switching back restores it.
func StickerTool(glyph string, thickness float64) Tool {
	return Tool{Kind: ToolSticker, Thickness: thickness, Glyph: glyph}
}

func (t Tool) String() string {
	if t.Kind == ToolSticker {
		return fmt.Sprintf("sticker(%s)", t.Glyph)
	}
	return fmt.Sprintf("marker(%g)", t.Thickness)
}

// Preview shows what the next pointer-down would draw. It never enters
// history.
type Preview struct {
	pos       Point
	thickness float64
	glyph     string
	fontSize  float64
}

func NewPreview(p Point, tool Tool, fontSize float64) *Preview {
	pv := &Preview{pos: p, fontSize: fontSize}
	pv.SetTool(tool)
	return pv
}

func (pv *Preview) MoveTo(p Point) { pv.pos = p }

// SetTool updates thickness and glyph. The glyph is empty in marker mode.
func (pv *Preview) SetTool(tool Tool) {
	pv.thickness = tool.Thickness
	pv.glyph = ""
	if tool.Kind == ToolSticker {
		pv.glyph = tool.Glyph
	}
}

func (pv *Preview) Position() Point    { return pv.pos }
func (pv *Preview) Thickness() float64 { return pv.thickness }
func (pv *Preview) Glyph() string      { return pv.glyph }

func (pv *Preview) Render(s surface.Surface) {
	if pv.glyph != "" {
		s.SetFont(pv.fontSize)
		s.FillText(pv.glyph, pv.pos.X, pv.pos.Y)
		return
	}
	s.BeginPath()
	s.Arc(pv.pos.X, pv.pos.Y, pv.thickness/2, 0, 2*math.Pi)
	s.Fill()
}

func (pv *Preview) Bounds() Rect {
	if pv.glyph != "" {
		return glyphBounds(pv.pos, pv.fontSize)
	}
	r := pv.thickness / 2
	return Rect{X: pv.pos.X - r, Y: pv.pos.Y - r, Width: pv.thickness, Height: pv.thickness}
}
