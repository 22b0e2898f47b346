package export

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/jung-kurt/gofpdf"

	"EZSketch/internal/surface"
)

const glyphFamily = "glyph"

// PDF is a Surface that writes vector drawing operators onto a single page
// sized to the canvas, one PDF point per canvas unit.
type PDF struct {
	pdf        *gofpdf.Fpdf
	w, h       float64
	background color.Color
	fill       color.Color
	hasPoint   bool
}

var _ surface.Surface = (*PDF)(nil)

// NewPDF starts a one-page document. fontData is registered as the UTF-8
// font used for text and must be a TrueType font.
func NewPDF(w, h float64, fontData []byte) (*PDF, error) {
	// gofpdf only prints font parse failures, so check the data first.
	if _, err := truetype.Parse(fontData); err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddUTF8FontFromBytes(glyphFamily, "", fontData)
	p.AddPage()

	return &PDF{
		pdf:        p,
		w:          w,
		h:          h,
		background: color.White,
		fill:       color.Black,
	}, nil
}

// SetBackground sets the color ClearRect paints.
func (p *PDF) SetBackground(c color.Color) { p.background = c }

// Output finishes the document and writes it to w.
func (p *PDF) Output(w io.Writer) error {
	return p.pdf.Output(w)
}

func (p *PDF) Size() (float64, float64) { return p.w, p.h }

// ClearRect paints the background color; a PDF page cannot be erased.
func (p *PDF) ClearRect(x, y, w, h float64) {
	p.pdf.SetFillColor(rgb(p.background))
	p.pdf.Rect(x, y, w, h, "F")
	p.pdf.SetFillColor(rgb(p.fill))
}

func (p *PDF) BeginPath() { p.hasPoint = false }

func (p *PDF) MoveTo(x, y float64) {
	p.pdf.MoveTo(x, y)
	p.hasPoint = true
}

func (p *PDF) LineTo(x, y float64) {
	if !p.hasPoint {
		p.MoveTo(x, y)
		return
	}
	p.pdf.LineTo(x, y)
}

// Arc maps canvas angles (clockwise, y down) onto gofpdf's counter-clockwise
// degrees, so the arc is traced from end to start.
func (p *PDF) Arc(x, y, r, start, end float64) {
	if !p.hasPoint {
		p.MoveTo(x+r*math.Cos(end), y+r*math.Sin(end))
	}
	p.pdf.ArcTo(x, y, r, r, 0, -end*180/math.Pi, -start*180/math.Pi)
}

func (p *PDF) Stroke() { p.pdf.DrawPath("D") }
func (p *PDF) Fill()   { p.pdf.DrawPath("F") }

func (p *PDF) SetLineWidth(w float64) { p.pdf.SetLineWidth(w) }

func (p *PDF) SetLineCap(c surface.LineCap) { p.pdf.SetLineCapStyle(c.String()) }

func (p *PDF) SetStrokeColor(c color.Color) { p.pdf.SetDrawColor(rgb(c)) }

func (p *PDF) SetFillColor(c color.Color) {
	p.fill = c
	p.pdf.SetFillColor(rgb(c))
	p.pdf.SetTextColor(rgb(c))
}

func (p *PDF) SetFont(size float64) { p.pdf.SetFont(glyphFamily, "", size) }

func (p *PDF) FillText(text string, x, y float64) { p.pdf.Text(x, y, text) }

func rgb(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
