package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// RasterOption configures a Raster.
type RasterOption func(*Raster)

// WithFontData replaces the default Go Regular font with a TrueType font,
// typically one that carries emoji glyphs.
func WithFontData(ttf []byte) RasterOption {
	return func(r *Raster) {
		if len(ttf) > 0 {
			r.fontData = ttf
		}
	}
}

// WithBackground sets the color ClearRect paints. Defaults to white.
func WithBackground(c color.Color) RasterOption {
	return func(r *Raster) { r.background = c }
}

// Raster is a Surface backed by an in-memory RGBA image.
type Raster struct {
	dc         *gg.Context
	background color.Color
	fontData   []byte
	font       *truetype.Font
	faces      map[float64]font.Face
}

var _ Surface = (*Raster)(nil)

// NewRaster creates a width x height raster cleared to the background color.
func NewRaster(width, height int, opts ...RasterOption) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", width, height)
	}
	r := &Raster{
		dc:         gg.NewContext(width, height),
		background: color.White,
		fontData:   goregular.TTF,
		faces:      make(map[float64]font.Face),
	}
	for _, opt := range opts {
		opt(r)
	}

	f, err := truetype.Parse(r.fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	r.font = f

	r.dc.SetColor(r.background)
	r.dc.Clear()
	r.dc.SetColor(color.Black)
	return r, nil
}

// Image returns the backing image. It is updated in place by later draws.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the current image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

func (r *Raster) Size() (float64, float64) {
	return float64(r.dc.Width()), float64(r.dc.Height())
}

func (r *Raster) ClearRect(x, y, w, h float64) {
	img, ok := r.dc.Image().(draw.Image)
	if !ok {
		return
	}
	rect := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(img.Bounds())
	draw.Draw(img, rect, image.NewUniform(r.background), image.Point{}, draw.Src)
}

func (r *Raster) BeginPath()          { r.dc.ClearPath() }
func (r *Raster) MoveTo(x, y float64) { r.dc.MoveTo(x, y) }
func (r *Raster) LineTo(x, y float64) { r.dc.LineTo(x, y) }

func (r *Raster) Arc(x, y, radius, start, end float64) {
	r.dc.DrawArc(x, y, radius, start, end)
}

// Stroke and Fill keep the current path, like an HTML canvas does.
func (r *Raster) Stroke() { r.dc.StrokePreserve() }
func (r *Raster) Fill()   { r.dc.FillPreserve() }

func (r *Raster) SetLineWidth(w float64) { r.dc.SetLineWidth(w) }

func (r *Raster) SetLineCap(c LineCap) {
	switch c {
	case LineCapRound:
		r.dc.SetLineCapRound()
	case LineCapSquare:
		r.dc.SetLineCapSquare()
	default:
		r.dc.SetLineCapButt()
	}
}

func (r *Raster) SetStrokeColor(c color.Color) {
	r.dc.SetStrokeStyle(gg.NewSolidPattern(c))
}

// SetFillColor also sets the text color.
func (r *Raster) SetFillColor(c color.Color) {
	r.dc.SetFillStyle(gg.NewSolidPattern(c))
}

func (r *Raster) SetFont(size float64) {
	face, ok := r.faces[size]
	if !ok {
		face = truetype.NewFace(r.font, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		r.faces[size] = face
	}
	r.dc.SetFontFace(face)
}

func (r *Raster) FillText(text string, x, y float64) {
	r.dc.DrawString(text, x, y)
}
