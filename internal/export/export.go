// Package export renders committed drawables to PNG and PDF through the same
// paint routine the on-screen canvas uses.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/font/gofont/goregular"

	"EZSketch/internal/state"
	"EZSketch/internal/surface"
)

// ErrNothingToExport is returned when there are no drawables.
var ErrNothingToExport = errors.New("nothing to export")

// Option configures an export.
type Option func(*options)

type options struct {
	width, height int
	fontData      []byte
	background    color.Color
}

// WithSize sets the output size in canvas units. Defaults to 256x256.
func WithSize(w, h int) Option {
	return func(o *options) { o.width, o.height = w, h }
}

// WithFontData sets the TrueType font used for stickers.
func WithFontData(ttf []byte) Option {
	return func(o *options) {
		if len(ttf) > 0 {
			o.fontData = ttf
		}
	}
}

// WithBackground sets the page color. Defaults to white.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = c
		}
	}
}

func newOptions(opts []Option) options {
	o := options{width: 256, height: 256, fontData: goregular.TTF, background: color.White}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WritePNG paints items onto a fresh raster and encodes it as PNG.
func WritePNG(w io.Writer, items []state.Drawable, opts ...Option) error {
	if len(items) == 0 {
		return ErrNothingToExport
	}
	o := newOptions(opts)
	r, err := surface.NewRaster(o.width, o.height,
		surface.WithFontData(o.fontData),
		surface.WithBackground(o.background),
	)
	if err != nil {
		return fmt.Errorf("failed to create raster: %w", err)
	}
	state.Paint(r, items)
	if err := r.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// WritePDF paints items onto a one-page PDF.
func WritePDF(w io.Writer, items []state.Drawable, opts ...Option) error {
	if len(items) == 0 {
		return ErrNothingToExport
	}
	o := newOptions(opts)
	p, err := NewPDF(float64(o.width), float64(o.height), o.fontData)
	if err != nil {
		return err
	}
	p.SetBackground(o.background)
	state.Paint(p, items)
	if err := p.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
