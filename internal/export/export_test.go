package export

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"EZSketch/internal/state"
)

func sample() []state.Drawable {
	s := state.NewStroke(state.Point{X: 10, Y: 10}, 5)
	s.Extend(state.Point{X: 100, Y: 100})
	s.Finish()
	st := state.NewSticker(state.Point{X: 40, Y: 200}, "A", 24)
	st.Place()
	return []state.Drawable{s, st}
}

func TestNothingToExport(t *testing.T) {
	tests := []struct {
		name  string
		write func(*bytes.Buffer) error
	}{
		{"png", func(b *bytes.Buffer) error { return WritePNG(b, nil) }},
		{"pdf", func(b *bytes.Buffer) error { return WritePDF(b, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.write(&buf); !errors.Is(err, ErrNothingToExport) {
				t.Errorf("error = %v, want ErrNothingToExport", err)
			}
			if buf.Len() != 0 {
				t.Error("nothing should be written")
			}
		})
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, sample(), WithSize(128, 256)); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 256 {
		t.Errorf("image is %dx%d, want 128x256", b.Dx(), b.Dy())
	}
	r, g, bl, _ := img.At(55, 55).RGBA()
	if r > 0x4000 || g > 0x4000 || bl > 0x4000 {
		t.Error("pixel on the stroke should be dark")
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sample()); err != nil {
		t.Fatalf("WritePDF() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestWritePDFBadFont(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, sample(), WithFontData([]byte("garbage")))
	if err == nil {
		t.Error("WritePDF() should report an unusable font")
	}
}

func TestWritePNGBackground(t *testing.T) {
	var buf bytes.Buffer
	bg := color.RGBA{R: 0x20, G: 0x40, B: 0x60, A: 0xff}
	if err := WritePNG(&buf, sample(), WithBackground(bg)); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	r, g, b, _ := img.At(250, 5).RGBA()
	if r>>8 != 0x20 || g>>8 != 0x40 || b>>8 != 0x60 {
		t.Errorf("corner pixel = %02x%02x%02x, want 204060", r>>8, g>>8, b>>8)
	}
}
