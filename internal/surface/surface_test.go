package surface

import (
	"bytes"
	"image/color"
	"math"
	"testing"
)

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r < 0x4000 && g < 0x4000 && b < 0x4000
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestNewRasterInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRaster(tt.w, tt.h); err == nil {
				t.Error("NewRaster() should fail")
			}
		})
	}
}

func TestNewRasterBadFont(t *testing.T) {
	if _, err := NewRaster(8, 8, WithFontData([]byte("not a font"))); err == nil {
		t.Error("NewRaster() should reject invalid font data")
	}
}

func TestRasterStartsBlank(t *testing.T) {
	r, err := NewRaster(16, 16)
	if err != nil {
		t.Fatalf("NewRaster() error = %v", err)
	}
	if w, h := r.Size(); w != 16 || h != 16 {
		t.Errorf("Size() = %vx%v, want 16x16", w, h)
	}
	if !isWhite(r.Image().At(8, 8)) {
		t.Error("new raster should be white")
	}
}

func TestRasterStrokeAndClear(t *testing.T) {
	r, err := NewRaster(32, 32)
	if err != nil {
		t.Fatalf("NewRaster() error = %v", err)
	}
	r.SetLineCap(LineCapRound)
	r.SetStrokeColor(color.Black)
	r.SetLineWidth(5)
	r.BeginPath()
	r.MoveTo(4, 16)
	r.LineTo(28, 16)
	r.Stroke()

	if !isDark(r.Image().At(16, 16)) {
		t.Error("pixel under the stroke should be dark")
	}
	if !isWhite(r.Image().At(16, 4)) {
		t.Error("pixel away from the stroke should stay white")
	}

	r.ClearRect(0, 0, 32, 32)
	if !isWhite(r.Image().At(16, 16)) {
		t.Error("ClearRect should restore the background")
	}
}

func TestRasterFillCircle(t *testing.T) {
	r, err := NewRaster(20, 20)
	if err != nil {
		t.Fatalf("NewRaster() error = %v", err)
	}
	r.SetFillColor(color.Black)
	r.BeginPath()
	r.Arc(10, 10, 4, 0, 2*math.Pi)
	r.Fill()
	if !isDark(r.Image().At(10, 10)) {
		t.Error("circle center should be filled")
	}
	if !isWhite(r.Image().At(1, 1)) {
		t.Error("corner should stay white")
	}
}

func TestRasterFillText(t *testing.T) {
	r, err := NewRaster(64, 32)
	if err != nil {
		t.Fatalf("NewRaster() error = %v", err)
	}
	r.SetFillColor(color.Black)
	r.SetFont(24)
	r.FillText("HI", 4, 28)

	img := r.Image()
	inked := false
	for y := 0; y < 32 && !inked; y++ {
		for x := 0; x < 64; x++ {
			if !isWhite(img.At(x, y)) {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("FillText should put ink on the image")
	}
}

func TestRasterEncodePNG(t *testing.T) {
	r, err := NewRaster(4, 4)
	if err != nil {
		t.Fatalf("NewRaster() error = %v", err)
	}
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("EncodePNG() should write a PNG signature")
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(10, 20)
	r.ClearRect(0, 0, 10, 20)
	r.SetLineCap(LineCapRound)
	r.SetStrokeColor(color.Black)
	r.BeginPath()
	r.MoveTo(1, 2)
	r.LineTo(3.5, 4)
	r.Stroke()
	r.FillText("x", 1, 1)

	want := []string{
		"clearRect(0,0,10,20)",
		"lineCap(round)",
		"strokeColor(#000000ff)",
		"beginPath()",
		"moveTo(1,2)",
		"lineTo(3.5,4)",
		"stroke()",
		`fillText("x",1,1)`,
	}
	got := r.Ops()
	if len(got) != len(want) {
		t.Fatalf("Ops() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d = %q, want %q", i, got[i], want[i])
		}
	}
	if n := r.Count("lineTo"); n != 1 {
		t.Errorf("Count(lineTo) = %d, want 1", n)
	}

	r.Reset()
	if len(r.Ops()) != 0 {
		t.Error("Reset() should drop recorded ops")
	}
}

func TestLineCapString(t *testing.T) {
	tests := []struct {
		c    LineCap
		want string
	}{
		{LineCapButt, "butt"},
		{LineCapRound, "round"},
		{LineCapSquare, "square"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
