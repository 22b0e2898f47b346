package surface

import (
	"fmt"
	"image/color"
	"strings"
)

// Recorder is a Surface that paints nothing and remembers every call in
// order. Two renders of the same state produce the same op list.
type Recorder struct {
	Width, Height float64
	ops           []string
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns a recorder reporting the given size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Width: w, Height: h}
}

// Ops returns a copy of the recorded calls.
func (r *Recorder) Ops() []string {
	out := make([]string, len(r.ops))
	copy(out, r.ops)
	return out
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() { r.ops = r.ops[:0] }

// Count returns how many recorded calls start with name, e.g. "fillText".
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.ops {
		if strings.HasPrefix(op, name+"(") {
			n++
		}
	}
	return n
}

func (r *Recorder) String() string { return strings.Join(r.ops, "\n") }

func (r *Recorder) record(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record("clearRect(%g,%g,%g,%g)", x, y, w, h)
}

func (r *Recorder) BeginPath()          { r.record("beginPath()") }
func (r *Recorder) MoveTo(x, y float64) { r.record("moveTo(%g,%g)", x, y) }
func (r *Recorder) LineTo(x, y float64) { r.record("lineTo(%g,%g)", x, y) }

func (r *Recorder) Arc(x, y, radius, start, end float64) {
	r.record("arc(%g,%g,%g,%.4f,%.4f)", x, y, radius, start, end)
}

func (r *Recorder) Stroke() { r.record("stroke()") }
func (r *Recorder) Fill()   { r.record("fill()") }

func (r *Recorder) SetLineWidth(w float64) { r.record("lineWidth(%g)", w) }
func (r *Recorder) SetLineCap(c LineCap)   { r.record("lineCap(%s)", c) }

func (r *Recorder) SetStrokeColor(c color.Color) { r.record("strokeColor(%s)", hex(c)) }
func (r *Recorder) SetFillColor(c color.Color)   { r.record("fillColor(%s)", hex(c)) }

func (r *Recorder) SetFont(size float64) { r.record("font(%g)", size) }

func (r *Recorder) FillText(text string, x, y float64) {
	r.record("fillText(%q,%g,%g)", text, x, y)
}

func hex(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", rgba.R, rgba.G, rgba.B, rgba.A)
}
