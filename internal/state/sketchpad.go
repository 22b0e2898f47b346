package state

import (
	"github.com/charmbracelet/log"

	"EZSketch/internal/surface"
)

const (
	DefaultThin     = 2.0
	DefaultThick    = 5.0
	DefaultFontSize = 24.0
)

// Option configures a Sketchpad.
type Option func(*Sketchpad)

func WithLogger(l *log.Logger) Option {
	return func(p *Sketchpad) { p.logger = l }
}

func WithHistory(h *History) Option {
	return func(p *Sketchpad) { p.history = h }
}

// WithTool sets the tool active before any selection. Defaults to the thin
// marker.
func WithTool(t Tool) Option {
	return func(p *Sketchpad) { p.tool = t }
}

// WithStickerFont sets the glyph size for stickers and their preview.
func WithStickerFont(size float64) Option {
	return func(p *Sketchpad) { p.fontSize = size }
}

// WithStickerDrag lets a sticker follow the pointer until the button is
// released. Without it a sticker is committed on pointer-down.
func WithStickerDrag(drag bool) Option {
	return func(p *Sketchpad) { p.stickerDrag = drag }
}

// WithOnRedraw registers a callback run after every redraw.
func WithOnRedraw(fn func()) Option {
	return func(p *Sketchpad) { p.onRedraw = fn }
}

// WithTrace replays every redraw into rec and logs the recorded ops at debug
// level.
func WithTrace(rec *surface.Recorder) Option {
	return func(p *Sketchpad) { p.trace = rec }
}

// Sketchpad owns all drawing state and turns pointer and tool events into
// history changes. Every state change is followed by a full redraw.
type Sketchpad struct {
	surface surface.Surface
	history *History
	logger  *log.Logger

	tool        Tool
	fontSize    float64
	stickerDrag bool
	onRedraw    func()
	trace       *surface.Recorder

	preview *Preview
	pointer Point

	drawing bool
	stroke  *Stroke
	sticker *Sticker
}

func New(s surface.Surface, opts ...Option) *Sketchpad {
	p := &Sketchpad{
		surface:  s,
		tool:     Marker(DefaultThin),
		fontSize: DefaultFontSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.history == nil {
		p.history = NewHistory()
	}
	if p.logger == nil {
		p.logger = log.Default()
	}
	return p
}

func (p *Sketchpad) History() *History { return p.history }
func (p *Sketchpad) Tool() Tool        { return p.tool }
func (p *Sketchpad) Drawing() bool     { return p.drawing }

// Preview returns the current preview, or nil while none is shown.
func (p *Sketchpad) Preview() *Preview { return p.preview }

// ActiveStroke returns the stroke being drawn, if any.
func (p *Sketchpad) ActiveStroke() *Stroke { return p.stroke }

func (p *Sketchpad) PointerDown(pt Point) {
	if !pt.finite() || p.drawing {
		return
	}
	p.pointer = pt
	p.drawing = true
	p.preview = nil

	switch p.tool.Kind {
	case ToolMarker:
		p.stroke = NewStroke(pt, p.tool.Thickness)
	case ToolSticker:
		s := NewSticker(pt, p.tool.Glyph, p.fontSize)
		if p.stickerDrag {
			p.sticker = s
		} else {
			s.Place()
			p.commit(s)
		}
	}
	p.Redraw()
}

func (p *Sketchpad) PointerMove(pt Point) {
	if !pt.finite() {
		return
	}
	p.pointer = pt

	if p.drawing {
		switch {
		case p.stroke != nil:
			p.stroke.Extend(pt)
		case p.sticker != nil:
			p.sticker.Reposition(pt)
		default:
			return
		}
		p.Redraw()
		return
	}

	if p.preview == nil {
		p.preview = NewPreview(pt, p.tool, p.fontSize)
	} else {
		p.preview.MoveTo(pt)
		p.preview.SetTool(p.tool)
	}
	p.Redraw()
}

func (p *Sketchpad) PointerUp(pt Point) {
	if !p.drawing {
		return
	}
	if pt.finite() {
		p.pointer = pt
	}
	p.endGesture()
	p.Redraw()
}

// PointerLeave hides the preview. A gesture still in progress ends as if the
// button had been released.
func (p *Sketchpad) PointerLeave() {
	if p.drawing {
		p.endGesture()
	}
	p.preview = nil
	p.Redraw()
}

func (p *Sketchpad) endGesture() {
	if p.stroke != nil {
		p.stroke.Finish()
		p.commit(p.stroke)
		p.stroke = nil
	}
	if p.sticker != nil {
		p.sticker.Place()
		p.commit(p.sticker)
		p.sticker = nil
	}
	p.drawing = false
}

func (p *Sketchpad) commit(d Drawable) {
	p.history.Commit(d)
	keepRedo := p.history.KeepsRedo()
	switch v := d.(type) {
	case *Stroke:
		p.logger.Debug("stroke committed", "id", v.ID, "points", v.Len(), "thickness", v.Thickness(), "keep_redo", keepRedo)
	case *Sticker:
		p.logger.Debug("sticker placed", "id", v.ID, "glyph", v.Glyph, "x", v.pos.X, "y", v.pos.Y, "keep_redo", keepRedo)
	}
}

// SelectMarker switches to a marker of the given thickness.
func (p *Sketchpad) SelectMarker(thickness float64) {
	p.selectTool(Marker(thickness))
}

// SelectSticker switches to placing glyph.
func (p *Sketchpad) SelectSticker(glyph string) {
	p.selectTool(StickerTool(glyph, p.tool.Thickness))
}

func (p *Sketchpad) selectTool(t Tool) {
	p.tool = t
	p.preview = NewPreview(p.pointer, t, p.fontSize)
	p.logger.Debug("tool selected", "tool", t)
	p.Redraw()
}

func (p *Sketchpad) Undo() {
	if p.history.Undo() {
		p.logger.Debug("undo", "revision", p.history.Revision())
	}
	p.Redraw()
}

func (p *Sketchpad) Redo() {
	if p.history.Redo() {
		p.logger.Debug("redo", "revision", p.history.Revision())
	}
	p.Redraw()
}

func (p *Sketchpad) Clear() {
	p.history.Clear()
	p.logger.Debug("cleared", "revision", p.history.Revision())
	p.Redraw()
}

// Redraw repaints the surface from history plus the in-progress drawable
// and the preview.
func (p *Sketchpad) Redraw() {
	var overlays []Drawable
	if p.stroke != nil {
		overlays = append(overlays, p.stroke)
	}
	if p.sticker != nil {
		overlays = append(overlays, p.sticker)
	}
	if p.preview != nil && !p.drawing {
		overlays = append(overlays, p.preview)
	}
	Paint(p.surface, p.history.committed, overlays...)

	if p.trace != nil {
		p.trace.Reset()
		Paint(p.trace, p.history.committed, overlays...)
		p.logger.Debug("redraw",
			"revision", p.history.Revision(),
			"drawables", drawableIDs(p.history.committed),
			"ops", len(p.trace.Ops()),
			"trace", p.trace.String())
	}

	if p.onRedraw != nil {
		p.onRedraw()
	}
}
