package ui

import (
	"fmt"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"EZSketch/internal/config"
	"EZSketch/internal/state"
	"EZSketch/internal/surface"
)

// BoardWidget shows the sketchpad's raster and feeds it pointer events.
type BoardWidget struct {
	widget.BaseWidget
	mu sync.Mutex

	pad    *state.Sketchpad
	raster *surface.Raster
	image  *canvas.Image
	logger *log.Logger

	width, height float64
	fontData      []byte
	background    color.Color
	last          fyne.Position

	revision uint64
	tool     state.Tool

	// OnChanged runs after history or the active tool changes.
	OnChanged func()
	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(cfg config.Config, logger *log.Logger) (*BoardWidget, error) {
	fontData, err := cfg.FontData()
	if err != nil {
		return nil, err
	}
	background, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	raster, err := surface.NewRaster(cfg.Canvas.Width, cfg.Canvas.Height,
		surface.WithFontData(fontData),
		surface.WithBackground(background),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create canvas: %w", err)
	}

	if logger == nil {
		logger = log.Default()
	}
	b := &BoardWidget{
		raster:     raster,
		logger:     logger,
		width:      float64(cfg.Canvas.Width),
		height:     float64(cfg.Canvas.Height),
		fontData:   fontData,
		background: background,
		statusBar:  widget.NewLabel("Ready"),
	}
	b.image = canvas.NewImageFromImage(raster.Image())
	b.image.FillMode = canvas.ImageFillStretch
	b.image.ScaleMode = canvas.ImageScalePixels
	b.image.SetMinSize(fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height)))

	history := state.NewHistory(state.KeepRedoOnCommit(cfg.History.KeepRedoOnCommit))
	opts := []state.Option{
		state.WithLogger(logger.WithPrefix("sketchpad")),
		state.WithHistory(history),
		state.WithTool(state.Marker(cfg.Marker.Thin)),
		state.WithStickerFont(cfg.Sticker.FontSize),
		state.WithStickerDrag(cfg.Sticker.Drag),
		state.WithOnRedraw(b.image.Refresh),
	}
	if cfg.Log.Trace {
		opts = append(opts, state.WithTrace(surface.NewRecorder(b.width, b.height)))
	}
	b.pad = state.New(raster, opts...)
	b.tool = b.pad.Tool()
	b.ExtendBaseWidget(b)
	return b, nil
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.image)
}

// StatusBar is the label the board reports export results on.
func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

func (b *BoardWidget) SetStatus(text string) { b.statusBar.SetText(text) }

// do runs fn against the sketchpad and notifies OnChanged if history or the
// tool moved.
func (b *BoardWidget) do(fn func(p *state.Sketchpad)) {
	b.mu.Lock()
	fn(b.pad)
	rev, tool := b.pad.History().Revision(), b.pad.Tool()
	changed := rev != b.revision || tool != b.tool
	b.revision, b.tool = rev, tool
	b.mu.Unlock()

	if changed && b.OnChanged != nil {
		b.OnChanged()
	}
}

// toPoint maps widget coordinates onto the canvas, which may be stretched.
func (b *BoardWidget) toPoint(pos fyne.Position) state.Point {
	size := b.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return state.Point{X: float64(pos.X), Y: float64(pos.Y)}
	}
	return state.Point{
		X: float64(pos.X) * b.width / float64(size.Width),
		Y: float64(pos.Y) * b.height / float64(size.Height),
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.last = e.Position
	pt := b.toPoint(e.Position)
	b.do(func(p *state.Sketchpad) { p.PointerDown(pt) })
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.last = e.Position
	pt := b.toPoint(e.Position)
	b.do(func(p *state.Sketchpad) { p.PointerUp(pt) })
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.last = e.Position
	pt := b.toPoint(e.Position)
	b.do(func(p *state.Sketchpad) { p.PointerMove(pt) })
}

func (b *BoardWidget) DragEnd() {
	pt := b.toPoint(b.last)
	b.do(func(p *state.Sketchpad) { p.PointerUp(pt) })
}

func (b *BoardWidget) MouseIn(e *desktop.MouseEvent) {
	b.MouseMoved(e)
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.last = e.Position
	pt := b.toPoint(e.Position)
	b.do(func(p *state.Sketchpad) { p.PointerMove(pt) })
}

func (b *BoardWidget) MouseOut() {
	b.do(func(p *state.Sketchpad) { p.PointerLeave() })
}

func (b *BoardWidget) Undo()  { b.do(func(p *state.Sketchpad) { p.Undo() }) }
func (b *BoardWidget) Redo()  { b.do(func(p *state.Sketchpad) { p.Redo() }) }
func (b *BoardWidget) Clear() { b.do(func(p *state.Sketchpad) { p.Clear() }) }

func (b *BoardWidget) SelectMarker(thickness float64) {
	b.do(func(p *state.Sketchpad) { p.SelectMarker(thickness) })
}

func (b *BoardWidget) SelectSticker(glyph string) {
	b.do(func(p *state.Sketchpad) { p.SelectSticker(glyph) })
}

func (b *BoardWidget) Tool() state.Tool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pad.Tool()
}

func (b *BoardWidget) CanUndo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pad.History().CanUndo()
}

func (b *BoardWidget) CanRedo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pad.History().CanRedo()
}

// Snapshot returns the committed drawables, oldest first.
func (b *BoardWidget) Snapshot() []state.Drawable {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pad.History().Committed()
}
