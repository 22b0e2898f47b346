package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"EZSketch/internal/config"
	"EZSketch/internal/state"
)

// Toolbar holds the board's command and tool buttons.
type Toolbar struct {
	Clear, Undo, Redo    *widget.Button
	Thin, Thick          *widget.Button
	Stickers             []*widget.Button
	ExportPNG, ExportPDF *widget.Button

	board  *BoardWidget
	marker config.MarkerConfig
	glyphs []string
}

// NewToolbar wires buttons to board. win is the parent for export dialogs
// and may be nil, in which case the export buttons are left out.
func NewToolbar(board *BoardWidget, cfg config.Config, win fyne.Window) *Toolbar {
	tb := &Toolbar{
		board:  board,
		marker: cfg.Marker,
		glyphs: cfg.Sticker.Glyphs,
	}

	tb.Clear = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), board.Clear)
	tb.Undo = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), board.Undo)
	tb.Redo = widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), board.Redo)

	tb.Thin = widget.NewButton("Thin", func() { board.SelectMarker(cfg.Marker.Thin) })
	tb.Thick = widget.NewButton("Thick", func() { board.SelectMarker(cfg.Marker.Thick) })

	for _, g := range cfg.Sticker.Glyphs {
		tb.Stickers = append(tb.Stickers, widget.NewButton(g, func() { board.SelectSticker(g) }))
	}

	if win != nil {
		tb.ExportPNG = widget.NewButtonWithIcon("PNG", theme.DocumentSaveIcon(), func() {
			showExportDialog(win, board, FormatPNG)
		})
		tb.ExportPDF = widget.NewButtonWithIcon("PDF", theme.DocumentSaveIcon(), func() {
			showExportDialog(win, board, FormatPDF)
		})
	}

	board.OnChanged = tb.Refresh
	tb.Refresh()
	return tb
}

// Refresh highlights the active tool and enables Undo/Redo only when there
// is something to move.
func (tb *Toolbar) Refresh() {
	tool := tb.board.Tool()

	highlight(tb.Thin, tool.Kind == state.ToolMarker && tool.Thickness == tb.marker.Thin)
	highlight(tb.Thick, tool.Kind == state.ToolMarker && tool.Thickness == tb.marker.Thick &&
		tb.marker.Thick != tb.marker.Thin)
	for i, btn := range tb.Stickers {
		highlight(btn, tool.Kind == state.ToolSticker && tool.Glyph == tb.glyphs[i])
	}

	enable(tb.Undo, tb.board.CanUndo())
	enable(tb.Redo, tb.board.CanRedo())
}

func highlight(btn *widget.Button, on bool) {
	want := widget.MediumImportance
	if on {
		want = widget.HighImportance
	}
	if btn.Importance != want {
		btn.Importance = want
		btn.Refresh()
	}
}

func enable(btn *widget.Button, on bool) {
	if on {
		btn.Enable()
	} else {
		btn.Disable()
	}
}

// Object lays the toolbar out in one row.
func (tb *Toolbar) Object() fyne.CanvasObject {
	row := []fyne.CanvasObject{
		tb.Clear, tb.Undo, tb.Redo,
		widget.NewSeparator(),
		tb.Thin, tb.Thick,
		widget.NewSeparator(),
	}
	for _, btn := range tb.Stickers {
		row = append(row, btn)
	}
	if tb.ExportPNG != nil {
		row = append(row, widget.NewSeparator(), widget.NewLabel("Export:"), tb.ExportPNG, tb.ExportPDF)
	}
	row = append(row, layout.NewSpacer())
	return container.NewHBox(row...)
}
