package ui

import (
	"errors"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"EZSketch/internal/export"
)

// Format is an export file type.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

func (f Format) ext() string { return "." + string(f) }

// Export writes the committed drawables in the given format. The preview is
// never exported.
func (b *BoardWidget) Export(w io.Writer, f Format) error {
	opts := []export.Option{
		export.WithSize(int(b.width), int(b.height)),
		export.WithFontData(b.fontData),
		export.WithBackground(b.background),
	}
	items := b.Snapshot()
	switch f {
	case FormatPNG:
		return export.WritePNG(w, items, opts...)
	case FormatPDF:
		return export.WritePDF(w, items, opts...)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

// SaveToFile exports into writer and reports the outcome on the status bar.
func (b *BoardWidget) SaveToFile(writer fyne.URIWriteCloser, f Format) {
	defer func() {
		if err := writer.Close(); err != nil {
			b.logger.Error("closing export file", "err", err)
		}
	}()

	n := len(b.Snapshot())
	if err := b.Export(writer, f); err != nil {
		b.logger.Error("export failed", "format", f, "err", err)
		if errors.Is(err, export.ErrNothingToExport) {
			b.SetStatus("Nothing to export")
			return
		}
		b.SetStatus("Error exporting file")
		return
	}
	b.logger.Info("exported drawing", "format", f, "uri", writer.URI(), "drawables", n)
	b.SetStatus(fmt.Sprintf("Exported %d drawings", n))
}

func showExportDialog(win fyne.Window, b *BoardWidget, f Format) {
	if len(b.Snapshot()) == 0 {
		b.SetStatus("Nothing to export")
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		b.SaveToFile(writer, f)
	}, win)
	d.SetFileName("sketch" + f.ext())
	d.SetFilter(storage.NewExtensionFileFilter([]string{f.ext()}))
	d.Show()
}

