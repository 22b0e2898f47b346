package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"EZSketch/internal/config"
)

// RunApp opens the sketch window and blocks until it is closed or ctx is
// cancelled. A cancelled ctx quits the app and its error is returned.
func RunApp(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Title)

	board, err := NewBoardWidget(cfg, logger)
	if err != nil {
		return err
	}
	toolbar := NewToolbar(board, cfg, myWindow)

	title := widget.NewLabelWithStyle(cfg.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	content := container.NewBorder(
		container.NewVBox(title, toolbar.Object()),
		board.StatusBar(),
		nil, nil,
		container.NewCenter(board),
	)

	myWindow.SetContent(content)
	logger.Info("window open", "title", cfg.Title, "canvas", fmt.Sprintf("%dx%d", cfg.Canvas.Width, cfg.Canvas.Height))
	stop := quitOnDone(ctx, func() {
		logger.Info("interrupted, closing window")
		fyne.Do(myApp.Quit)
	})
	defer stop()

	myWindow.ShowAndRun()
	return ctx.Err()
}

// quitOnDone calls quit once ctx is done. The returned stop func releases
// the watcher without calling quit.
func quitOnDone(ctx context.Context, quit func()) (stop func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-ctx.Done():
			quit()
		case <-done:
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}
