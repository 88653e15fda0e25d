// Package window shows a chart in a desktop window.
package window

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"github.com/jbreitbart/kvplot/chart"
)

// Viewer opens one window per process; Show blocks until the user closes it.
type Viewer struct{}

func (Viewer) Show(c *chart.Chart) error {
	img, err := c.Image()
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow(c.Title)

	chartImg := canvas.NewImageFromImage(img)
	chartImg.FillMode = canvas.ImageFillContain

	bounds := img.Bounds()
	size := fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy()))
	chartImg.SetMinSize(fyne.NewSize(size.Width/2, size.Height/2))

	w.SetContent(chartImg)
	w.Resize(size)
	w.ShowAndRun()

	return nil
}
