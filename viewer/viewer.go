// Package viewer shows a rendered figure in a desktop window.
package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

const appID = "net.netmeasure.viewer"

// WindowSize returns the window size for img, shrunk to fit within max while keeping the aspect ratio.
func WindowSize(img image.Image, max fyne.Size) fyne.Size {
	b := img.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	if w <= 0 || h <= 0 {
		return max
	}
	scale := float32(1)
	if w > max.Width {
		scale = max.Width / w
	}
	if h*scale > max.Height {
		scale = max.Height / h
	}
	return fyne.NewSize(min(w*scale, max.Width), min(h*scale, max.Height))
}

// Show blocks until the window is closed.
func Show(title string, img image.Image) {
	a := app.NewWithID(appID)
	w := a.NewWindow(title)
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	w.SetContent(c)
	w.Resize(WindowSize(img, fyne.NewSize(1100, 800)))
	w.ShowAndRun()
}
