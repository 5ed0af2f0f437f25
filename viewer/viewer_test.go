package viewer

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"github.com/longbridgeapp/assert"
)

func TestWindowSize(t *testing.T) {
	max := fyne.NewSize(1100, 800)

	small := image.NewRGBA(image.Rect(0, 0, 640, 480))
	assert.Equal(t, fyne.NewSize(640, 480), WindowSize(small, max))

	wide := image.NewRGBA(image.Rect(0, 0, 3840, 2880))
	got := WindowSize(wide, max)
	assert.True(t, got.Width <= max.Width)
	assert.True(t, got.Height <= max.Height)
	assert.True(t, got.Height > 799.9)
	assert.True(t, got.Width < 1067 && got.Width > 1066)

	assert.Equal(t, max, WindowSize(image.NewRGBA(image.Rect(0, 0, 0, 0)), max))
}
