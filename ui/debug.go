package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DebugPanel shows the last error in the bottom right corner of the
// screen until cleared.
type DebugPanel struct {
	Error string
}

var (
	debugBackground = color.RGBA{40, 40, 40, 220}
	debugText       = color.RGBA{255, 200, 50, 255}
)

func (d *DebugPanel) SetError(msg string) {
	d.Error = msg
}

func (d *DebugPanel) Clear() {
	d.Error = ""
}

// Bounds returns the panel rect for a w×h screen.
func (d *DebugPanel) Bounds(w, h int) (x, y, pw, ph int) {
	pw, ph = 300, 80
	if pw > w-20 {
		pw = max(w-20, 0)
	}
	return w - pw - 10, h - ph - 10, pw, ph
}

func (d *DebugPanel) Draw(screen *ebiten.Image, face font.Face) {
	if d == nil || d.Error == "" {
		return
	}
	b := screen.Bounds()
	x, y, pw, ph := d.Bounds(b.Dx(), b.Dy())
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), debugBackground, false)
	DrawTextLines(screen, face, d.Error, x+8, y+8, debugText)
}
