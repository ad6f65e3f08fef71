package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

const (
	buttonSize   = 30
	buttonMargin = 10
)

// UISystem is the row of screen-space buttons in the top right corner and
// the debug panel. Buttons are laid out right to left in the order added.
type UISystem struct {
	buttons []*Button
	face    font.Face
	width   int
	Debug   *DebugPanel
}

func NewUISystem(face font.Face) *UISystem {
	return &UISystem{face: face, Debug: &DebugPanel{}}
}

// NewZoomControls returns a UISystem with "+" and "-" buttons.
func NewZoomControls(face font.Face, onZoomIn, onZoomOut func()) *UISystem {
	ui := NewUISystem(face)
	ui.AddButton("+", onZoomIn)
	ui.AddButton("-", onZoomOut)
	return ui
}

func (ui *UISystem) AddButton(label string, onClick func()) *Button {
	b := &Button{Label: label, W: buttonSize, H: buttonSize, OnClick: onClick}
	ui.buttons = append(ui.buttons, b)
	ui.layout()
	return b
}

// Resize re-anchors the buttons to a screen of the given width.
func (ui *UISystem) Resize(width int) {
	ui.width = width
	ui.layout()
}

func (ui *UISystem) layout() {
	for i, b := range ui.buttons {
		b.X = float32(ui.width) - float32(i+1)*(b.W+buttonMargin)
		b.Y = buttonMargin
	}
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

// Click runs the handler of the button under (mx, my), if any.
func (ui *UISystem) Click(mx, my int) bool {
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

// Update polls the mouse and reports whether a button took the click.
func (ui *UISystem) Update() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	return ui.Click(mx, my)
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	for _, b := range ui.buttons {
		b.Draw(screen, ui.face)
	}
	ui.Debug.Draw(screen, ui.face)
}
