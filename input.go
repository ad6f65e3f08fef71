package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"scaling-canvas/diagram"
)

// InputSystem turns mouse and keyboard state into camera and mode changes.
type InputSystem struct {
	game *Game

	// Panning state
	isPanning  bool
	lastMouseX int
	lastMouseY int
}

func NewInputSystem(g *Game) *InputSystem {
	return &InputSystem{game: g}
}

func (is *InputSystem) Update() {
	mx, my := ebiten.CursorPosition()
	overUI := is.game.ui.IsMouseOver(mx, my)

	is.handleControlKeys()
	is.handleZoom()
	is.handlePanning(mx, my, overUI)
}

func (is *InputSystem) handleControlKeys() {
	g := is.game
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		path := g.cfg.Diagram
		if path == "" {
			path = DiagramSaveFile
		}
		if err := diagram.Save(g.diagram, path); err != nil {
			g.log.Error("save diagram", slog.String("path", path), slog.Any("err", err))
			g.ui.Debug.SetError(err.Error())
		} else {
			g.log.Info("diagram saved", slog.String("path", path))
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyS), inpututil.IsKeyJustPressed(ebiten.KeyF1):
		g.screenshotRequested = true
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.ToggleDiagram()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.ResetView()
	}
}

func (is *InputSystem) handleZoom() {
	_, dy := ebiten.Wheel()

	// Keyboard Zooming
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		dy += KeyZoomStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		dy -= KeyZoomStep
	}
	if dy != 0 {
		is.game.Zoom(dy)
	}
}

func (is *InputSystem) handlePanning(mx, my int, overUI bool) {
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) ||
		(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !overUI)

	if !held {
		is.isPanning = false
		return
	}
	if !is.isPanning {
		is.isPanning = true
		is.lastMouseX, is.lastMouseY = mx, my
		return
	}
	dx, dy := mx-is.lastMouseX, my-is.lastMouseY
	if dx != 0 || dy != 0 {
		is.game.Pan(float64(dx), float64(dy))
	}
	is.lastMouseX, is.lastMouseY = mx, my
}
