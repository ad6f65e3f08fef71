package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"scaling-canvas/canvas"
	"scaling-canvas/diagram"
	"scaling-canvas/fonts"
	"scaling-canvas/geom"
	"scaling-canvas/host/ebitenhost"
	"scaling-canvas/logging"
	"scaling-canvas/ui"
)

type Game struct {
	cfg     AppConfig
	surface *ebitenhost.Surface
	canvas  *canvas.ScalingCanvas
	camera  *ViewCamera
	scene   Scene
	log     *slog.Logger

	diagram     *diagram.Diagram
	brush       *diagram.Brush
	showDiagram bool
	laidOut     bool

	// Sub-systems
	input *InputSystem
	ui    *ui.UISystem

	ticks               int
	lastSceneErr        string
	screenshotRequested bool
}

func NewGame(cfg AppConfig) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		camera: NewViewCamera(cfg.Camera),
		log:    logging.WithComponent("app"),
	}
	g.ui = ui.NewZoomControls(fonts.Face(fonts.Sans, 16), func() { g.Zoom(1) }, func() { g.Zoom(-1) })
	g.ui.Resize(cfg.Window.Width)
	g.input = NewInputSystem(g)

	g.surface = ebitenhost.New(cfg.Window.Width, cfg.Window.Height, g.ui.Debug)
	sc, err := canvas.New(g.surface, canvas.WithCamera(g.camera.Center, g.camera.Size))
	if err != nil {
		return nil, err
	}
	g.canvas = sc
	g.surface.OnResize(func() {
		w, _ := g.surface.ClientSize()
		g.ui.Resize(w)
	})

	g.scene = newOrbitScene(sc, cfg)
	if cfg.Scene != "" {
		s, err := loadScene(cfg.Scene, sc)
		if err != nil {
			return nil, err
		}
		g.scene = s
		// a scene may have moved the camera at load
		if w, ok := sc.WorldRect(); ok {
			g.camera.Center, g.camera.Size = w.Center(), max(w.Dx(), w.Dy())
		}
	}

	g.diagram = diagram.Demo()
	if cfg.Diagram != "" {
		d, err := diagram.Load(cfg.Diagram)
		switch {
		case err == nil:
			g.diagram = d
		case os.IsNotExist(err):
			g.log.Info("no diagram file yet, using the demo", slog.String("path", cfg.Diagram))
		default:
			return nil, err
		}
	}
	g.brush = diagram.NewBrush(sc.Context(), DiagramUnit)
	return g, nil
}

// Time is the animation clock in seconds.
func (g *Game) Time() float64 {
	return float64(g.ticks) / float64(ebiten.TPS())
}

func (g *Game) Update() error {
	g.ticks++
	if !g.ui.Update() {
		g.input.Update()
	}
	return nil
}

// Zoom zooms the world camera, or scales the diagram in diagram mode.
func (g *Game) Zoom(steps float64) {
	if g.showDiagram {
		unit := g.brush.Unit * (1 + ZoomSpeed*steps)
		unit = min(max(unit, DiagramUnitMin), DiagramUnitMax)
		if unit != g.brush.Unit {
			g.brush.Rescale(unit)
			g.laidOut = false
		}
		return
	}
	if g.camera.Zoom(steps) {
		g.camera.Apply(g.canvas)
	}
}

// Pan drags the world by a pixel displacement.
func (g *Game) Pan(dx, dy float64) {
	if g.showDiagram {
		return
	}
	g.camera.PanPixels(g.canvas, dx, dy)
	g.camera.Apply(g.canvas)
}

func (g *Game) ResetView() {
	g.camera.Reset()
	g.camera.Apply(g.canvas)
	g.brush.Rescale(DiagramUnit)
	g.laidOut = false
}

func (g *Game) ToggleDiagram() {
	g.showDiagram = !g.showDiagram
	g.log.Debug("diagram mode", slog.Bool("on", g.showDiagram))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Frame(screen)
	t := g.Time()

	if g.showDiagram {
		g.drawDiagram(t)
	} else {
		g.drawScene(t)
	}
	g.drawStatus(screen)
	g.ui.Draw(screen)

	if g.screenshotRequested {
		g.screenshotRequested = false
		g.saveScreenshot(screen)
	}
}

func (g *Game) drawScene(t float64) {
	err := g.scene.Draw(t)
	if err == nil {
		if g.lastSceneErr != "" {
			g.lastSceneErr = ""
			g.ui.Debug.Clear()
		}
		return
	}
	if msg := err.Error(); msg != g.lastSceneErr {
		g.lastSceneErr = msg
		g.log.Error("scene draw failed", slog.Any("err", err))
		g.ui.Debug.SetError(msg)
	}
}

func (g *Game) drawDiagram(t float64) {
	if !g.laidOut {
		g.layoutDiagram()
	}
	if err := g.canvas.Clear(ColorDiagramBack); err != nil {
		return
	}
	g.diagram.Paint(g.brush, t)
	g.restoreStyles()
}

func (g *Game) layoutDiagram() {
	g.laidOut = true
	if g.diagram.Placed() {
		g.diagram.Resize(g.brush)
		return
	}
	if err := g.diagram.Layout(g.brush, diagram.DefaultOrigin(g.brush.Unit)); err != nil {
		g.log.Warn("diagram layout failed", slog.Any("err", err))
		g.diagram.Resize(g.brush)
	}
}

// restoreStyles re-applies the canvas styles after the brush drew on the
// shared context.
func (g *Game) restoreStyles() {
	g.canvas.SetStroke(g.canvas.Stroke())
	g.canvas.SetFill(g.canvas.Fill())
	g.canvas.SetFont(g.canvas.Font())
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	mouse, _ := g.canvas.CanvasToWorldPoint(geom.V(float64(mx), float64(my)))
	mode := "scene"
	if g.showDiagram {
		mode = fmt.Sprintf("diagram (unit %.2f)", g.brush.Unit)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"Camera: (%.2f, %.2f) Size: %.2f\n"+
			"Mouse World: (%.2f, %.2f)\n"+
			"Mode: %s\n"+
			"Zoom: wheel or +/-  Pan: drag  R: reset\n"+
			"D: diagram  S: screenshot  Ctrl+S: save diagram",
		g.camera.Center.X, g.camera.Center.Y, g.camera.Size,
		mouse.X, mouse.Y,
		mode,
	), 10, 10)
}

func (g *Game) saveScreenshot(screen *ebiten.Image) {
	name := filepath.Join(g.cfg.Screenshots, "screenshot-"+time.Now().Format("20060102-150405")+".png")
	f, err := os.Create(name)
	if err != nil {
		g.log.Error("screenshot", slog.Any("err", err))
		return
	}
	defer f.Close()
	if err := png.Encode(f, screen); err != nil {
		g.log.Error("screenshot", slog.Any("err", err))
		return
	}
	g.log.Info("screenshot saved", slog.String("path", name))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.surface.Layout(outsideWidth, outsideHeight)
}
