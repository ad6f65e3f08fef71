package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"scaling-canvas/canvas"
	"scaling-canvas/geom"
	"scaling-canvas/logging"
	"scaling-canvas/script"
)

// Scene draws one frame at time t, in seconds.
type Scene interface {
	Draw(t float64) error
}

const (
	orbitSpeed = 0.25 * 2 * math.Pi
	ballSize   = 0.1
	maxSteps   = 5_000_000
)

// orbitScene is the built-in demo: a box, a unit circle, the axes and a
// ball going around the circle once every four seconds.
type orbitScene struct {
	sc   *canvas.ScalingCanvas
	cfg  AppConfig
	grid canvas.StrokeStyle
}

func newOrbitScene(sc *canvas.ScalingCanvas, cfg AppConfig) *orbitScene {
	return &orbitScene{sc: sc, cfg: cfg, grid: canvas.StrokeStyle{Brush: ColorGrid, Width: 1}}
}

func (o *orbitScene) Draw(t float64) error {
	sc := o.sc
	box := geom.FromCenterRadius(geom.Zero, 1)
	ball := geom.V(math.Cos(t*orbitSpeed), math.Sin(t*orbitSpeed))

	if err := sc.Clear(o.cfg.BackgroundBrush()); err != nil {
		return err
	}
	if o.cfg.GridSpacing > 0 {
		if err := sc.DrawGrid(o.cfg.GridSpacing, &o.grid); err != nil {
			return err
		}
	}
	axes := canvas.StrokeStyle{Brush: ColorAxes, Width: 0.5}
	err := errors.Join(
		sc.FillRect(canvas.Corners(box), &canvas.FillStyle{Brush: ColorBox}),
		sc.StrokeRect(canvas.Corners(box), &canvas.StrokeStyle{Brush: ColorBoxOutline, Width: 1}),
		sc.StrokeCircle(geom.Zero, 1, &canvas.StrokeStyle{Brush: ColorOrbit, Width: 0.75}),
		sc.FillCircle(geom.Zero, 0.1, &canvas.FillStyle{Brush: ColorOrbit}),
		sc.StrokeLine(geom.Left, geom.Right, &axes),
		sc.StrokeLine(geom.Up, geom.Down, &axes),
		sc.FillCircle(ball, 0.025, &canvas.FillStyle{Brush: ColorBall}),
	)
	if err != nil {
		return err
	}
	sc.SetStroke(canvas.StrokeStyle{Brush: ColorBall, Width: 2})
	return sc.StrokeRect(canvas.CenterSize(ball, geom.V(2*ballSize, 2*ballSize)), nil)
}

// loadScene reads a starlark scene from path.
func loadScene(path string, sc *canvas.ScalingCanvas) (*script.Scene, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	w, h := sc.Surface().ClientSize()
	return script.Load(path, string(src), sc, script.Options{
		Vars:     map[string]any{"width": w, "height": h},
		MaxSteps: maxSteps,
		Logger:   logging.WithComponent("script"),
	})
}
