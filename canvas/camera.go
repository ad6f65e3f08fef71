package canvas

import (
	"log/slog"

	"scaling-canvas/geom"
)

// camera is either uninitialized or ready. The transform only exists in
// the ready state, so it can never be stale relative to the two rects.
type camera interface {
	isCamera()
}

// uninitialized holds whichever rect has arrived so far.
type uninitialized struct {
	world  *geom.Rect
	canvas *geom.Rect
}

type ready struct {
	world  geom.Rect
	canvas geom.Rect
	xf     geom.Affine
}

func (uninitialized) isCamera() {}
func (ready) isCamera()         {}

// fit derives the next camera state from the latest pair of rects. An
// empty canvas has no usable transform, so the camera stays uninitialized
// until it gains area.
func fit(world, canvas *geom.Rect) camera {
	if world == nil || canvas == nil || canvas.Empty() {
		return uninitialized{world: world, canvas: canvas}
	}
	xf := geom.ScaleFit(*world, *canvas, geom.FitOptions{InvertY: true})
	Logger().Debug("camera fit",
		slog.Any("world", *world),
		slog.Any("canvas", *canvas),
		slog.Any("scale", xf.ScaleFactors()))
	return ready{world: *world, canvas: *canvas, xf: xf}
}

func rects(c camera) (world, canvas *geom.Rect) {
	switch s := c.(type) {
	case ready:
		return &s.world, &s.canvas
	case uninitialized:
		return s.world, s.canvas
	}
	return nil, nil
}

// AdjustCamera replaces the world rect the caller wants visible and
// recomputes the transform. It does not redraw.
func (sc *ScalingCanvas) AdjustCamera(world geom.Rect) {
	world = world.Normalized()
	_, canvas := rects(sc.cam)
	sc.cam = fit(&world, canvas)
}

// AdjustCameraCenter shows a square of side size centered on center.
func (sc *ScalingCanvas) AdjustCameraCenter(center geom.Vec2, size float64) {
	sc.AdjustCamera(geom.FromCenterRadius(center, size/2))
}

// ResizeCanvas reads the surface's displayed size, makes the pixel buffer
// match it exactly and recomputes the transform. It runs once from New and
// then on every resize notification.
func (sc *ScalingCanvas) ResizeCanvas() {
	w, h := sc.surface.ClientSize()
	sc.surface.SetBufferSize(w, h)
	canvas := geom.R(0, 0, float64(w), float64(h))
	Logger().Debug("canvas resize", slog.Int("width", w), slog.Int("height", h))
	world, _ := rects(sc.cam)
	sc.cam = fit(world, &canvas)
}

// Ready reports whether the world-to-canvas transform exists.
func (sc *ScalingCanvas) Ready() bool {
	_, ok := sc.cam.(ready)
	return ok
}

// WorldRect returns the requested world rect, if any.
func (sc *ScalingCanvas) WorldRect() (geom.Rect, bool) {
	w, _ := rects(sc.cam)
	if w == nil {
		return geom.Rect{}, false
	}
	return *w, true
}

// CanvasRect returns the pixel rect [0,0]-[width,height], if known.
func (sc *ScalingCanvas) CanvasRect() (geom.Rect, bool) {
	_, c := rects(sc.cam)
	if c == nil {
		return geom.Rect{}, false
	}
	return *c, true
}

// Transform returns the current world-to-canvas transform.
func (sc *ScalingCanvas) Transform() (geom.Affine, error) {
	r, err := sc.ready("Transform")
	if err != nil {
		return geom.Affine{}, err
	}
	return r.xf, nil
}

// Window returns the world rect actually visible on the canvas. Because
// the fit keeps the aspect ratio it usually extends past WorldRect along
// one axis. It always contains WorldRect.
func (sc *ScalingCanvas) Window() (geom.Rect, error) {
	r, err := sc.ready("Window")
	if err != nil {
		return geom.Rect{}, err
	}
	return r.xf.InverseRect(r.canvas), nil
}
