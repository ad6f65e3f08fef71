package main

import (
	"math"

	"scaling-canvas/canvas"
	"scaling-canvas/geom"
)

// ViewCamera is the part of the world the viewer asks the canvas to show:
// a square of side Size around Center, zoomed and panned by input.
type ViewCamera struct {
	Center  geom.Vec2
	Size    float64
	MinSize float64
	MaxSize float64

	home CameraConfig
}

func NewViewCamera(cfg CameraConfig) *ViewCamera {
	c := &ViewCamera{home: cfg}
	c.Reset()
	return c
}

// Reset returns to the configured view.
func (c *ViewCamera) Reset() {
	c.Center = geom.V(c.home.CenterX, c.home.CenterY)
	c.Size = c.home.Size
	c.MinSize = c.home.MinSize
	c.MaxSize = c.home.MaxSize
}

// Zoom shrinks the view by (1+ZoomSpeed)^steps; negative steps zoom out.
// The size stays within [MinSize, MaxSize]. It reports whether the view
// changed.
func (c *ViewCamera) Zoom(steps float64) bool {
	if steps == 0 {
		return false
	}
	size := c.Size / math.Pow(1+ZoomSpeed, steps)
	size = min(max(size, c.MinSize), c.MaxSize)
	if size == c.Size {
		return false
	}
	c.Size = size
	return true
}

// Pan moves the view by a world displacement.
func (c *ViewCamera) Pan(d geom.Vec2) {
	c.Center = c.Center.Sub(d)
}

// PanPixels moves the view as if the world were dragged by a canvas
// displacement, so the point under the cursor follows it.
func (c *ViewCamera) PanPixels(sc *canvas.ScalingCanvas, dx, dy float64) {
	d, err := sc.CanvasToWorldVec(geom.V(dx, dy))
	if err != nil {
		return
	}
	c.Pan(d)
}

// Apply pushes the view into the canvas.
func (c *ViewCamera) Apply(sc *canvas.ScalingCanvas) {
	sc.AdjustCameraCenter(c.Center, c.Size)
}
