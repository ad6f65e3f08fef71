package canvas

import (
	"fmt"

	"scaling-canvas/geom"
)

// ScalingCanvas draws in a caller-defined world space (Y-up) onto a host
// raster surface (Y-down). Every draw and query goes through the single
// world-to-canvas transform derived from the camera and the surface size.
//
// A ScalingCanvas is not safe for concurrent use; drive it from the host's
// frame callback.
type ScalingCanvas struct {
	surface Surface
	ctx     Context
	cam     camera

	stroke StrokeStyle
	fill   FillStyle
	font   FontStyle
}

// Option configures New.
type Option func(*options)

type options struct {
	world *geom.Rect
}

// WithWorldRect sets the camera before the first resize pass.
func WithWorldRect(r geom.Rect) Option {
	return func(o *options) {
		o.world = &r
	}
}

// WithCamera is WithWorldRect for a square of side size around center.
func WithCamera(center geom.Vec2, size float64) Option {
	return WithWorldRect(geom.FromCenterRadius(center, size/2))
}

// New binds a ScalingCanvas to surface. If the surface cannot provide a 2D
// context, a diagnostic is left on the surface and the returned error wraps
// ErrContextUnavailable.
func New(surface Surface, opts ...Option) (*ScalingCanvas, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	sc := &ScalingCanvas{
		surface: surface,
		cam:     uninitialized{},
		stroke:  StrokeStyle{Brush: defaultInk, Width: 1},
		fill:    FillStyle{Brush: defaultInk},
		font:    FontStyle{Brush: defaultInk, Font: DefaultFont},
	}
	surface.OnResize(sc.ResizeCanvas)

	ctx, err := surface.Context2D()
	if err != nil || ctx == nil {
		msg := ErrContextUnavailable.Error()
		if err != nil {
			msg = fmt.Sprintf("%s: %v", msg, err)
		}
		surface.ReportDiagnostic(msg)
		Logger().Error("context unavailable", "err", err)
		if err == nil {
			return nil, ErrContextUnavailable
		}
		return nil, fmt.Errorf("%w: %v", ErrContextUnavailable, err)
	}
	sc.ctx = ctx
	sc.applyStroke()
	sc.applyFill()
	sc.applyFont()

	if o.world != nil {
		sc.AdjustCamera(*o.world)
	}
	sc.ResizeCanvas()
	return sc, nil
}

// Context returns the host drawing context, for callers that draw directly
// in raster space.
func (sc *ScalingCanvas) Context() Context {
	return sc.ctx
}

// Surface returns the bound surface.
func (sc *ScalingCanvas) Surface() Surface {
	return sc.surface
}

func (sc *ScalingCanvas) ready(op string) (ready, error) {
	r, ok := sc.cam.(ready)
	if !ok {
		return ready{}, fmt.Errorf("%s: %w", op, ErrNotInitialized)
	}
	return r, nil
}
