package canvas

import "scaling-canvas/geom"

// Points carry an origin, so the transform's translation applies. Vectors
// and areas are displacements and sizes: only the scale (and flip) apply.

func (sc *ScalingCanvas) WorldToCanvasPoint(world geom.Vec2) (geom.Vec2, error) {
	r, err := sc.ready("WorldToCanvasPoint")
	if err != nil {
		return geom.Vec2{}, err
	}
	return r.xf.Point(world), nil
}

func (sc *ScalingCanvas) CanvasToWorldPoint(canvas geom.Vec2) (geom.Vec2, error) {
	r, err := sc.ready("CanvasToWorldPoint")
	if err != nil {
		return geom.Vec2{}, err
	}
	return r.xf.InversePoint(canvas), nil
}

func (sc *ScalingCanvas) WorldToCanvasRect(world geom.Rect) (geom.Rect, error) {
	r, err := sc.ready("WorldToCanvasRect")
	if err != nil {
		return geom.Rect{}, err
	}
	return r.xf.Rect(world), nil
}

func (sc *ScalingCanvas) CanvasToWorldRect(canvas geom.Rect) (geom.Rect, error) {
	r, err := sc.ready("CanvasToWorldRect")
	if err != nil {
		return geom.Rect{}, err
	}
	return r.xf.InverseRect(canvas), nil
}

func (sc *ScalingCanvas) WorldToCanvasVec(world geom.Vec2) (geom.Vec2, error) {
	r, err := sc.ready("WorldToCanvasVec")
	if err != nil {
		return geom.Vec2{}, err
	}
	return r.xf.Vec(world), nil
}

func (sc *ScalingCanvas) CanvasToWorldVec(canvas geom.Vec2) (geom.Vec2, error) {
	r, err := sc.ready("CanvasToWorldVec")
	if err != nil {
		return geom.Vec2{}, err
	}
	return r.xf.InverseVec(canvas), nil
}

func (sc *ScalingCanvas) WorldToCanvasArea(world geom.Rect) (geom.Rect, error) {
	r, err := sc.ready("WorldToCanvasArea")
	if err != nil {
		return geom.Rect{}, err
	}
	return r.xf.Area(world), nil
}

func (sc *ScalingCanvas) CanvasToWorldArea(canvas geom.Rect) (geom.Rect, error) {
	r, err := sc.ready("CanvasToWorldArea")
	if err != nil {
		return geom.Rect{}, err
	}
	return r.xf.InverseArea(canvas), nil
}
