package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestScaleFitWideCanvas(t *testing.T) {
	world := FromCenterRadius(Zero, 1)
	canvas := R(0, 0, 400, 200)
	xf := ScaleFit(world, canvas, FitOptions{InvertY: true})

	if s := xf.ScaleFactors(); !s.ApproxEqual(V(100, 100), eps) {
		t.Fatalf("Expected scale 100, got %v", s)
	}
	if p := xf.Point(V(0, 1)); !p.ApproxEqual(V(200, 0), eps) {
		t.Errorf("Expected (0,1) -> (200,0), got %v", p)
	}
	if p := xf.Point(V(0, -1)); !p.ApproxEqual(V(200, 200), eps) {
		t.Errorf("Expected (0,-1) -> (200,200), got %v", p)
	}
	if p := xf.Point(Zero); !p.ApproxEqual(V(200, 100), eps) {
		t.Errorf("Expected origin at canvas center, got %v", p)
	}
}

func TestScaleFitTallCanvasLimitedByWidth(t *testing.T) {
	xf := ScaleFit(R(0, 0, 10, 10), R(0, 0, 100, 300), FitOptions{})
	if s := xf.ScaleFactors(); !s.ApproxEqual(V(10, 10), eps) {
		t.Fatalf("Expected scale 10, got %v", s)
	}
	if p := xf.Point(V(0, 0)); !p.ApproxEqual(V(0, 100), eps) {
		t.Errorf("Expected (0,0) -> (0,100), got %v", p)
	}
}

func TestScaleFitDegenerateSource(t *testing.T) {
	xf := ScaleFit(R(5, 5, 5, 5), R(0, 0, 40, 20), FitOptions{InvertY: true})
	if s := xf.ScaleFactors(); !s.ApproxEqual(V(1, 1), eps) {
		t.Errorf("Expected unit scale for point source, got %v", s)
	}
	if p := xf.Point(V(5, 5)); !p.ApproxEqual(V(20, 10), eps) {
		t.Errorf("Expected point source centered, got %v", p)
	}

	line := ScaleFit(R(0, 0, 4, 0), R(0, 0, 40, 20), FitOptions{})
	if s := line.ScaleFactors(); !s.ApproxEqual(V(10, 10), eps) {
		t.Errorf("Expected horizontal extent to drive the scale, got %v", s)
	}
}

func TestPointRoundTrip(t *testing.T) {
	worlds := []Rect{
		FromCenterRadius(Zero, 1),
		R(-3, 2, 17, 4),
		R(100, -50, 101, 900),
	}
	canvases := []Rect{R(0, 0, 400, 200), R(0, 0, 1, 1), R(0, 0, 1920, 1080)}
	points := []Vec2{Zero, V(1, 1), V(-7.25, 3.5), V(1e4, -1e3)}

	for _, w := range worlds {
		for _, c := range canvases {
			xf := ScaleFit(w, c, FitOptions{InvertY: true})
			for _, p := range points {
				back := xf.InversePoint(xf.Point(p))
				if !back.ApproxEqual(p, 1e-6*math.Max(1, p.Len())) {
					t.Errorf("round trip %v through %v->%v gave %v", p, w, c, back)
				}
			}
		}
	}
}

func TestVecIgnoresTranslation(t *testing.T) {
	xf := ScaleFit(R(10, 10, 20, 20), R(0, 0, 300, 100), FitOptions{InvertY: true})
	if v := xf.Vec(Zero); v != Zero {
		t.Errorf("Expected zero vector, got %v", v)
	}
	if v := xf.InverseVec(Zero); v != Zero {
		t.Errorf("Expected zero vector from inverse, got %v", v)
	}
	if v := xf.Vec(V(1, 1)); !v.ApproxEqual(V(10, -10), eps) {
		t.Errorf("Expected (10,-10), got %v", v)
	}
}

func TestRectStaysNormalizedUnderFlip(t *testing.T) {
	xf := ScaleFit(FromCenterRadius(Zero, 1), R(0, 0, 400, 200), FitOptions{InvertY: true})
	r := xf.Rect(FromCenterRadius(Zero, 1))
	want := R(100, 0, 300, 200)
	if !r.ApproxEqual(want, eps) {
		t.Errorf("Expected %v, got %v", want, r)
	}
	if r.Min.Y > r.Max.Y {
		t.Errorf("rect not normalized: %v", r)
	}

	back := xf.InverseRect(R(0, 0, 400, 200))
	if !back.ApproxEqual(R(-2, -1, 2, 1), eps) {
		t.Errorf("Expected visible window [-2,2]x[-1,1], got %v", back)
	}
}

func TestAreaIsSizeOnly(t *testing.T) {
	xf := ScaleFit(R(50, 50, 60, 60), R(0, 0, 100, 100), FitOptions{InvertY: true})
	a := xf.Area(R(0, 0, 2, 3))
	if !a.Diagonal().ApproxEqual(V(20, 30), eps) {
		t.Errorf("Expected area 20x30, got %v", a.Diagonal())
	}
	if !a.ApproxEqual(R(0, -30, 20, 0), eps) {
		t.Errorf("Expected flipped area anchored at origin, got %v", a)
	}
	if back := xf.InverseArea(a); !back.ApproxEqual(R(0, 0, 2, 3), eps) {
		t.Errorf("Expected inverse area to restore input, got %v", back)
	}
}

func TestSingularInverse(t *testing.T) {
	xf := ScaleFit(R(0, 0, 1, 1), R(0, 0, 0, 0), FitOptions{InvertY: true})
	if xf.Invertible() {
		t.Fatalf("Expected zero-size canvas transform to be singular")
	}
	if p := xf.InversePoint(V(3, 4)); p != Zero {
		t.Errorf("Expected singular inverse to collapse to origin, got %v", p)
	}
}

func TestMulComposes(t *testing.T) {
	a := ScaleFit(R(0, 0, 1, 1), R(0, 0, 10, 10), FitOptions{})
	inv, ok := a.Inverse()
	if !ok {
		t.Fatal("Expected invertible transform")
	}
	id := a.Mul(inv)
	p := V(3, -2)
	if got := id.Point(p); !got.ApproxEqual(p, eps) {
		t.Errorf("Expected identity composition, got %v", got)
	}
	if got := Identity().Point(p); got != p {
		t.Errorf("Identity moved point: %v", got)
	}
}
