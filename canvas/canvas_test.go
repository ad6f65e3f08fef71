package canvas

import (
	"errors"
	"image/color"
	"strings"
	"testing"
	"time"

	"scaling-canvas/geom"
)

const eps = 1e-9

func newReady(t *testing.T) (*ScalingCanvas, *fakeSurface) {
	t.Helper()
	s := newFakeSurface(400, 200)
	sc, err := New(s, WithWorldRect(geom.FromCenterRadius(geom.Zero, 1)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s.ctx.reset()
	return sc, s
}

func TestNewReportsMissingContext(t *testing.T) {
	s := newFakeSurface(400, 200)
	s.ctxErr = errNoGPU

	sc, err := New(s)
	if sc != nil {
		t.Errorf("Expected no canvas on failure")
	}
	if !errors.Is(err, ErrContextUnavailable) {
		t.Fatalf("Expected ErrContextUnavailable, got %v", err)
	}
	if !strings.Contains(s.diagnostic, "could not get 2d context") {
		t.Errorf("Expected diagnostic on surface, got %q", s.diagnostic)
	}
}

func TestNewSizesBuffer(t *testing.T) {
	s := newFakeSurface(320, 240)
	sc, err := New(s)
	if err != nil {
		t.Fatal(err)
	}
	if s.bufW != 320 || s.bufH != 240 {
		t.Errorf("Expected buffer 320x240, got %dx%d", s.bufW, s.bufH)
	}
	if c, ok := sc.CanvasRect(); !ok || c != geom.R(0, 0, 320, 240) {
		t.Errorf("Unexpected canvas rect %v (%v)", c, ok)
	}
	if sc.Ready() {
		t.Errorf("Canvas without camera must not be ready")
	}
}

func TestOperationsBeforeCamera(t *testing.T) {
	s := newFakeSurface(400, 200)
	sc, err := New(s)
	if err != nil {
		t.Fatal(err)
	}
	s.ctx.reset()

	if _, err := sc.WorldToCanvasPoint(geom.Zero); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("WorldToCanvasPoint: expected ErrNotInitialized, got %v", err)
	}
	if _, err := sc.CanvasToWorldArea(geom.R(0, 0, 1, 1)); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("CanvasToWorldArea: expected ErrNotInitialized, got %v", err)
	}
	if _, err := sc.Window(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Window: expected ErrNotInitialized, got %v", err)
	}

	red := StrokeStyle{Brush: color.RGBA{R: 255, A: 255}, Width: 5}
	if err := sc.StrokeLine(geom.Zero, geom.Right, &red); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("StrokeLine: expected ErrNotInitialized, got %v", err)
	}
	if err := sc.Write(geom.Zero, "x", nil); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Write: expected ErrNotInitialized, got %v", err)
	}
	if len(s.ctx.calls) != 0 {
		t.Errorf("Expected no context calls, got %v", s.ctx.calls)
	}
	if sc.Stroke().Width != 1 {
		t.Errorf("Failed draw changed stroke state: %v", sc.Stroke())
	}

	// Clear only needs the canvas size.
	if err := sc.Clear(nil); err != nil {
		t.Errorf("Clear before camera: %v", err)
	}

	sc.AdjustCamera(geom.FromCenterRadius(geom.Zero, 1))
	if !sc.Ready() {
		t.Fatalf("Expected ready after camera")
	}
	if _, err := sc.WorldToCanvasPoint(geom.Zero); err != nil {
		t.Errorf("Unexpected error after camera: %v", err)
	}
}

func TestWideCanvasScenario(t *testing.T) {
	sc, _ := newReady(t)

	cases := []struct {
		world, canvas geom.Vec2
	}{
		{geom.V(0, 1), geom.V(200, 0)},
		{geom.V(0, -1), geom.V(200, 200)},
		{geom.V(-1, 0), geom.V(100, 100)},
		{geom.Zero, geom.V(200, 100)},
	}
	for _, tc := range cases {
		got, err := sc.WorldToCanvasPoint(tc.world)
		if err != nil {
			t.Fatal(err)
		}
		if !got.ApproxEqual(tc.canvas, eps) {
			t.Errorf("%v: expected %v, got %v", tc.world, tc.canvas, got)
		}
		back, _ := sc.CanvasToWorldPoint(got)
		if !back.ApproxEqual(tc.world, eps) {
			t.Errorf("Round trip of %v gave %v", tc.world, back)
		}
	}

	v, _ := sc.WorldToCanvasVec(geom.Zero)
	if v != geom.Zero {
		t.Errorf("Zero vector mapped to %v", v)
	}
	if v, _ := sc.WorldToCanvasVec(geom.Up); !v.ApproxEqual(geom.V(0, -100), eps) {
		t.Errorf("Up should point up the screen, got %v", v)
	}

	win, err := sc.Window()
	if err != nil {
		t.Fatal(err)
	}
	if !win.ApproxEqual(geom.R(-2, -1, 2, 1), eps) {
		t.Errorf("Expected window [-2,-1]-[2,1], got %v", win)
	}
	world, _ := sc.WorldRect()
	if !win.Grow(geom.V(eps, eps)).ContainsRect(world) {
		t.Errorf("Window %v does not contain world rect %v", win, world)
	}
}

func TestResizeRefits(t *testing.T) {
	sc, s := newReady(t)
	s.resize(200, 400)

	if s.bufW != 200 || s.bufH != 400 {
		t.Errorf("Buffer not resized: %dx%d", s.bufW, s.bufH)
	}
	win, _ := sc.Window()
	if !win.ApproxEqual(geom.R(-1, -2, 1, 2), eps) {
		t.Errorf("Expected tall window, got %v", win)
	}
	p, _ := sc.WorldToCanvasPoint(geom.V(1, 1))
	if !p.ApproxEqual(geom.V(200, 100), eps) {
		t.Errorf("Expected (1,1) -> (200,100), got %v", p)
	}
}

func TestAdjustCameraCenter(t *testing.T) {
	sc, _ := newReady(t)
	sc.AdjustCameraCenter(geom.V(3, 3), 4)
	w, _ := sc.WorldRect()
	if w != geom.R(1, 1, 5, 5) {
		t.Errorf("Expected [1,1]-[5,5], got %v", w)
	}
	p, _ := sc.WorldToCanvasPoint(geom.V(3, 3))
	if !p.ApproxEqual(geom.V(200, 100), eps) {
		t.Errorf("Camera center should map to canvas center, got %v", p)
	}
}

func TestRectSpecsAgree(t *testing.T) {
	sc, s := newReady(t)

	if err := sc.StrokeRect(Corners(geom.R(1, 1, -1, -1)), nil); err != nil {
		t.Fatal(err)
	}
	if err := sc.StrokeRect(CenterSize(geom.Zero, geom.V(2, 2)), nil); err != nil {
		t.Fatal(err)
	}
	want := "StrokeRect 100 0 200 200"
	if len(s.ctx.calls) != 2 || s.ctx.calls[0] != want || s.ctx.calls[1] != want {
		t.Errorf("Expected two %q calls, got %v", want, s.ctx.calls)
	}
}

func TestStyleOverridesPersist(t *testing.T) {
	sc, s := newReady(t)
	green := StrokeStyle{Brush: color.RGBA{G: 255, A: 255}, Width: 3}

	if err := sc.StrokeLine(geom.Left, geom.Right, &green); err != nil {
		t.Fatal(err)
	}
	if sc.Stroke() != green || s.ctx.strokeWidth != 3 {
		t.Errorf("Stroke override not persisted: %v", sc.Stroke())
	}

	s.ctx.reset()
	if err := sc.StrokeLine(geom.Down, geom.Up, nil); err != nil {
		t.Fatal(err)
	}
	if s.ctx.has("SetStrokeStyle") {
		t.Errorf("nil style should reuse state, got %v", s.ctx.calls)
	}
	if !s.ctx.has("MoveTo 200 200") || !s.ctx.has("LineTo 200 0") {
		t.Errorf("Unexpected path %v", s.ctx.calls)
	}
}

func TestCircles(t *testing.T) {
	sc, s := newReady(t)
	if err := sc.StrokeCircle(geom.Zero, 0.5, nil); err != nil {
		t.Fatal(err)
	}
	if !s.ctx.has("Arc 200 100 50") {
		t.Errorf("Expected radius 50 arc at center, got %v", s.ctx.calls)
	}

	s.ctx.reset()
	if err := sc.FillCircle(geom.V(1, 0), 0.1, nil); err != nil {
		t.Fatal(err)
	}
	if !s.ctx.has("Arc 300 100 10") || !s.ctx.has("Fill") {
		t.Errorf("Unexpected fill circle calls %v", s.ctx.calls)
	}
}

func TestClearFillsAndRestores(t *testing.T) {
	sc, s := newReady(t)
	bg := MustBrush("white")

	if err := sc.Clear(bg); err != nil {
		t.Fatal(err)
	}
	if !s.ctx.has("ClearRect 0 0 400 200") || !s.ctx.has("FillRect 0 0 400 200") {
		t.Errorf("Unexpected clear calls %v", s.ctx.calls)
	}
	if s.ctx.fill != sc.Fill().Brush {
		t.Errorf("Fill state not restored after clear")
	}
}

func TestWriteAnchorsText(t *testing.T) {
	sc, s := newReady(t)
	style := FontStyle{Brush: MustBrush("blue"), Font: Font{Family: "mono", Size: 20}}

	if err := sc.Write(geom.V(-1, 0), "hi", &style); err != nil {
		t.Fatal(err)
	}
	if !s.ctx.has("FillText hi 100 100") {
		t.Errorf("Expected text at (100,100), got %v", s.ctx.calls)
	}
	if s.ctx.font != style.Font {
		t.Errorf("Font not applied: %v", s.ctx.font)
	}
	if s.ctx.fill != sc.Fill().Brush {
		t.Errorf("Fill state not restored after write")
	}
}

func TestMeasureTextInWorldUnits(t *testing.T) {
	sc, _ := newReady(t)

	box, err := sc.MeasureText("abcd")
	if err != nil {
		t.Fatal(err)
	}
	if !box.ApproxEqual(geom.R(0, -0.04, 0.32, 0.12), eps) {
		t.Errorf("Unexpected text box %v", box)
	}

	// Zooming out keeps glyphs the same pixel size, so they cover more world.
	sc.AdjustCamera(geom.FromCenterRadius(geom.Zero, 2))
	wide, _ := sc.MeasureText("abcd")
	if d := wide.Dx() - 2*box.Dx(); d > eps || d < -eps {
		t.Errorf("Expected doubled width, got %v vs %v", wide.Dx(), box.Dx())
	}
}

func TestPoints(t *testing.T) {
	sc, s := newReady(t)
	tri := []geom.Vec2{geom.V(0, 1), geom.V(-1, -1), geom.V(1, -1)}

	if err := sc.StrokePoints(tri, true, nil); err != nil {
		t.Fatal(err)
	}
	if !s.ctx.has("MoveTo 200 0") || !s.ctx.has("ClosePath") || !s.ctx.has("Stroke") {
		t.Errorf("Unexpected closed polyline %v", s.ctx.calls)
	}

	s.ctx.reset()
	if err := sc.FillPoints(nil, true, nil); err != nil {
		t.Fatal(err)
	}
	if len(s.ctx.calls) != 0 {
		t.Errorf("Empty polygon should not draw, got %v", s.ctx.calls)
	}
}

func TestDrawGrid(t *testing.T) {
	sc, s := newReady(t)
	if err := sc.DrawGrid(0, nil); !errors.Is(err, ErrBadSpacing) {
		t.Errorf("Expected ErrBadSpacing, got %v", err)
	}

	style := StrokeStyle{Brush: MustBrush("gray"), Width: 0.5}
	if err := sc.DrawGrid(0.5, &style); err != nil {
		t.Fatal(err)
	}
	strokes := 0
	for _, c := range s.ctx.calls {
		if c == "Stroke" {
			strokes++
		}
	}
	if strokes < 6 {
		t.Errorf("Expected grid lines and origin cross, got %d strokes", strokes)
	}
	if sc.Stroke() != style {
		t.Errorf("Grid should leave the given style active, got %v", sc.Stroke())
	}

	// Far zoom-out is capped rather than drawing thousands of lines.
	sc.AdjustCamera(geom.FromCenterRadius(geom.Zero, 1e6))
	s.ctx.reset()
	if err := sc.DrawGrid(0.5, nil); err != nil {
		t.Fatal(err)
	}
	if len(s.ctx.calls) > 4*(2*maxGridLines+8) {
		t.Errorf("Grid not capped: %d calls", len(s.ctx.calls))
	}
}

func TestParseBrush(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#bfb", color.NRGBA{0xbb, 0xff, 0xbb, 0xff}},
		{"#00ff0080", color.NRGBA{0, 0xff, 0, 0x80}},
		{"#8F8", color.NRGBA{0x88, 0xff, 0x88, 0xff}},
	}
	for _, tc := range cases {
		got, err := ParseBrush(tc.in)
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.in, tc.want, got)
		}
	}

	if b, err := ParseBrush("Magenta"); err != nil || b == nil {
		t.Errorf("Named color failed: %v", err)
	}
	for _, bad := range []string{"#12", "#zzz", "notacolor"} {
		if _, err := ParseBrush(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestParseFont(t *testing.T) {
	cases := []struct {
		in   string
		want Font
	}{
		{"1rem sans-serif", Font{"sans-serif", 16}},
		{"12px mono", Font{"mono", 12}},
		{"bold", Font{"bold", 16}},
		{"", DefaultFont},
	}
	for _, tc := range cases {
		got, err := ParseFont(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%q: expected %v, got %v", tc.in, tc.want, got)
		}
	}
	if _, err := ParseFont("-3px sans"); err == nil {
		t.Errorf("Expected error for negative size")
	}
	if got := (Font{"mono", 12}).String(); got != "12px mono" {
		t.Errorf("Unexpected font string %q", got)
	}
}

func TestDrawGridFarFromOrigin(t *testing.T) {
	sc, s := newReady(t)
	sc.AdjustCameraCenter(geom.V(1e17, 0), 100)

	done := make(chan error, 1)
	go func() { done <- sc.DrawGrid(1, nil) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("DrawGrid did not return")
	}
	if len(s.ctx.calls) > 4*(2*maxGridLines+8) {
		t.Errorf("Grid not bounded: %d calls", len(s.ctx.calls))
	}
}

func TestEmptyCanvasNotReady(t *testing.T) {
	world := geom.FromCenterRadius(geom.Zero, 1)
	s := newFakeSurface(0, 0)
	sc, err := New(s, WithWorldRect(world))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Ready() {
		t.Errorf("Canvas with no area must not be ready")
	}
	if _, err := sc.Window(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	if w, ok := sc.WorldRect(); !ok || w != world {
		t.Errorf("World rect not kept: %v (%v)", w, ok)
	}

	s.resize(100, 50)
	win, err := sc.Window()
	if err != nil {
		t.Fatal(err)
	}
	if !win.ContainsRect(world) {
		t.Errorf("Window %v does not contain %v", win, world)
	}
}
