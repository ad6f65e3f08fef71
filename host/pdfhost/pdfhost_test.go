package pdfhost

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scaling-canvas/canvas"
	"scaling-canvas/geom"
)

func TestDrawSceneToPDF(t *testing.T) {
	s := New(400, 200)
	s.SetCompression(false)
	sc, err := canvas.New(s, canvas.WithWorldRect(geom.FromCenterRadius(geom.Zero, 1)))
	if err != nil {
		t.Fatal(err)
	}

	green := canvas.StrokeStyle{Brush: color.RGBA{G: 0x80, A: 0xff}, Width: 1}
	if err := sc.Clear(color.White); err != nil {
		t.Fatal(err)
	}
	if err := sc.StrokeRect(canvas.Corners(geom.FromCenterRadius(geom.Zero, 1)), &green); err != nil {
		t.Fatal(err)
	}
	if err := sc.StrokeCircle(geom.Zero, 1, nil); err != nil {
		t.Fatal(err)
	}
	if err := sc.FillPoints([]geom.Vec2{geom.Zero, geom.Right, geom.Up}, true, nil); err != nil {
		t.Fatal(err)
	}
	if err := sc.Write(geom.V(-1, -1), "origin", nil); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := s.Output(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-") {
		t.Fatalf("Not a PDF: %q", out[:min(len(out), 16)])
	}
	if !strings.Contains(out, "(origin)") {
		t.Errorf("Expected text in content stream")
	}
	// The world square maps to x 100..300 on the page.
	if !strings.Contains(out, "100.00") {
		t.Errorf("Expected projected rect coordinates in content stream")
	}
}

func TestMeasureTextScalesWithFont(t *testing.T) {
	s := New(200, 200)
	sc, err := canvas.New(s, canvas.WithWorldRect(geom.R(0, 0, 200, 200)))
	if err != nil {
		t.Fatal(err)
	}

	sc.SetFont(canvas.FontStyle{Brush: color.Black, Font: canvas.Font{Family: "mono", Size: 10}})
	small, _ := sc.MeasureText("abc")
	sc.SetFont(canvas.FontStyle{Brush: color.Black, Font: canvas.Font{Family: "mono", Size: 20}})
	big, _ := sc.MeasureText("abc")

	if small.Dx() <= 0 || big.Dx() < 1.99*small.Dx() {
		t.Errorf("Expected width to double: %v vs %v", small.Dx(), big.Dx())
	}
	if big.Max.Y <= 0 || big.Min.Y >= 0 {
		t.Errorf("Expected ascent above and descent below the anchor: %v", big)
	}
}

func TestPageSizeRefits(t *testing.T) {
	s := New(100, 100)
	sc, err := canvas.New(s, canvas.WithWorldRect(geom.FromCenterRadius(geom.Zero, 1)))
	if err != nil {
		t.Fatal(err)
	}
	s.SetPageSize(300, 100)
	if s.PageCount() != 2 {
		t.Errorf("Expected a second page, got %d", s.PageCount())
	}
	win, _ := sc.Window()
	if !win.ApproxEqual(geom.R(-3, -1, 3, 1), 1e-9) {
		t.Errorf("Unexpected window after page resize: %v", win)
	}

	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := s.WriteFile(path); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("Expected a non-empty file: %v", err)
	}
}
