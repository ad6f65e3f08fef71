package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderDiagramPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "demo.png")
	if err := run([]string{"-diagram", "demo", "-size", "640x320", "-o", out}); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Bad PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 320 {
		t.Errorf("Unexpected size %v", b)
	}
}

func TestRenderScenePDFFrames(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "s.star")
	src := "camera(0, 0, 2)\ndef draw(t):\n    clear(\"white\")\n    fill_circle(t, 0, 0.1)\n"
	if err := os.WriteFile(scene, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "s.pdf")
	if err := run([]string{"-scene", scene, "-frames", "3", "-o", out}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("Expected a PDF")
	}
}

func TestRunRejectsBadArgs(t *testing.T) {
	if err := run([]string{"-o", "x.png"}); !errors.Is(err, errUsage) {
		t.Errorf("Expected usage error without input, got %v", err)
	}
	if err := run([]string{"-diagram", "demo", "-o", "x.gif"}); err == nil {
		t.Errorf("Expected unsupported extension to fail")
	}
	if err := run([]string{"-diagram", "demo", "-size", "big"}); err == nil {
		t.Errorf("Expected bad size to fail")
	}
}
