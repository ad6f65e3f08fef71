// Command scalerender draws a starlark scene, or a diagram, headlessly and
// writes it as PNG or PDF depending on the output extension.
//
//	scalerender -scene orbit.star -t 1.5 -o frame.png
//	scalerender -diagram chain.yaml -o chain.pdf -size 800x600
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"scaling-canvas/canvas"
	"scaling-canvas/diagram"
	"scaling-canvas/host"
	"scaling-canvas/host/gghost"
	"scaling-canvas/host/pdfhost"
	"scaling-canvas/logging"
	"scaling-canvas/script"
)

var errUsage = errors.New("usage")

type options struct {
	scene   string
	diagram string
	out     string
	t       float64
	width   int
	height  int
	unit    float64
	frames  int
	fps     float64
}

func main() {
	logging.Init(logging.FromEnv())
	defer logging.Close()
	canvas.SetLogger(logging.WithComponent("canvas"))
	host.SetLogger(logging.WithComponent("host"))

	if err := run(os.Args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			logging.L().Error("render failed", slog.Any("err", err))
		}
		logging.Close()
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("scalerender", flag.ContinueOnError)
	var o options
	var size string
	fs.StringVar(&o.scene, "scene", "", "starlark scene script")
	fs.StringVar(&o.diagram, "diagram", "", "diagram YAML (\"demo\" for the built-in one)")
	fs.StringVar(&o.out, "o", "out.png", "output file, .png or .pdf")
	fs.Float64Var(&o.t, "t", 0, "scene time in seconds")
	fs.StringVar(&size, "size", "800x600", "canvas size WxH in pixels")
	fs.Float64Var(&o.unit, "unit", 1, "diagram brush unit")
	fs.IntVar(&o.frames, "frames", 1, "PDF only: pages to render, one per frame")
	fs.Float64Var(&o.fps, "fps", 10, "PDF only: frames per second for -frames")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if _, err := fmt.Sscanf(size, "%dx%d", &o.width, &o.height); err != nil || o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("bad -size %q", size)
	}
	if (o.scene == "") == (o.diagram == "") {
		fmt.Fprintln(fs.Output(), "exactly one of -scene or -diagram is required")
		fs.Usage()
		return errUsage
	}

	switch ext := strings.ToLower(filepath.Ext(o.out)); ext {
	case ".png":
		return renderPNG(o)
	case ".pdf":
		return renderPDF(o)
	default:
		return fmt.Errorf("unsupported output type %q", ext)
	}
}

// painter draws one frame at time t onto a bound canvas.
type painter func(t float64) error

func newPainter(o options, sc *canvas.ScalingCanvas) (painter, error) {
	if o.scene != "" {
		src, err := os.ReadFile(o.scene)
		if err != nil {
			return nil, err
		}
		s, err := script.Load(o.scene, string(src), sc, script.Options{
			Vars:     map[string]any{"width": o.width, "height": o.height},
			MaxSteps: 50_000_000,
			Logger:   logging.WithComponent("script"),
		})
		if err != nil {
			return nil, err
		}
		return s.Draw, nil
	}

	d := diagram.Demo()
	if o.diagram != "demo" {
		var err error
		if d, err = diagram.Load(o.diagram); err != nil {
			return nil, err
		}
	}
	b := diagram.NewBrush(sc.Context(), o.unit)
	if d.Placed() {
		d.Resize(b)
	} else if err := d.Layout(b, diagram.DefaultOrigin(o.unit)); err != nil {
		return nil, err
	}
	return func(t float64) error {
		if err := sc.Clear(color.White); err != nil {
			return err
		}
		d.Paint(b, t)
		return nil
	}, nil
}

func renderPNG(o options) error {
	s := gghost.New(o.width, o.height)
	defer s.Close()
	sc, err := canvas.New(s)
	if err != nil {
		return err
	}
	paint, err := newPainter(o, sc)
	if err != nil {
		return err
	}
	if err := paint(o.t); err != nil {
		return err
	}
	if err := s.SavePNG(o.out); err != nil {
		return err
	}
	logging.L().Info("wrote png", slog.String("path", o.out), slog.Int("width", o.width), slog.Int("height", o.height))
	return nil
}

func renderPDF(o options) error {
	s := pdfhost.New(o.width, o.height)
	sc, err := canvas.New(s)
	if err != nil {
		return err
	}
	paint, err := newPainter(o, sc)
	if err != nil {
		return err
	}
	for i := 0; i < max(o.frames, 1); i++ {
		if i > 0 {
			s.NewPage()
		}
		if err := paint(o.t + float64(i)/o.fps); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	if err := s.WriteFile(o.out); err != nil {
		return err
	}
	logging.L().Info("wrote pdf", slog.String("path", o.out), slog.Int("pages", s.PageCount()))
	return nil
}
