package script

import (
	"fmt"
	"sort"

	"go.starlark.net/starlark"

	"scaling-canvas/canvas"
	"scaling-canvas/geom"
)

type builtinFn func(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

var table = map[string]builtinFn{
	"camera":        camera,
	"camera_rect":   cameraRect,
	"clear":         clearCanvas,
	"stroke":        stroke,
	"fill":          fill,
	"font":          font,
	"line":          line,
	"stroke_rect":   rect(false, false),
	"fill_rect":     rect(true, false),
	"stroke_box":    rect(false, true),
	"fill_box":      rect(true, true),
	"stroke_circle": circle(false),
	"fill_circle":   circle(true),
	"write":         write,
	"measure":       measure,
	"window":        window,
	"polyline":      polyline,
	"polygon":       polygon,
	"grid":          grid,
}

// Builtins lists the names scenes can call.
func Builtins() []string {
	names := make([]string, 0, len(table))
	for k := range table {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func builtins(sc *canvas.ScalingCanvas) starlark.StringDict {
	d := make(starlark.StringDict, len(table))
	for name, fn := range table {
		d[name] = starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			return fn(sc, b, args, kwargs)
		})
	}
	return d
}

func brush(b *starlark.Builtin, s string) (canvas.Brush, error) {
	c, err := canvas.ParseBrush(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return c, nil
}

func camera(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var cx, cy, size number
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "cx", &cx, "cy", &cy, "size", &size); err != nil {
		return nil, err
	}
	sc.AdjustCameraCenter(geom.V(float64(cx), float64(cy)), float64(size))
	return starlark.None, nil
}

func cameraRect(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x0, y0, x1, y1 number
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x0", &x0, "y0", &y0, "x1", &x1, "y1", &y1); err != nil {
		return nil, err
	}
	sc.AdjustCamera(geom.R(float64(x0), float64(y0), float64(x1), float64(y1)))
	return starlark.None, nil
}

func clearCanvas(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var color starlark.Value = starlark.None
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "color?", &color); err != nil {
		return nil, err
	}
	var fill canvas.Brush
	if s, ok := color.(starlark.String); ok {
		c, err := brush(b, string(s))
		if err != nil {
			return nil, err
		}
		fill = c
	}
	return starlark.None, sc.Clear(fill)
}

func stroke(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var color string
	width := number(1)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "color", &color, "width?", &width); err != nil {
		return nil, err
	}
	c, err := brush(b, color)
	if err != nil {
		return nil, err
	}
	sc.SetStroke(canvas.StrokeStyle{Brush: c, Width: float64(width)})
	return starlark.None, nil
}

func fill(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var color string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "color", &color); err != nil {
		return nil, err
	}
	c, err := brush(b, color)
	if err != nil {
		return nil, err
	}
	sc.SetFill(canvas.FillStyle{Brush: c})
	return starlark.None, nil
}

func font(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var color, spec string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "color", &color, "spec?", &spec); err != nil {
		return nil, err
	}
	c, err := brush(b, color)
	if err != nil {
		return nil, err
	}
	f, err := canvas.ParseFont(spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	sc.SetFont(canvas.FontStyle{Brush: c, Font: f})
	return starlark.None, nil
}

func line(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x0, y0, x1, y1 number
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x0", &x0, "y0", &y0, "x1", &x1, "y1", &y1); err != nil {
		return nil, err
	}
	return starlark.None, sc.StrokeLine(vec(x0, y0), vec(x1, y1), nil)
}

// rect builds the four rectangle builtins. Corner form takes x0, y0, x1, y1;
// box form takes cx, cy, w, h.
func rect(filled, centered bool) builtinFn {
	return func(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var a, c, d, e number
		names := []string{"x0", "y0", "x1", "y1"}
		if centered {
			names = []string{"cx", "cy", "w", "h"}
		}
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, names[0], &a, names[1], &c, names[2], &d, names[3], &e); err != nil {
			return nil, err
		}
		spec := canvas.Corners(geom.RectFromCorners(vec(a, c), vec(d, e)))
		if centered {
			spec = canvas.CenterSize(vec(a, c), vec(d, e))
		}
		if filled {
			return starlark.None, sc.FillRect(spec, nil)
		}
		return starlark.None, sc.StrokeRect(spec, nil)
	}
}

func circle(filled bool) builtinFn {
	return func(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var x, y, r number
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y, "r", &r); err != nil {
			return nil, err
		}
		if filled {
			return starlark.None, sc.FillCircle(vec(x, y), float64(r), nil)
		}
		return starlark.None, sc.StrokeCircle(vec(x, y), float64(r), nil)
	}
}

func write(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y number
	var text string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y, "text", &text); err != nil {
		return nil, err
	}
	return starlark.None, sc.Write(vec(x, y), text, nil)
}

func measure(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "text", &text); err != nil {
		return nil, err
	}
	r, err := sc.MeasureText(text)
	if err != nil {
		return nil, err
	}
	return starlark.Tuple{starlark.Float(r.Dx()), starlark.Float(r.Dy())}, nil
}

func window(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	w, err := sc.Window()
	if err != nil {
		return nil, err
	}
	return starlark.Tuple{
		starlark.Float(w.Min.X), starlark.Float(w.Min.Y),
		starlark.Float(w.Max.X), starlark.Float(w.Max.Y),
	}, nil
}

func polyline(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var pts starlark.Iterable
	closed := false
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "points", &pts, "closed?", &closed); err != nil {
		return nil, err
	}
	points, err := toPoints(b, pts)
	if err != nil {
		return nil, err
	}
	return starlark.None, sc.StrokePoints(points, closed, nil)
}

func polygon(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var pts starlark.Iterable
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "points", &pts); err != nil {
		return nil, err
	}
	points, err := toPoints(b, pts)
	if err != nil {
		return nil, err
	}
	return starlark.None, sc.FillPoints(points, true, nil)
}

func grid(sc *canvas.ScalingCanvas, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var spacing number
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "spacing", &spacing); err != nil {
		return nil, err
	}
	return starlark.None, sc.DrawGrid(float64(spacing), nil)
}

// number unpacks an int or a float argument.
type number float64

func (n *number) Unpack(v starlark.Value) error {
	f, ok := starlark.AsFloat(v)
	if !ok {
		return fmt.Errorf("got %s, want float or int", v.Type())
	}
	*n = number(f)
	return nil
}

func vec(x, y number) geom.Vec2 {
	return geom.V(float64(x), float64(y))
}

// toPoints reads an iterable of (x, y) pairs.
func toPoints(b *starlark.Builtin, it starlark.Iterable) ([]geom.Vec2, error) {
	iter := it.Iterate()
	defer iter.Done()

	var points []geom.Vec2
	var v starlark.Value
	for i := 0; iter.Next(&v); i++ {
		pair, ok := v.(starlark.Indexable)
		if !ok || pair.Len() != 2 {
			return nil, fmt.Errorf("%s: point %d is not an (x, y) pair", b.Name(), i)
		}
		x, okX := starlark.AsFloat(pair.Index(0))
		y, okY := starlark.AsFloat(pair.Index(1))
		if !okX || !okY {
			return nil, fmt.Errorf("%s: point %d is not numeric", b.Name(), i)
		}
		points = append(points, geom.V(x, y))
	}
	return points, nil
}
