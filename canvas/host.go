package canvas

// Surface is the host raster surface a ScalingCanvas binds to. The caller
// owns it; the canvas only observes its layout size and resizes its pixel
// buffer to match.
type Surface interface {
	// ClientSize returns the displayed (layout) size in pixels.
	ClientSize() (width, height int)
	// SetBufferSize sets the internal pixel buffer size.
	SetBufferSize(width, height int)
	// OnResize registers fn to be called whenever the displayed size changes.
	OnResize(fn func())
	// Context2D returns the surface's 2D drawing context.
	Context2D() (Context, error)
	// ReportDiagnostic shows msg in place of the surface's content.
	ReportDiagnostic(msg string)
}

// Context is an immediate-mode 2D drawing context in raster pixel units,
// Y-down. Style setters persist until changed.
type Context interface {
	SetStrokeStyle(brush Brush, width float64)
	SetFillStyle(brush Brush)
	SetFont(font Font)

	ClearRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	// Arc adds a circular arc centered on (x, y); angles in radians.
	Arc(x, y, radius, startAngle, endAngle float64)
	Stroke()
	Fill()

	// FillText draws s with its baseline-left anchor at (x, y).
	FillText(s string, x, y float64)
	MeasureText(s string) TextMetrics
}

// TextMetrics reports the extent of a piece of text relative to its
// baseline-left anchor, in raster pixels. All values are distances, so
// Ascent goes up (negative canvas Y) and Descent goes down.
type TextMetrics struct {
	Width   float64
	Left    float64
	Right   float64
	Ascent  float64
	Descent float64
}
