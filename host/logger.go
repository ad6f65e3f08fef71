// Package host holds what the concrete canvas hosts share: the package
// logger and small brush helpers. The hosts themselves live in the
// ebitenhost, gghost and pdfhost subpackages.
package host

import (
	"context"
	"image/color"
	"log/slog"
	"sync/atomic"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger shared by all hosts. Hosts are silent by
// default; nil restores that.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the host logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// RGBA8 returns the non-premultiplied 8-bit channels of c. A nil color is
// opaque black.
func RGBA8(c color.Color) (r, g, b, a uint8) {
	if c == nil {
		return 0, 0, 0, 0xff
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B, n.A
}
