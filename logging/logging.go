// Package logging configures the process-wide slog logger for the
// scaling-canvas binaries. Library packages never call it; they expose
// their own SetLogger and stay silent by default.
//
// Settings come from Options or from the environment:
//   - SCALING_LOG_LEVEL=debug|info|warn|error
//   - SCALING_LOG_FORMAT=console|json
//   - SCALING_LOG_FILE=<path> (adds a rotated JSON file sink)
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls Init. The zero value logs INFO to stderr as text.
type Options struct {
	Level  string
	Format string // "console" or "json"
	File   string
	// Console overrides stderr, mostly for tests.
	Console io.Writer
}

var (
	mu      sync.RWMutex
	current *slog.Logger
	file    *lj.Logger
)

// FromEnv reads Options from the SCALING_LOG_* variables.
func FromEnv() Options {
	return Options{
		Level:  getenv("SCALING_LOG_LEVEL", "info"),
		Format: getenv("SCALING_LOG_FORMAT", "console"),
		File:   os.Getenv("SCALING_LOG_FILE"),
	}
}

// Merge fills empty fields of o from fallback.
func (o Options) Merge(fallback Options) Options {
	if o.Level == "" {
		o.Level = fallback.Level
	}
	if o.Format == "" {
		o.Format = fallback.Format
	}
	if o.File == "" {
		o.File = fallback.File
	}
	if o.Console == nil {
		o.Console = fallback.Console
	}
	return o
}

// Init builds the logger, installs it as slog's default and returns it.
// A previously opened log file is closed.
func Init(opts Options) *slog.Logger {
	lvl := ParseLevel(opts.Level)
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	ho := &slog.HandlerOptions{Level: lvl}

	var handlers []slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		handlers = append(handlers, slog.NewJSONHandler(console, ho))
	} else {
		handlers = append(handlers, slog.NewTextHandler(console, ho))
	}

	var w *lj.Logger
	if path := strings.TrimSpace(opts.File); path != "" {
		w = &lj.Logger{Filename: path, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		handlers = append(handlers, slog.NewJSONHandler(w, ho))
	}

	h := handlers[0]
	if len(handlers) > 1 {
		h = &multi{hs: handlers}
	}
	l := slog.New(h).With(slog.String("app", "scaling-canvas"))

	mu.Lock()
	old := file
	current, file = l, w
	mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
	slog.SetDefault(l)
	return l
}

// L returns the process logger, initializing it from the environment on
// first use.
func L() *slog.Logger {
	mu.RLock()
	l := current
	mu.RUnlock()
	if l != nil {
		return l
	}
	return Init(FromEnv())
}

// WithComponent returns L with the component attribute set.
func WithComponent(name string) *slog.Logger {
	return L().With(slog.String("component", name))
}

// Close flushes and closes the rotating log file, if any.
func Close() error {
	mu.Lock()
	w := file
	file = nil
	mu.Unlock()
	if w == nil {
		return nil
	}
	return w.Close()
}

// ParseLevel maps a level name to a slog.Level. Unknown names mean INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// multi fans records out to several handlers.
type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithAttrs(attrs)
	}
	return &multi{hs: res}
}

func (m *multi) WithGroup(name string) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithGroup(name)
	}
	return &multi{hs: res}
}
