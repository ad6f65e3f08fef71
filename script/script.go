// Package script runs starlark scene scripts against a ScalingCanvas.
//
// A scene is executed once at load. It may define setup(), called once
// before the first frame, and must define draw(t), called every frame with
// the time in seconds.
package script

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"

	"go.starlark.net/starlark"

	"scaling-canvas/canvas"
)

var (
	ErrNoDraw = errors.New("scene defines no draw(t) function")
)

// Options tune scene execution.
type Options struct {
	// Vars are predeclared globals, converted from Go values.
	Vars map[string]any
	// MaxSteps bounds each call into the script; 0 means no bound.
	MaxSteps uint64
	Logger   *slog.Logger
}

// Scene is a loaded script bound to a canvas.
type Scene struct {
	name    string
	hash    string
	sc      *canvas.ScalingCanvas
	thread  *starlark.Thread
	globals starlark.StringDict
	setup   starlark.Callable
	draw    starlark.Callable
	opts    Options
	didInit bool
}

// Load executes src and binds its builtins to sc.
func Load(name, src string, sc *canvas.ScalingCanvas, opts Options) (*Scene, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	log := opts.Logger.With("scene", name)
	s := &Scene{name: name, hash: Hash(src), sc: sc, opts: opts}
	s.thread = &starlark.Thread{
		Name:  name,
		Print: func(_ *starlark.Thread, msg string) { log.Info(msg) },
	}

	predeclared := builtins(sc)
	for k, v := range opts.Vars {
		val, err := toStarlarkValue(v)
		if err != nil {
			return nil, fmt.Errorf("scene %s var %s: %w", name, k, err)
		}
		predeclared[k] = val
	}

	s.limit()
	globals, err := starlark.ExecFile(s.thread, name, src, predeclared)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", name, err)
	}
	s.globals = globals

	draw, ok := globals["draw"].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("load scene %s: %w", name, ErrNoDraw)
	}
	s.draw = draw
	if setup, ok := globals["setup"].(starlark.Callable); ok {
		s.setup = setup
	}
	log.Debug("scene loaded", slog.String("hash", s.hash[:12]), slog.Bool("setup", s.setup != nil))
	return s, nil
}

// Name returns the scene's file name.
func (s *Scene) Name() string { return s.name }

// Hash identifies the source the scene was loaded from.
func (s *Scene) Hash() string { return s.hash }

// Hash returns the hex SHA-256 of a script source, used to skip reloading
// unchanged scenes.
func Hash(src string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(src)))
}

func (s *Scene) limit() {
	if s.opts.MaxSteps == 0 {
		return
	}
	s.thread.SetMaxExecutionSteps(s.thread.ExecutionSteps() + s.opts.MaxSteps)
}

// Setup calls setup() once; later calls do nothing.
func (s *Scene) Setup() error {
	if s.didInit {
		return nil
	}
	s.didInit = true
	if s.setup == nil {
		return nil
	}
	s.limit()
	if _, err := starlark.Call(s.thread, s.setup, nil, nil); err != nil {
		return fmt.Errorf("scene %s setup: %w", s.name, err)
	}
	return nil
}

// Draw runs setup if needed, then draw(t).
func (s *Scene) Draw(t float64) error {
	if err := s.Setup(); err != nil {
		return err
	}
	s.limit()
	if _, err := starlark.Call(s.thread, s.draw, starlark.Tuple{starlark.Float(t)}, nil); err != nil {
		return fmt.Errorf("scene %s draw: %w", s.name, err)
	}
	return nil
}

// Global returns a top-level script value converted to Go, or nil.
func (s *Scene) Global(name string) any {
	v, ok := s.globals[name]
	if !ok {
		return nil
	}
	return FromStarlarkValue(v)
}
