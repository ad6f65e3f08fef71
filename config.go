package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"scaling-canvas/canvas"
	"scaling-canvas/logging"
)

const (
	// --- Camera & View ---
	DefaultCameraSize = 5.0
	ZoomLimitMin      = 0.05
	ZoomLimitMax      = 500.0
	ZoomSpeed         = 0.1
	KeyZoomStep       = 0.1

	// --- Grid & Background ---
	DefaultGridSpacing = 0.5

	// --- Diagram ---
	DiagramUnit     = 1.0
	DiagramUnitMin  = 0.25
	DiagramUnitMax  = 8.0
	DiagramSaveFile = "diagram.yaml"

	// --- Window ---
	DefaultWindowWidth  = 960
	DefaultWindowHeight = 640
	DefaultWindowTitle  = "Scaling Canvas"
)

var (
	// --- Colors ---
	ColorBackground  = color.RGBA{255, 255, 255, 255}
	ColorGrid        = color.RGBA{200, 200, 210, 255}
	ColorBox         = color.RGBA{0xbb, 0xff, 0xbb, 0xff}
	ColorBoxOutline  = color.RGBA{0, 0x80, 0, 0xff}
	ColorOrbit       = color.RGBA{255, 0, 0, 255}
	ColorAxes        = color.RGBA{0, 0, 0, 255}
	ColorBall        = color.RGBA{0, 0, 255, 255}
	ColorDiagramBack = color.RGBA{250, 250, 245, 255}
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraConfig struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Size    float64 `yaml:"size"`
	MinSize float64 `yaml:"min_size"`
	MaxSize float64 `yaml:"max_size"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// AppConfig is the YAML configuration of the viewer. Fields missing from
// the file keep their defaults.
type AppConfig struct {
	Window      WindowConfig `yaml:"window"`
	Camera      CameraConfig `yaml:"camera"`
	GridSpacing float64      `yaml:"grid_spacing"`
	Background  string       `yaml:"background"`
	Scene       string       `yaml:"scene"`
	Diagram     string       `yaml:"diagram"`
	Screenshots string       `yaml:"screenshot_dir"`
	Log         LogConfig    `yaml:"log"`
}

func DefaultConfig() AppConfig {
	return AppConfig{
		Window: WindowConfig{Width: DefaultWindowWidth, Height: DefaultWindowHeight, Title: DefaultWindowTitle},
		Camera: CameraConfig{
			Size:    DefaultCameraSize,
			MinSize: ZoomLimitMin,
			MaxSize: ZoomLimitMax,
		},
		GridSpacing: DefaultGridSpacing,
		Background:  "white",
		Screenshots: ".",
	}
}

// LoadConfig reads path over the defaults. An empty path or a missing file
// yields the defaults.
func LoadConfig(path string) (AppConfig, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c AppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Size <= 0 {
		return fmt.Errorf("camera size %g must be positive", c.Camera.Size)
	}
	if c.Camera.MinSize <= 0 || c.Camera.MinSize > c.Camera.MaxSize {
		return fmt.Errorf("camera size limits [%g, %g] are invalid", c.Camera.MinSize, c.Camera.MaxSize)
	}
	if c.GridSpacing < 0 {
		return fmt.Errorf("grid spacing %g must not be negative", c.GridSpacing)
	}
	if _, err := canvas.ParseBrush(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// BackgroundBrush returns the configured background, or white.
func (c AppConfig) BackgroundBrush() canvas.Brush {
	b, err := canvas.ParseBrush(c.Background)
	if err != nil {
		return ColorBackground
	}
	return b
}

// LogOptions returns the file's log settings with the environment filling
// the gaps.
func (c AppConfig) LogOptions() logging.Options {
	return logging.Options{Level: c.Log.Level, Format: c.Log.Format, File: c.Log.File}.Merge(logging.FromEnv())
}
