package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"scaling-canvas/canvas"
	"scaling-canvas/host"
	"scaling-canvas/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "scaling-canvas:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "scaling-canvas.yaml", "YAML config file; missing means defaults")
	scenePath := flag.String("scene", "", "starlark scene script to draw instead of the demo")
	diagramPath := flag.String("diagram", "", "diagram YAML to show in diagram mode")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *scenePath != "" {
		cfg.Scene = *scenePath
	}
	if *diagramPath != "" {
		cfg.Diagram = *diagramPath
	}

	log := logging.Init(cfg.LogOptions())
	defer logging.Close()
	canvas.SetLogger(logging.WithComponent("canvas"))
	host.SetLogger(logging.WithComponent("host"))
	log.Info("starting", slog.String("config", *configPath), slog.String("scene", cfg.Scene))

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g, err := NewGame(cfg)
	if err != nil {
		return err
	}
	return ebiten.RunGame(g)
}
