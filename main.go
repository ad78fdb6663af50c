package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"pixwin/app"
	"pixwin/hal"
	"pixwin/internal/buildinfo"
	"pixwin/surface"
)

func main() {
	var (
		configPath = flag.String("config", "pixwin.yml", "YAML config file (missing file = defaults).")
		scene      = flag.String("scene", "", "Demo scene: "+strings.Join(app.SceneNames(), "|")+".")
		format     = flag.String("format", "", "Pixel format: bw|grayscale|rgb|rgba.")
		width      = flag.Int("width", 0, "Buffer width in pixels.")
		height     = flag.Int("height", 0, "Buffer height in pixels.")
		scale      = flag.Int("scale", 0, "Window scale factor.")
		headless   = flag.Bool("headless", false, "Run without a window.")
		hz         = flag.Int("hz", 0, "Frame rate in headless mode.")
		frames     = flag.Uint64("frames", 0, "Stop after N frames in headless mode (0 = run forever).")
		hud        = flag.Bool("hud", false, "Draw frame rate and cursor position.")
		logLevel   = flag.String("log-level", "", "debug|info|warn|error.")
		version    = flag.Bool("version", false, "Print version and exit.")
	)
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.String())
		return
	}

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		fatalf("%v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *scene
		case "format":
			cfg.Format = *format
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "scale":
			cfg.Window.Scale = *scale
		case "headless":
			cfg.Headless.Enabled = *headless
		case "hz":
			cfg.Headless.Hz = *hz
		case "frames":
			cfg.Headless.Frames = *frames
		case "hud":
			cfg.HUD = *hud
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	log := newLogger(cfg.LogLevel)
	log.Debug("starting", "version", buildinfo.Short(), "scene", cfg.Scene)

	run := func(w surface.Window) error { return app.Run(w, cfg, log) }

	if cfg.Headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, hal.HeadlessConfig{
			Hz:     cfg.Headless.Hz,
			Frames: cfg.Headless.Frames,
			Logger: log,
		}, run)
	} else {
		err = hal.RunWindow(hal.WindowConfig{
			Scale:  cfg.Window.Scale,
			TPS:    cfg.Window.TPS,
			Logger: log,
		}, run)
	}
	if err != nil {
		log.Error("exit", "err", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
