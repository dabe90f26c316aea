package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/ha1tch/cvpaint/internal/editor"
	"github.com/ha1tch/cvpaint/internal/imageio"
	"github.com/ha1tch/cvpaint/internal/window"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	imagePath   = flag.String("image", "Photos/Griffith.jpg", "image to edit")
	lineWeight  = flag.Int("line-weight", editor.DefaultLineWeight, "half side of the square painted in draw mode")
	maxSize     = flag.Int("max-size", 0, "fit the image into NxN pixels on load (0 keeps the native size)")
	fps         = flag.Int("fps", 60, "frame rate cap")
	debug       = flag.Bool("debug", false, "enable debug logging")
	showVersion = flag.Bool("version", false, "print version information and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("cvpaint %s (commit %s)\n", Version, GitCommit)
		return
	}

	level := slog.LevelInfo
	if *debug || os.Getenv("CVPAINT_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *lineWeight < 1 {
		fmt.Fprintf(os.Stderr, "invalid -line-weight %d: must be at least 1\n", *lineWeight)
		os.Exit(1)
	}

	img, err := imageio.Load(*imagePath, imageio.Options{MaxSize: *maxSize})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	logger.Info("image loaded", "path", *imagePath, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	frameSize := image.Pt(img.Bounds().Dx(), img.Bounds().Dy()+editor.OverlayHeight(img))
	win := window.Open(frameSize, window.Config{
		Title:  "cvpaint",
		FPS:    *fps,
		Logger: logger,
	})
	defer win.Close()

	ed := editor.New(img, win, win, win, editor.Options{
		LineWeight: *lineWeight,
		Logger:     logger,
	})
	ed.Run()
}
