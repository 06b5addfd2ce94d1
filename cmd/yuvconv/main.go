// Command yuvconv converts a raw NV12 or I420 frame dump to an image file.
//
// Usage:
//
//	yuvconv -in capture.nv12 -format nv12 -width 1280 -height 720 -out frame.png
//
// Input may be zstd-compressed; it is detected by content, not name.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/yuv"
	"github.com/gogpu/yuv/internal/imageio"
	"github.com/gogpu/yuv/internal/rawio"
)

func main() {
	var (
		in          = flag.String("in", "", "raw frame file (.nv12, .yuv, optionally zstd-compressed)")
		format      = flag.String("format", "nv12", "pixel format: nv12 or i420")
		width       = flag.Int("width", 0, "frame width in pixels (even)")
		height      = flag.Int("height", 0, "frame height in pixels")
		frame       = flag.Int("frame", 0, "zero-based index of the frame to convert")
		output      = flag.String("out", "frame.png", "output file (.png, .jpg, .bmp, .tif)")
		scaleWidth  = flag.Int("scale-width", 0, "resample output to this width (0 keeps source)")
		scaleHeight = flag.Int("scale-height", 0, "resample output to this height (0 keeps source)")
		workers     = flag.Int("workers", 0, "goroutines per frame (0 = GOMAXPROCS)")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	yuv.SetLogger(logger)

	cfg := config{
		in:          *in,
		format:      *format,
		width:       *width,
		height:      *height,
		frame:       *frame,
		output:      *output,
		scaleWidth:  *scaleWidth,
		scaleHeight: *scaleHeight,
		workers:     *workers,
	}
	if err := run(cfg, logger); err != nil {
		logger.Error("yuvconv failed", "err", err)
		os.Exit(1)
	}
}

type config struct {
	in            string
	format        string
	width, height int
	frame         int
	output        string
	scaleWidth    int
	scaleHeight   int
	workers       int
}

func run(cfg config, logger *slog.Logger) error {
	if cfg.in == "" {
		return errors.New("missing -in")
	}
	pf, err := rawio.ParseFormat(cfg.format)
	if err != nil {
		return err
	}

	r, closeIn, err := rawio.Open(cfg.in)
	if err != nil {
		return err
	}
	defer func() { _ = closeIn() }()

	if err := rawio.Skip(r, pf, cfg.width, cfg.height, cfg.frame); err != nil {
		return err
	}
	src, err := rawio.ReadFrame(r, pf, cfg.width, cfg.height)
	if err != nil {
		return fmt.Errorf("read frame %d: %w", cfg.frame, err)
	}

	c := yuv.NewConverter(yuv.WithWorkers(cfg.workers))
	defer c.Close()

	start := time.Now()
	pm, err := c.NewPixmap(src)
	if err != nil {
		return err
	}
	defer c.Release(pm)
	elapsed := time.Since(start)

	var img image.Image = pm
	if cfg.scaleWidth > 0 || cfg.scaleHeight > 0 {
		img = imageio.Scale(pm, cfg.scaleWidth, cfg.scaleHeight)
	}
	if err := imageio.Save(cfg.output, img); err != nil {
		return err
	}

	pixels := cfg.width * cfg.height
	p := message.NewPrinter(language.English)
	logger.Info(p.Sprintf("converted %d pixels (%v, %v) in %v, %.1f Mpx/s",
		pixels, pf, pm.Layout(), elapsed, float64(pixels)/elapsed.Seconds()/1e6),
		"workers", c.Workers(), "out", cfg.output)
	return nil
}
