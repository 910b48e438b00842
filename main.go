package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-raycaster/pkg/config"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/output"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType   string
	width       int
	height      int
	outputDir   string
	format      string
	flip        bool
	scaleWidth  int
	scaleHeight int
	shading     string
	progress    int
	upload      bool
	help        bool
}

func parseFlags(args []string, cfg *config.Config, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("raycaster", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.sceneType, "scene", cfg.Scene, "Scene type: one of the built-in scene names")
	fs.IntVar(&opts.width, "width", 0, "Image width (0 uses the scene default)")
	fs.IntVar(&opts.height, "height", 0, "Image height (0 uses the scene default)")
	fs.StringVar(&opts.outputDir, "out", cfg.OutputDir, "Output directory")
	fs.StringVar(&opts.format, "format", "png", "Output format: png, jpg, gif, tif or bmp")
	fs.BoolVar(&opts.flip, "flip", false, "Also save a vertically flipped copy")
	fs.IntVar(&opts.scaleWidth, "scale-width", 0, "Resize the saved image to this width")
	fs.IntVar(&opts.scaleHeight, "scale-height", 0, "Resize the saved image to this height")
	fs.StringVar(&opts.shading, "shading", "", "Normal shading: direct or inverted (default from scene or RAYCASTER_SHADING)")
	fs.IntVar(&opts.progress, "progress", 25, "Log progress every N scanlines (0 disables)")
	fs.BoolVar(&opts.upload, "upload", false, "Upload the render to the configured S3 bucket")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Raycaster")
	fmt.Fprintln(w, "Usage: raycaster [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-8s - %s\n", info.Name, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to <out>/<scene>/render_<timestamp>.<format>")
}

// createScene builds the named scene and applies command line and config overrides
func createScene(opts *options, cfg *config.Config) (*scene.Scene, error) {
	s, err := scene.New(opts.sceneType)
	if err != nil {
		return nil, err
	}

	if opts.width > 0 || opts.height > 0 {
		width, height := s.GetSize()
		if opts.width > 0 {
			width = opts.width
		}
		if opts.height > 0 {
			height = opts.height
		}
		s.Resize(width, height)
	}

	s.Background = cfg.Background

	// The classic scene carries its own shading unless explicitly overridden
	switch {
	case opts.shading != "":
		shading, err := config.ParseShading(opts.shading)
		if err != nil {
			return nil, err
		}
		s.Shading = shading
	case os.Getenv("RAYCASTER_SHADING") != "":
		s.Shading = cfg.Shading
	}

	return s, nil
}

// buildSinks returns the local file sink plus S3 when requested
func buildSinks(opts *options, cfg *config.Config, logger core.Logger) (output.Sink, string, error) {
	fileSink := output.NewFileSink(filepath.Join(opts.outputDir, opts.sceneType))
	sinks := output.MultiSink{fileSink}

	if opts.upload {
		s3Sink, err := output.NewS3Sink(cfg.S3, logger)
		if err != nil {
			return nil, "", err
		}
		sinks = append(sinks, s3Sink)
	}
	return sinks, fileSink.Dir, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := log.New(stdout, "", 0)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	opts, err := parseFlags(args, cfg, stderr)
	if errors.Is(err, flag.ErrHelp) {
		// Usage has already been written to stderr
		return nil
	}
	if err != nil {
		return err
	}
	if opts.help {
		printHelp(stdout)
		return nil
	}

	selectedScene, err := createScene(opts, cfg)
	if err != nil {
		return err
	}

	filename := output.TimestampedName("render", opts.format, time.Now())
	if err := output.ValidateFormat(filename); err != nil {
		return err
	}

	sink, dir, err := buildSinks(opts, cfg, logger)
	if err != nil {
		return err
	}

	width, height := selectedScene.GetSize()
	logger.Printf("Rendering scene %q at %dx%d (%s shading)...\n",
		selectedScene.Name, width, height, selectedScene.Shading)

	raytracer := renderer.NewRaytracer(selectedScene, logger)
	raytracer.SetProgressInterval(opts.progress)

	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}
	logger.Printf("Render completed in %v (%d of %d pixels hit geometry)\n",
		stats.Duration, stats.HitPixels, stats.TotalPixels)

	variants := output.Variants(filename, img, output.Options{
		Flip:   opts.flip,
		Width:  opts.scaleWidth,
		Height: opts.scaleHeight,
	})
	for _, v := range variants {
		if err := sink.Save(ctx, v.Name, v.Image); err != nil {
			return err
		}
		logger.Printf("Render saved as %s\n", filepath.Join(dir, v.Name))
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
