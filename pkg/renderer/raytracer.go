package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// ErrInvalidSize is returned when the image has no pixels
var ErrInvalidSize = errors.New("image width and height must be positive")

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
	GetBackground() Background
	GetShading() NormalShading
	GetSize() (width, height int)
}

// Raytracer casts one primary ray per pixel and writes the resolved colors
// into an image
type Raytracer struct {
	scene            Scene
	width            int
	height           int
	logger           core.Logger
	progressInterval int
}

// NewRaytracer creates a new raytracer for the scene's image size
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	width, height := scene.GetSize()
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		logger: logger,
	}
}

// SetProgressInterval logs a progress line every n scanlines. Zero disables it.
func (rt *Raytracer) SetProgressInterval(n int) {
	rt.progressInterval = n
}

// Render traces every pixel and returns an upright image. Scanlines are
// traced bottom to top; the context is checked between scanlines.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	if rt.width <= 0 || rt.height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, rt.width, rt.height)
	}

	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()
	background := rt.scene.GetBackground()
	shading := rt.scene.GetShading()
	progress := NewProgress(rt.height, DefaultBarWidth, startTime)

	stats := RenderStats{TotalPixels: rt.width * rt.height}

	for j := rt.height - 1; j >= 0; j-- {
		if err := ctx.Err(); err != nil {
			return nil, stats, fmt.Errorf("render cancelled at scanline %d: %w", j, err)
		}

		// Row 0 of the image is the top of the viewport
		y := rt.height - 1 - j
		for i := 0; i < rt.width; i++ {
			ray := camera.PixelRay(i, y, rt.width, rt.height)

			pixelColor, hit := shade(ray, world, background, shading)
			if hit {
				stats.HitPixels++
			}

			img.SetRGBA(i, y, pixelColor)
		}

		progress.Advance(1)
		if rt.progressInterval > 0 && (progress.Completed()%rt.progressInterval == 0 || progress.Done()) {
			rt.logger.Printf("%s\n", progress.Format(time.Now()))
		}
	}

	stats.Duration = time.Since(startTime)
	return img, stats, nil
}
