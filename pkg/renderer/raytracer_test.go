package renderer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// testScene is a minimal Scene for renderer tests
type testScene struct {
	camera        *Camera
	world         geometry.Shape
	background    Background
	shading       NormalShading
	width, height int
}

func newTestScene(width, height int, shapes ...geometry.Shape) *testScene {
	return &testScene{
		camera:     NewCamera(DefaultCameraConfig(float64(width) / float64(height))),
		world:      geometry.NewShapeList(shapes...),
		background: DefaultBackground(),
		shading:    ShadingDirect,
		width:      width,
		height:     height,
	}
}

func (s *testScene) GetCamera() *Camera           { return s.camera }
func (s *testScene) GetWorld() geometry.Shape     { return s.world }
func (s *testScene) GetBackground() Background    { return s.background }
func (s *testScene) GetShading() NormalShading    { return s.shading }
func (s *testScene) GetSize() (width, height int) { return s.width, s.height }

// recordingLogger collects log lines
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestRaytracer_Render_EmptySceneIsUprightGradient(t *testing.T) {
	scene := newTestScene(8, 9)
	rt := NewRaytracer(scene, nil)

	img, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 9 {
		t.Fatalf("Expected 8x9 image, got %v", img.Bounds())
	}
	if stats.TotalPixels != 72 {
		t.Errorf("Expected 72 pixels, got %d", stats.TotalPixels)
	}
	if stats.HitPixels != 0 {
		t.Errorf("Expected no hit pixels in an empty scene, got %d", stats.HitPixels)
	}

	// The top row looks up toward the sky, the bottom row down toward the horizon color
	top := img.RGBAAt(4, 0)
	bottom := img.RGBAAt(4, 8)
	if top.R >= bottom.R {
		t.Errorf("Expected top row to be bluer than bottom row, got top=%v bottom=%v", top, bottom)
	}

	// Middle row and column is the straight-ahead ray
	center := img.RGBAAt(4, 4)
	expected := scene.background.At(core.NewVec3(0, 0, -1))
	if center.B != expected.B || center.A != 255 {
		t.Errorf("Expected center pixel close to %v, got %v", expected, center)
	}
}

func TestRaytracer_Render_SphereInCenter(t *testing.T) {
	scene := newTestScene(11, 11, geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5))
	rt := NewRaytracer(scene, nil)

	img, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Center pixel ray goes straight down -z and hits the sphere's front pole
	center := img.RGBAAt(5, 5)
	expected := ShadingDirect.Color(core.NewVec3(0, 0, 1))
	if center != expected {
		t.Errorf("Expected center pixel %v, got %v", expected, center)
	}

	// Corners miss the sphere
	corner := img.RGBAAt(0, 0)
	if corner == expected {
		t.Errorf("Expected corner pixel to be background, got %v", corner)
	}

	if stats.HitPixels == 0 || stats.HitPixels >= stats.TotalPixels {
		t.Errorf("Expected some but not all pixels to hit, got %d of %d", stats.HitPixels, stats.TotalPixels)
	}
	if stats.HitRatio() <= 0 || stats.HitRatio() >= 1 {
		t.Errorf("Expected hit ratio in (0,1), got %f", stats.HitRatio())
	}
}

func TestRaytracer_Render_InvalidSize(t *testing.T) {
	scene := newTestScene(4, 4)
	scene.width = 0
	rt := NewRaytracer(scene, nil)

	_, _, err := rt.Render(context.Background())
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}
}

func TestRaytracer_Render_Cancelled(t *testing.T) {
	rt := NewRaytracer(newTestScene(4, 4), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, _, err := rt.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if img != nil {
		t.Error("Expected no image for a cancelled render")
	}
}

func TestRaytracer_Render_SinglePixel(t *testing.T) {
	rt := NewRaytracer(newTestScene(1, 1), nil)

	img, _, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if img.RGBAAt(0, 0).A != 255 {
		t.Errorf("Expected opaque pixel, got %v", img.RGBAAt(0, 0))
	}
}

func TestRaytracer_Render_LogsProgress(t *testing.T) {
	logger := &recordingLogger{}
	rt := NewRaytracer(newTestScene(4, 10), logger)
	rt.SetProgressInterval(5)

	if _, _, err := rt.Render(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(logger.lines) != 2 {
		t.Fatalf("Expected 2 progress lines, got %d: %v", len(logger.lines), logger.lines)
	}
	if !strings.Contains(logger.lines[1], "100 % 10/10") {
		t.Errorf("Expected final line to report completion, got %q", logger.lines[1])
	}
}
