package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Width        int // Image width
	Height       int // Image height
	CameraConfig renderer.CameraConfig
	Shapes       geometry.ShapeList // Objects in the scene, in insertion order
	Background   renderer.Background
	Shading      renderer.NormalShading

	camera *renderer.Camera
}

// NewScene creates an empty scene with the default camera, background and shading
func NewScene(name string, width, height int) *Scene {
	aspectRatio := 1.0
	if height > 0 {
		aspectRatio = float64(width) / float64(height)
	}
	return &Scene{
		Name:         name,
		Width:        width,
		Height:       height,
		CameraConfig: renderer.DefaultCameraConfig(aspectRatio),
		Shapes:       geometry.NewShapeList(),
		Background:   renderer.DefaultBackground(),
		Shading:      renderer.ShadingDirect,
	}
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Point3, radius float64) *Scene {
	s.Shapes = append(s.Shapes, geometry.NewSphere(center, radius))
	return s
}

// AddPlane adds an infinite plane to the scene
func (s *Scene) AddPlane(point core.Point3, normal core.Vec3) *Scene {
	s.Shapes = append(s.Shapes, geometry.NewPlane(point, normal))
	return s
}

// Resize changes the output size and keeps the viewport aspect ratio in sync
func (s *Scene) Resize(width, height int) {
	s.Width = width
	s.Height = height
	if height > 0 {
		s.CameraConfig.AspectRatio = float64(width) / float64(height)
	}
	s.camera = nil
}

// GetCamera returns the camera, building it from CameraConfig on first use
func (s *Scene) GetCamera() *renderer.Camera {
	if s.camera == nil {
		s.camera = renderer.NewCamera(s.CameraConfig)
	}
	return s.camera
}

// GetWorld returns the scene geometry as a single shape
func (s *Scene) GetWorld() geometry.Shape {
	return s.Shapes
}

// GetBackground returns the background gradient
func (s *Scene) GetBackground() renderer.Background {
	return s.Background
}

// GetShading returns the normal shading convention
func (s *Scene) GetShading() renderer.NormalShading {
	return s.Shading
}

// GetSize returns the output image size
func (s *Scene) GetSize() (width, height int) {
	return s.Width, s.Height
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
