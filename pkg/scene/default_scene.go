package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// NewDefaultScene creates a scene with a single sphere in front of the camera
func NewDefaultScene() *Scene {
	s := NewScene("default", 400, 225) // 16:9 aspect ratio
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5)
	return s
}

// NewGroundScene adds a large ground sphere under the default sphere
func NewGroundScene() *Scene {
	s := NewDefaultScene()
	s.Name = "ground"
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100)
	return s
}

// NewPlaneScene places the default sphere on an infinite ground plane
func NewPlaneScene() *Scene {
	s := NewDefaultScene()
	s.Name = "plane"
	s.AddPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0))
	return s
}

// NewClassicScene is the square render of a unit sphere four units away
// with inverted normal shading
func NewClassicScene() *Scene {
	s := NewScene("classic", 800, 800)
	s.Shading = renderer.ShadingInverted
	s.AddSphere(core.NewVec3(0, 0, -4), 1.0)
	return s
}
