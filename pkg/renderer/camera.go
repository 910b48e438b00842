package renderer

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// CameraConfig describes a pinhole camera looking down -Z
type CameraConfig struct {
	Origin         core.Point3 // Eye position
	ViewportHeight float64     // Height of the virtual viewport in world units
	AspectRatio    float64     // Viewport width / height
	FocalLength    float64     // Distance from the eye to the viewport
}

// DefaultCameraConfig returns a camera at the origin with a 2-unit high viewport
// one unit in front of it
func DefaultCameraConfig(aspectRatio float64) CameraConfig {
	return CameraConfig{
		Origin:         core.NewVec3(0, 0, 0),
		ViewportHeight: 2.0,
		AspectRatio:    aspectRatio,
		FocalLength:    1.0,
	}
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a pinhole camera from its configuration
func NewCamera(config CameraConfig) *Camera {
	viewportWidth := config.AspectRatio * config.ViewportHeight

	origin := config.Origin
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := origin.Sub(horizontal.Mul(0.5)).
		Sub(vertical.Mul(0.5)).
		Sub(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for viewport coordinates (u, v) where 0 <= u,v <= 1
// and (0, 0) is the lower left corner
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Mul(u)).
		Add(c.vertical.Mul(v)).
		Sub(c.origin)

	return core.NewRay(c.origin, direction)
}

// PixelRay generates the ray through pixel (x, y) of a width x height image,
// where y = 0 is the top row
func (c *Camera) PixelRay(x, y, width, height int) core.Ray {
	u := viewportCoord(x, width)
	v := viewportCoord(height-1-y, height)
	return c.GetRay(u, v)
}

// viewportCoord maps a pixel index to [0, 1]
func viewportCoord(i, size int) float64 {
	if size <= 1 {
		return 0
	}
	return float64(i) / float64(size-1)
}
