package renderer

import (
	"fmt"
	"image/color"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// NormalShading selects how a surface normal maps to a color
type NormalShading int

const (
	// ShadingDirect maps each normal component from [-1, 1] to [0, 255]
	ShadingDirect NormalShading = iota
	// ShadingInverted maps each component to 255 minus the direct value
	ShadingInverted
)

// String returns the shading name used by flags and config
func (s NormalShading) String() string {
	switch s {
	case ShadingDirect:
		return "direct"
	case ShadingInverted:
		return "inverted"
	default:
		return "unknown"
	}
}

// MarshalText encodes the shading by name
func (s NormalShading) MarshalText() ([]byte, error) {
	switch s {
	case ShadingDirect, ShadingInverted:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("unknown shading %d", int(s))
	}
}

// UnmarshalText decodes "direct" or "inverted"
func (s *NormalShading) UnmarshalText(text []byte) error {
	switch string(text) {
	case "direct":
		*s = ShadingDirect
	case "inverted":
		*s = ShadingInverted
	default:
		return fmt.Errorf("unknown shading %q", text)
	}
	return nil
}

// Color converts a unit normal to a color
func (s NormalShading) Color(normal core.Vec3) color.RGBA {
	c := color.RGBA{
		R: clampChannel((normal.X() + 1.0) / 2.0 * 255.0),
		G: clampChannel((normal.Y() + 1.0) / 2.0 * 255.0),
		B: clampChannel((normal.Z() + 1.0) / 2.0 * 255.0),
		A: 255,
	}
	if s == ShadingInverted {
		c.R = 255 - c.R
		c.G = 255 - c.G
		c.B = 255 - c.B
	}
	return c
}

// Background is a vertical gradient from Horizon (looking down) to Sky (looking up)
type Background struct {
	Horizon color.RGBA
	Sky     color.RGBA
}

// DefaultBackground returns the white to light blue gradient
func DefaultBackground() Background {
	return Background{Horizon: White, Sky: Sky}
}

// At returns the gradient color for a ray direction
func (b Background) At(direction core.Vec3) color.RGBA {
	unitDirection := direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y() + 1.0)

	return Lerp(b.Horizon, b.Sky, t)
}

// minHitDistance excludes t == 0 from the (0, +Inf) search interval
var minHitDistance = math.Nextafter(0, 1)

// ResolveColor returns the pixel color for a ray: normal shading on a hit,
// the background gradient otherwise. A nil world has no geometry.
func ResolveColor(ray core.Ray, world geometry.Shape, background Background, shading NormalShading) color.RGBA {
	c, _ := shade(ray, world, background, shading)
	return c
}

func shade(ray core.Ray, world geometry.Shape, background Background, shading NormalShading) (color.RGBA, bool) {
	if world != nil {
		var rec geometry.HitRecord
		if world.Hit(ray, minHitDistance, math.Inf(1), &rec) {
			return shading.Color(rec.Normal), true
		}
	}
	return background.At(ray.Direction), false
}
