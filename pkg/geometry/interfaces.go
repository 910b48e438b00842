package geometry

import "github.com/df07/go-raycaster/pkg/core"

// Shape interface for objects that can be hit by rays.
//
// Hit reports the nearest intersection with tMin <= t <= tMax. On a hit it
// overwrites every field of rec and returns true; on a miss rec is left
// untouched.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool
}
