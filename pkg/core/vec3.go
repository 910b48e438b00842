package core

import "github.com/go-gl/mathgl/mgl64"

// Vec3 represents a 3D vector. Vector math comes from mgl64.
type Vec3 = mgl64.Vec3

// Point3 is a position in world space
type Point3 = mgl64.Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Negate returns the negative of the vector
func Negate(v Vec3) Vec3 {
	return v.Mul(-1)
}
