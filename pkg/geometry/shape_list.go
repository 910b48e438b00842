package geometry

import "github.com/df07/go-raycaster/pkg/core"

// ShapeList is an ordered collection of shapes that is itself a Shape.
// Hit returns the closest intersection across all members.
type ShapeList []Shape

// NewShapeList creates a list from the given shapes, preserving order
func NewShapeList(shapes ...Shape) ShapeList {
	return ShapeList(shapes)
}

// Hit scans every shape, shrinking tMax to the closest hit found so far
// so later shapes cannot override a closer one.
func (l ShapeList) Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool {
	var temp HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, shape := range l {
		if shape.Hit(ray, tMin, closestSoFar, &temp) {
			hitAnything = true
			closestSoFar = temp.T
		}
	}

	if hitAnything {
		*rec = temp
	}
	return hitAnything
}
