package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// World is an ordered list of shapes hit as one.
// Intersection is a linear scan; order does not change which hit wins.
type World struct {
	Shapes []Shape
}

// NewWorld creates a world holding the given shapes
func NewWorld(shapes ...Shape) *World {
	return &World{Shapes: shapes}
}

// Add appends a shape to the world
func (w *World) Add(shape Shape) {
	w.Shapes = append(w.Shapes, shape)
}

// Len returns the number of shapes
func (w *World) Len() int {
	return len(w.Shapes)
}

// Hit returns the nearest hit among all shapes within rayT
func (w *World) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	hit, _, isHit := w.HitShape(ray, rayT)
	return hit, isHit
}

// HitShape is Hit that also returns the shape owning the nearest hit
func (w *World) HitShape(ray core.Ray, rayT core.Interval) (*material.HitRecord, Shape, bool) {
	var closestHit *material.HitRecord
	var closestShape Shape
	closestSoFar := rayT.Max

	for _, shape := range w.Shapes {
		if hit, isHit := shape.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
			closestShape = shape
		}
	}

	return closestHit, closestShape, closestHit != nil
}
