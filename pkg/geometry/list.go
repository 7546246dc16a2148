package geometry

import (
	"github.com/GabrielDertoni/go-pathtracer/pkg/core"
)

// HittableList is an ordered collection of primitives searched with a linear
// scan. There is deliberately no acceleration structure; every primitive is
// tested so the globally nearest hit wins, not merely the first.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Hit returns the hit with the minimum t among all objects in (tMin, tMax).
// The upper bound shrinks to the closest t seen so far, so a later object
// reporting exactly the same t replaces the earlier record: on exact ties
// the object latest in list order wins. Exact ties have measure zero under
// continuous sampling, so the choice does not affect rendered output.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
