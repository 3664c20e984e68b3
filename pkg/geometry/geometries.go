package geometry

import (
	"cmp"
	"slices"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Geometries is a flat collection of intersectables, itself intersectable.
// Intersection is a linear scan over the members.
type Geometries struct {
	items []Intersectable
}

// NewGeometries creates a collection holding the given items
func NewGeometries(items ...Intersectable) *Geometries {
	g := &Geometries{}
	g.Add(items...)
	return g
}

// Add appends items to the collection
func (g *Geometries) Add(items ...Intersectable) {
	g.items = append(g.items, items...)
}

// Len returns the number of direct members
func (g *Geometries) Len() int {
	return len(g.items)
}

// Intersect merges the hits of every member, nearest first
func (g *Geometries) Intersect(ray core.Ray) []GeoPoint {
	var hits []GeoPoint
	for _, item := range g.items {
		hits = append(hits, item.Intersect(ray)...)
	}
	if len(hits) == 0 {
		return nil
	}

	slices.SortStableFunc(hits, func(a, b GeoPoint) int {
		return cmp.Compare(ray.T(a.Point), ray.T(b.Point))
	})
	return hits
}

// FindClosestIntersection returns the nearest hit along the ray
func (g *Geometries) FindClosestIntersection(ray core.Ray) (GeoPoint, bool) {
	hits := g.Intersect(ray)
	if len(hits) == 0 {
		return GeoPoint{}, false
	}
	return hits[0], true
}
