package geometry

import (
	"fmt"
	"slices"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Cylinder is a tube cut to a height along its axis and closed by two caps
type Cylinder struct {
	Tube
	height float64
	base   *Plane
	top    *Plane
}

// NewCylinder creates a cylinder whose base is centered on the axis origin
func NewCylinder(axis core.Ray, radius, height float64, surface Surface) (*Cylinder, error) {
	tube, err := NewTube(axis, radius, surface)
	if err != nil {
		return nil, fmt.Errorf("cylinder: %w", err)
	}
	if core.AlignZero(height) <= 0 {
		return nil, fmt.Errorf("cylinder height %g: %w", height, ErrNonPositiveHeight)
	}

	return &Cylinder{
		Tube:   *tube,
		height: height,
		base:   NewPlane(axis.Origin(), axis.Direction(), surface),
		top:    NewPlane(axis.At(height), axis.Direction(), surface),
	}, nil
}

// Height returns the cylinder height
func (c *Cylinder) Height() float64 {
	return c.height
}

// Normal returns the cap normal on the caps and the radial normal elsewhere
func (c *Cylinder) Normal(p core.Point) core.Vector {
	projection := c.axis.T(p)
	switch {
	case core.AlignZero(projection) <= 0:
		return c.axis.Direction().Negate()
	case core.AlignZero(projection-c.height) >= 0:
		return c.axis.Direction()
	}
	return c.Tube.Normal(p)
}

// Intersect returns the side and cap hits, nearest first
func (c *Cylinder) Intersect(ray core.Ray) []GeoPoint {
	var ts []float64

	for _, t := range c.Tube.roots(ray) {
		projection := core.AlignZero(c.axis.T(ray.At(t)))
		if projection > 0 && core.AlignZero(projection-c.height) < 0 {
			ts = append(ts, t)
		}
	}

	radiusSquared := c.radius * c.radius
	for _, disk := range []*Plane{c.base, c.top} {
		if t, ok := disk.root(ray); ok && ray.At(t).DistanceSquared(disk.Point()) < radiusSquared {
			ts = append(ts, t)
		}
	}

	slices.Sort(ts)
	return hitsAt(ray, c, ts...)
}
