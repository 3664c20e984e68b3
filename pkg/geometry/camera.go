package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// View describes the view plane in front of the camera
type View struct {
	Distance float64 // from the camera position to the plane center
	Width    float64
	Height   float64
}

// Camera generates rays through a view plane. Its basis (right, up, to) is orthonormal.
type Camera struct {
	position core.Point
	to       core.Vector
	up       core.Vector
	right    core.Vector
}

// NewCamera creates a camera looking along to with the given up direction.
// The two vectors must be orthogonal; right is derived as to x up.
func NewCamera(position core.Point, to, up core.Vector) (*Camera, error) {
	if !core.IsZero(to.Dot(up)) {
		return nil, fmt.Errorf("to %v, up %v: %w", to, up, ErrCameraNotOrthogonal)
	}

	to = to.Normalized()
	up = up.Normalized()
	return &Camera{
		position: position,
		to:       to,
		up:       up,
		right:    to.Cross(up).Normalized(),
	}, nil
}

// Position returns the camera position
func (c *Camera) Position() core.Point {
	return c.position
}

// To returns the unit forward vector
func (c *Camera) To() core.Vector {
	return c.to
}

// Up returns the unit up vector
func (c *Camera) Up() core.Vector {
	return c.up
}

// Right returns the unit right vector
func (c *Camera) Right() core.Vector {
	return c.right
}

// ConstructRayThroughPixel returns the ray through the center of pixel (j, i)
// of an nX x nY grid laid over the view plane. Column j grows to the right
// and row i grows downwards.
func (c *Camera) ConstructRayThroughPixel(view View, nX, nY, j, i int) core.Ray {
	rX := view.Width / float64(nX)
	rY := view.Height / float64(nY)

	xJ := (float64(j)-float64(nX)/2)*rX + rX/2
	yI := (float64(i)-float64(nY)/2)*rY + rY/2

	p := c.viewCenter(view).
		Add(c.right.Scale(xJ)).
		Add(c.up.Scale(-yI))
	return core.NewRay(c.position, p.Subtract(c.position))
}

// ConstructRaysThroughPixelEdges returns the rays through the four corners of
// pixel (j, i): top-left, bottom-left, top-right, bottom-right.
func (c *Camera) ConstructRaysThroughPixelEdges(view View, nX, nY, j, i int) []core.Ray {
	rX := view.Width / float64(nX)
	rY := view.Height / float64(nY)

	topLeft := c.viewCenter(view).
		Add(c.right.Scale(-view.Width / 2)).
		Add(c.up.Scale(view.Height / 2))

	rays := make([]core.Ray, 0, 4)
	for dj := range 2 {
		for di := range 2 {
			p := topLeft.
				Add(c.right.Scale(rX * float64(j+dj))).
				Add(c.up.Scale(-rY * float64(i+di)))
			rays = append(rays, core.NewRay(c.position, p.Subtract(c.position)))
		}
	}
	return rays
}

// ConstructRaysThroughPixel splits pixel (j, i) into a subX x subY grid and
// returns the rays through the center of every sub-pixel, row by row.
func (c *Camera) ConstructRaysThroughPixel(view View, nX, nY, j, i, subX, subY int) []core.Ray {
	subX, subY = max(subX, 1), max(subY, 1)

	rays := make([]core.Ray, 0, subX*subY)
	for si := range subY {
		for sj := range subX {
			rays = append(rays, c.ConstructRayThroughPixel(view, nX*subX, nY*subY, j*subX+sj, i*subY+si))
		}
	}
	return rays
}

func (c *Camera) viewCenter(view View) core.Point {
	return c.position.Add(c.to.Scale(view.Distance))
}
