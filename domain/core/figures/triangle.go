package figures

import (
	"figures/domain/core/valueobjects"
	pkgerrors "figures/pkg/errors"
)

// Triangle is defined by its three corners
type Triangle struct {
	base
	corners [3]valueobjects.Point
}

// NewTriangle creates a triangle, rejecting collinear corners.
// Collinearity is an exact integer cross product test, so repeated corners and
// diagonal lines such as (0,0),(1,1),(2,2) are rejected along with vertical and
// horizontal ones.
func NewTriangle(corners [3]valueobjects.Point) (Triangle, error) {
	if cross(corners) == 0 {
		return Triangle{}, pkgerrors.ErrCollinearPoints.Clone().
			WithDetail("corners", []string{corners[0].String(), corners[1].String(), corners[2].String()})
	}

	return Triangle{
		base:    base{name: "Triangle", center: centroid(corners)},
		corners: corners,
	}, nil
}

// WithCorners returns a copy with new corners
func (t Triangle) WithCorners(corners [3]valueobjects.Point) (Triangle, error) {
	next, err := NewTriangle(corners)
	if err != nil {
		return Triangle{}, err
	}
	next.name = t.name
	return next, nil
}

// Corners returns the three corners in construction order
func (t Triangle) Corners() [3]valueobjects.Point {
	return t.corners
}

// Kind returns KindTriangle
func (t Triangle) Kind() Kind {
	return KindTriangle
}

// Area uses the shoelace formula
func (t Triangle) Area() float64 {
	c := cross(t.corners)
	if c < 0 {
		c = -c
	}
	return float64(c) / 2
}

// Perimeter returns the sum of the three side lengths
func (t Triangle) Perimeter() float64 {
	a, b, c := t.corners[0], t.corners[1], t.corners[2]
	return a.DistanceTo(b) + b.DistanceTo(c) + c.DistanceTo(a)
}

// cross returns (b-a)×(c-a)
func cross(p [3]valueobjects.Point) int {
	return (p[1].X()-p[0].X())*(p[2].Y()-p[0].Y()) -
		(p[1].Y()-p[0].Y())*(p[2].X()-p[0].X())
}

func centroid(p [3]valueobjects.Point) valueobjects.Point {
	return valueobjects.MustNewPoint(
		(p[0].X()+p[1].X()+p[2].X())/3,
		(p[0].Y()+p[1].Y()+p[2].Y())/3,
	)
}
