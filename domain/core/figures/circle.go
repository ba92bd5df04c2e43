package figures

import (
	"math"

	"figures/domain/core/valueobjects"
	pkgerrors "figures/pkg/errors"
)

// Circle is defined by its radius and center
type Circle struct {
	base
	radius float64
}

// NewCircle creates a circle with validation
func NewCircle(radius float64, center valueobjects.Point) (Circle, error) {
	if radius < 0 || !isFinite(radius) {
		return Circle{}, pkgerrors.ErrInvalidRadius.Clone().WithDetail("radius", radius)
	}
	return Circle{
		base:   base{name: "Circle", center: center},
		radius: radius,
	}, nil
}

// WithRadius returns a copy with a new radius
func (c Circle) WithRadius(radius float64) (Circle, error) {
	next, err := NewCircle(radius, c.center)
	if err != nil {
		return Circle{}, err
	}
	next.name = c.name
	return next, nil
}

// Radius returns the radius
func (c Circle) Radius() float64 {
	return c.radius
}

// Kind returns KindCircle
func (c Circle) Kind() Kind {
	return KindCircle
}

// Area returns π·r²
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Perimeter returns 2π·r
func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * c.radius
}
