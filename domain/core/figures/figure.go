// Package figures implements the closed family of 2D figures: circle, rectangle, square,
// rhombus and triangle. Every figure is validated when it is constructed; a constructor
// either returns a fully valid value or the zero value and a *errors.DomainError.
package figures

import (
	"math"

	"figures/domain/core/valueobjects"
)

// Epsilon is the fixed tolerance for floating point geometric comparisons.
const Epsilon = 1e-6

// Kind identifies a figure variant
type Kind string

const (
	KindCircle    Kind = "circle"
	KindRectangle Kind = "rectangle"
	KindSquare    Kind = "square"
	KindRhombus   Kind = "rhombus"
	KindTriangle  Kind = "triangle"
)

// IsValid reports whether k names a known variant
func (k Kind) IsValid() bool {
	switch k {
	case KindCircle, KindRectangle, KindSquare, KindRhombus, KindTriangle:
		return true
	default:
		return false
	}
}

// Figure is a 2D shape exposing area and perimeter.
// The set of implementations is closed to this package.
type Figure interface {
	Name() string
	Center() valueobjects.Point
	Kind() Kind
	Area() float64
	Perimeter() float64

	isFigure()
}

// base carries the fields shared by every figure
type base struct {
	name   string
	center valueobjects.Point
}

// Name returns the display name
func (b base) Name() string {
	return b.name
}

// Center returns the center point
func (b base) Center() valueobjects.Point {
	return b.center
}

// SetName replaces the display name
func (b *base) SetName(name string) {
	b.name = name
}

// SetCenter moves the reported center. Geometry is not revalidated.
func (b *base) SetCenter(center valueobjects.Point) {
	b.center = center
}

func (base) isFigure() {}

// isFinite checks if a parameter is a usable number
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// maxGridHalfExtent bounds derived corners so the int conversion stays exact.
const maxGridHalfExtent = 1 << 30

// boxCorners returns the axis-aligned box centered at center, ordered
// (-,-), (+,-), (+,+), (-,+). ok is false when a corner would fall off the
// non-negative integer grid.
func boxCorners(sideA, sideB float64, center valueobjects.Point) (corners [4]valueobjects.Point, ok bool) {
	halfA, okA := wholeHalf(sideA)
	halfB, okB := wholeHalf(sideB)
	if !okA || !okB {
		return corners, false
	}

	cx, cy := center.X(), center.Y()
	if cx-halfA < 0 || cy-halfB < 0 {
		return corners, false
	}

	coords := [4][2]int{
		{cx - halfA, cy - halfB},
		{cx + halfA, cy - halfB},
		{cx + halfA, cy + halfB},
		{cx - halfA, cy + halfB},
	}
	for i, c := range coords {
		p, err := valueobjects.NewPoint(c[0], c[1])
		if err != nil {
			return [4]valueobjects.Point{}, false
		}
		corners[i] = p
	}
	return corners, true
}

func wholeHalf(side float64) (int, bool) {
	half := side / 2
	if half != math.Trunc(half) || half > maxGridHalfExtent {
		return 0, false
	}
	return int(half), true
}
