package figures

import (
	"math"

	"figures/domain/core/valueobjects"
	pkgerrors "figures/pkg/errors"
)

// Rectangle is stored as its two side lengths plus, when known, its corners
type Rectangle struct {
	base
	sideA      float64
	sideB      float64
	corners    [4]valueobjects.Point
	hasCorners bool
}

// NewRectangle creates an axis-aligned rectangle centered at center
func NewRectangle(sideA, sideB float64, center valueobjects.Point) (Rectangle, error) {
	if err := validateSide("a", sideA); err != nil {
		return Rectangle{}, err
	}
	if err := validateSide("b", sideB); err != nil {
		return Rectangle{}, err
	}

	corners, ok := boxCorners(sideA, sideB, center)
	return Rectangle{
		base:       base{name: "Rectangle", center: center},
		sideA:      sideA,
		sideB:      sideB,
		corners:    corners,
		hasCorners: ok,
	}, nil
}

// NewRectangleFromCorners infers the side lengths from four corners given in any order
func NewRectangleFromCorners(corners [4]valueobjects.Point) (Rectangle, error) {
	q, err := analyzeRectangle(corners)
	if err != nil {
		return Rectangle{}, err
	}
	return Rectangle{
		base:       base{name: "Rectangle", center: q.center},
		sideA:      q.sideA,
		sideB:      q.sideB,
		corners:    corners,
		hasCorners: true,
	}, nil
}

// WithSides returns a copy with new side lengths around the same center
func (r Rectangle) WithSides(sideA, sideB float64) (Rectangle, error) {
	next, err := NewRectangle(sideA, sideB, r.center)
	if err != nil {
		return Rectangle{}, err
	}
	next.name = r.name
	return next, nil
}

// SideA returns the first side length
func (r Rectangle) SideA() float64 {
	return r.sideA
}

// SideB returns the second side length
func (r Rectangle) SideB() float64 {
	return r.sideB
}

// Corners returns the corner points and whether they are known.
// Rectangles built from dimensions only have corners when all four land on the grid.
func (r Rectangle) Corners() ([4]valueobjects.Point, bool) {
	return r.corners, r.hasCorners
}

// Kind returns KindRectangle
func (r Rectangle) Kind() Kind {
	return KindRectangle
}

// Area returns a·b
func (r Rectangle) Area() float64 {
	return r.sideA * r.sideB
}

// Perimeter returns 2·(a+b)
func (r Rectangle) Perimeter() float64 {
	return 2 * (r.sideA + r.sideB)
}

func validateSide(name string, side float64) error {
	if side < 0 || !isFinite(side) {
		return pkgerrors.ErrInvalidSide.Clone().
			WithDetail("side", name).
			WithDetail("value", side)
	}
	return nil
}

// quadrilateral holds the measurements inferred from four corners
type quadrilateral struct {
	sideA  float64
	sideB  float64
	sideA2 int
	sideB2 int
	center valueobjects.Point
}

// analyzeRectangle takes the farthest pair of corners as the diagonal p1-p3, treats the
// remaining two as p2 and p4, and checks the right angle at p2 with Pythagoras.
// The diagonals must also bisect each other, which pins down p4.
func analyzeRectangle(corners [4]valueobjects.Point) (quadrilateral, error) {
	p1, p3 := 0, 1
	maxDistance := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if d := corners[i].SquaredDistanceTo(corners[j]); d > maxDistance {
				p1, p3 = i, j
				maxDistance = d
			}
		}
	}

	p2, p4 := -1, -1
	for i := 0; i < 4; i++ {
		if i == p1 || i == p3 {
			continue
		}
		if p2 == -1 {
			p2 = i
		} else {
			p4 = i
		}
	}

	// Squared distances between grid points are exact integers, so the right angle
	// at p2 is checked exactly. Each term is below 2^63, so the sum fits a uint64.
	sideA2 := corners[p1].SquaredDistanceTo(corners[p2])
	sideB2 := corners[p2].SquaredDistanceTo(corners[p3])
	sideA := math.Sqrt(float64(sideA2))
	sideB := math.Sqrt(float64(sideB2))

	if uint64(sideA2)+uint64(sideB2) != uint64(maxDistance) {
		return quadrilateral{}, pkgerrors.ErrNotARectangle.Clone().
			WithDetail("side_a", sideA).
			WithDetail("side_b", sideB).
			WithDetail("diagonal_squared", maxDistance)
	}

	if sideA2 == 0 || sideB2 == 0 {
		return quadrilateral{}, pkgerrors.ErrDegenerateShape.Clone().
			WithDetail("side_a", sideA).
			WithDetail("side_b", sideB)
	}

	if !bisect(corners[p1], corners[p3], corners[p2], corners[p4]) {
		return quadrilateral{}, pkgerrors.ErrNotARectangle.Clone().
			WithMessage("Diagonals of the rectangle do not bisect each other")
	}

	return quadrilateral{
		sideA:  sideA,
		sideB:  sideB,
		sideA2: sideA2,
		sideB2: sideB2,
		center: corners[p1].Midpoint(corners[p3]),
	}, nil
}

// bisect reports whether segments a1-a2 and b1-b2 share their midpoint
func bisect(a1, a2, b1, b2 valueobjects.Point) bool {
	return a1.X()+a2.X() == b1.X()+b2.X() && a1.Y()+a2.Y() == b1.Y()+b2.Y()
}
