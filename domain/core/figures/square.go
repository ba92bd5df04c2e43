package figures

import (
	"errors"

	"figures/domain/core/valueobjects"
	pkgerrors "figures/pkg/errors"
)

// Square holds a single side length. It shares the corner analysis with
// Rectangle but not its storage.
type Square struct {
	base
	side       float64
	corners    [4]valueobjects.Point
	hasCorners bool
}

// NewSquare creates an axis-aligned square centered at center
func NewSquare(side float64, center valueobjects.Point) (Square, error) {
	if err := validateSide("a", side); err != nil {
		return Square{}, err
	}

	corners, ok := boxCorners(side, side, center)
	return Square{
		base:       base{name: "Square", center: center},
		side:       side,
		corners:    corners,
		hasCorners: ok,
	}, nil
}

// NewSquareFromCorners infers the side from four corners given in any order.
// Corners that do not form a rectangle are reported as ErrNotASquare wrapping ErrNotARectangle.
func NewSquareFromCorners(corners [4]valueobjects.Point) (Square, error) {
	q, err := analyzeRectangle(corners)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotARectangle) {
			return Square{}, pkgerrors.ErrNotASquare.Clone().WithCause(err)
		}
		return Square{}, err
	}

	if q.sideA2 != q.sideB2 {
		return Square{}, pkgerrors.ErrNotASquare.Clone().
			WithDetail("side_a", q.sideA).
			WithDetail("side_b", q.sideB)
	}

	return Square{
		base:       base{name: "Square", center: q.center},
		side:       q.sideA,
		corners:    corners,
		hasCorners: true,
	}, nil
}

// WithSide returns a copy with a new side around the same center
func (s Square) WithSide(side float64) (Square, error) {
	next, err := NewSquare(side, s.center)
	if err != nil {
		return Square{}, err
	}
	next.name = s.name
	return next, nil
}

// Side returns the side length
func (s Square) Side() float64 {
	return s.side
}

// Corners returns the corner points and whether they are known
func (s Square) Corners() ([4]valueobjects.Point, bool) {
	return s.corners, s.hasCorners
}

// Kind returns KindSquare
func (s Square) Kind() Kind {
	return KindSquare
}

// Area returns a²
func (s Square) Area() float64 {
	return s.side * s.side
}

// Perimeter returns 4·a
func (s Square) Perimeter() float64 {
	return 4 * s.side
}
