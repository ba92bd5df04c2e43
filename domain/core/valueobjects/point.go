package valueobjects

import (
	"fmt"
	"math"

	pkgerrors "figures/pkg/errors"
)

// MaxCoordinate is the largest accepted coordinate. Squared distances and cross
// products of bounded points fit in an int64.
const MaxCoordinate = math.MaxInt32

// Point is a value object representing a corner or center on the non-negative integer grid.
// Every Point observable by a caller satisfies 0 <= x, y <= MaxCoordinate; arithmetic results
// are re-validated instead of being allowed to leave the grid.
type Point struct {
	x int
	y int
}

// NewPoint creates a point with validation
func NewPoint(x, y int) (Point, error) {
	if x < 0 || x > MaxCoordinate {
		return Point{}, invalidCoordinate("x", x)
	}
	if y < 0 || y > MaxCoordinate {
		return Point{}, invalidCoordinate("y", y)
	}
	return Point{x: x, y: y}, nil
}

// MustNewPoint is NewPoint for literals known to be valid. It panics on error.
func MustNewPoint(x, y int) Point {
	p, err := NewPoint(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// X returns the X coordinate
func (p Point) X() int {
	return p.x
}

// Y returns the Y coordinate
func (p Point) Y() int {
	return p.y
}

// WithX returns a copy with a new X coordinate
func (p Point) WithX(x int) (Point, error) {
	return NewPoint(x, p.y)
}

// WithY returns a copy with a new Y coordinate
func (p Point) WithY(y int) (Point, error) {
	return NewPoint(p.x, y)
}

// SetX updates X in place. The point is left unchanged on error.
func (p *Point) SetX(x int) error {
	next, err := p.WithX(x)
	if err != nil {
		return err
	}
	*p = next
	return nil
}

// SetY updates Y in place. The point is left unchanged on error.
func (p *Point) SetY(y int) error {
	next, err := p.WithY(y)
	if err != nil {
		return err
	}
	*p = next
	return nil
}

// Equals checks if two points are equal
func (p Point) Equals(other Point) bool {
	return p.x == other.x && p.y == other.y
}

// Add returns the component-wise sum
func (p Point) Add(other Point) (Point, error) {
	return NewPoint(p.x+other.x, p.y+other.y)
}

// Sub returns the component-wise difference
func (p Point) Sub(other Point) (Point, error) {
	return NewPoint(p.x-other.x, p.y-other.y)
}

// AddInPlace adds other to p
func (p *Point) AddInPlace(other Point) error {
	next, err := p.Add(other)
	if err != nil {
		return err
	}
	*p = next
	return nil
}

// SubInPlace subtracts other from p
func (p *Point) SubInPlace(other Point) error {
	next, err := p.Sub(other)
	if err != nil {
		return err
	}
	*p = next
	return nil
}

// SquaredDistanceTo returns the exact squared Euclidean distance
func (p Point) SquaredDistanceTo(other Point) int {
	dx := p.x - other.x
	dy := p.y - other.y
	return dx*dx + dy*dy
}

// DistanceTo calculates the Euclidean distance to another point
func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(float64(p.x-other.x), float64(p.y-other.y))
}

// Midpoint returns the midpoint, rounded down to the grid
func (p Point) Midpoint(other Point) Point {
	return Point{
		x: (p.x + other.x) / 2,
		y: (p.y + other.y) / 2,
	}
}

// String returns "(x, y)"
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.x, p.y)
}

func invalidCoordinate(axis string, value int) error {
	msg := fmt.Sprintf("%s cannot be less than 0", axis)
	if value > MaxCoordinate {
		msg = fmt.Sprintf("%s cannot be greater than %d", axis, MaxCoordinate)
	}
	return pkgerrors.ErrInvalidCoordinate.Clone().
		WithMessage(msg).
		WithDetail("axis", axis).
		WithDetail("value", value)
}
