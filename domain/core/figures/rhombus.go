package figures

import (
	"math"

	"figures/domain/core/valueobjects"
	pkgerrors "figures/pkg/errors"
)

// Rhombus is stored as its side and acute angle in degrees
type Rhombus struct {
	base
	side       float64
	angle      float64
	corners    [4]valueobjects.Point
	hasCorners bool
}

// NewRhombus creates a rhombus from its side and acute angle in whole degrees
func NewRhombus(side float64, angleDegrees int, center valueobjects.Point) (Rhombus, error) {
	if side <= 0 || !isFinite(side) {
		return Rhombus{}, pkgerrors.ErrInvalidSide.Clone().
			WithMessage("Rhombus side must be greater than 0").
			WithDetail("value", side)
	}
	if err := validateAngle(float64(angleDegrees)); err != nil {
		return Rhombus{}, err
	}

	return Rhombus{
		base:  base{name: "Rhombus", center: center},
		side:  side,
		angle: float64(angleDegrees),
	}, nil
}

// NewRhombusFromCorners infers side and angle from four corners given in any order.
// Four of the six pairwise distances must equal the side; the other two are the diagonals.
func NewRhombusFromCorners(corners [4]valueobjects.Point) (Rhombus, error) {
	type pair struct {
		i, j     int
		distance int
	}

	pairs := make([]pair, 0, 6)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			pairs = append(pairs, pair{i: i, j: j, distance: corners[i].SquaredDistanceTo(corners[j])})
		}
	}

	side2 := 0
	for _, p := range pairs {
		if p.distance > 0 && (side2 == 0 || p.distance < side2) {
			side2 = p.distance
		}
	}
	if side2 == 0 {
		return Rhombus{}, pkgerrors.ErrDegenerateShape.Clone().
			WithMessage("Degenerate rhombus")
	}

	count := 0
	for _, p := range pairs {
		if p.distance == side2 {
			count++
		}
	}
	if count != 4 {
		return Rhombus{}, pkgerrors.ErrNotARhombus.Clone().
			WithDetail("equal_sides", count)
	}

	diagonals := make([]pair, 0, 2)
	for _, p := range pairs {
		if p.distance > side2 {
			diagonals = append(diagonals, p)
		}
	}
	if len(diagonals) < 2 {
		return Rhombus{}, pkgerrors.ErrInvalidGeometry.Clone().
			WithDetail("diagonals", len(diagonals))
	}

	d1, d2 := diagonals[0], diagonals[1]
	if !bisect(corners[d1.i], corners[d1.j], corners[d2.i], corners[d2.j]) {
		return Rhombus{}, pkgerrors.ErrNotARhombus.Clone().
			WithMessage("Diagonals of the rhombus do not bisect each other")
	}

	// d1 = 2s²(1+cos α) and d2 = 2s²(1-cos α) for the two squared diagonals.
	// Their sum is always 4s² (parallelogram law), so cos α comes from the difference.
	cosAlpha := math.Abs(float64(d1.distance)-float64(d2.distance)) / (4 * float64(side2))
	alpha := math.Acos(cosAlpha) * 180 / math.Pi
	if err := validateAngle(alpha); err != nil {
		return Rhombus{}, err
	}

	return Rhombus{
		base:       base{name: "Rhombus", center: corners[d1.i].Midpoint(corners[d1.j])},
		side:       math.Sqrt(float64(side2)),
		angle:      alpha,
		corners:    corners,
		hasCorners: true,
	}, nil
}

// WithAngle returns a copy with a new acute angle
func (r Rhombus) WithAngle(angleDegrees int) (Rhombus, error) {
	next, err := NewRhombus(r.side, angleDegrees, r.center)
	if err != nil {
		return Rhombus{}, err
	}
	next.name = r.name
	return next, nil
}

// WithSide returns a copy with a new side length
func (r Rhombus) WithSide(side float64) (Rhombus, error) {
	if side <= 0 || !isFinite(side) {
		return Rhombus{}, pkgerrors.ErrInvalidSide.Clone().
			WithMessage("Rhombus side must be greater than 0").
			WithDetail("value", side)
	}
	next := r
	next.side = side
	next.corners = [4]valueobjects.Point{}
	next.hasCorners = false
	return next, nil
}

// Side returns the side length
func (r Rhombus) Side() float64 {
	return r.side
}

// Angle returns the acute angle in degrees
func (r Rhombus) Angle() float64 {
	return r.angle
}

// Corners returns the corner points and whether they are known.
// Only rhombi built from corners have them.
func (r Rhombus) Corners() ([4]valueobjects.Point, bool) {
	return r.corners, r.hasCorners
}

// Kind returns KindRhombus
func (r Rhombus) Kind() Kind {
	return KindRhombus
}

// Area returns a²·sin α
func (r Rhombus) Area() float64 {
	return r.side * r.side * math.Sin(r.angle*math.Pi/180)
}

// Perimeter returns 4·a
func (r Rhombus) Perimeter() float64 {
	return 4 * r.side
}

func validateAngle(degrees float64) error {
	if math.IsNaN(degrees) || degrees <= 0 || degrees >= 90 {
		return pkgerrors.ErrInvalidAngle.Clone().WithDetail("degrees", degrees)
	}
	return nil
}
