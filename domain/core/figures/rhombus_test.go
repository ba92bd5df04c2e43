package figures

import (
	"math"
	"testing"

	"figures/domain/core/valueobjects"
	pkgerrors "figures/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRhombus(t *testing.T) {
	tests := []struct {
		name    string
		side    float64
		angle   int
		wantErr *pkgerrors.DomainError
	}{
		{name: "sixty degrees", side: 5, angle: 60},
		{name: "one degree", side: 2, angle: 1},
		{name: "eighty nine degrees", side: 2, angle: 89},
		{name: "obtuse angle", side: 5, angle: 107, wantErr: pkgerrors.ErrInvalidAngle},
		{name: "right angle", side: 5, angle: 90, wantErr: pkgerrors.ErrInvalidAngle},
		{name: "zero angle", side: 5, angle: 0, wantErr: pkgerrors.ErrInvalidAngle},
		{name: "negative angle", side: 5, angle: -30, wantErr: pkgerrors.ErrInvalidAngle},
		{name: "zero side", side: 0, angle: 45, wantErr: pkgerrors.ErrInvalidSide},
		{name: "negative side", side: -1, angle: 45, wantErr: pkgerrors.ErrInvalidSide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRhombus(tt.side, tt.angle, pt(1, 1))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 4*tt.side, r.Perimeter())
			assert.InDelta(t, tt.side*tt.side*math.Sin(float64(tt.angle)*math.Pi/180), r.Area(), 1e-9)
			_, ok := r.Corners()
			assert.False(t, ok)
		})
	}
}

func TestRhombus_PerimeterSixtyDegrees(t *testing.T) {
	r, err := NewRhombus(5, 60, pt(1, 1))
	require.NoError(t, err)

	assert.Equal(t, 20.0, r.Perimeter())
	assert.Equal(t, 60.0, r.Angle())
	assert.InDelta(t, 21.650635, r.Area(), 1e-6)
}

func TestNewRhombusFromCorners(t *testing.T) {
	tests := []struct {
		name      string
		corners   [4]valueobjects.Point
		wantSide  float64
		wantAngle float64
		wantArea  float64
		wantErr   *pkgerrors.DomainError
	}{
		{
			name:      "diagonals eight and six",
			corners:   [4]valueobjects.Point{pt(0, 3), pt(4, 6), pt(8, 3), pt(4, 0)},
			wantSide:  5,
			wantAngle: math.Acos(0.28) * 180 / math.Pi,
			wantArea:  24,
		},
		{
			name:      "same rhombus shuffled",
			corners:   [4]valueobjects.Point{pt(8, 3), pt(0, 3), pt(4, 0), pt(4, 6)},
			wantSide:  5,
			wantAngle: math.Acos(0.28) * 180 / math.Pi,
			wantArea:  24,
		},
		{
			name:    "square has a right angle",
			corners: [4]valueobjects.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)},
			wantErr: pkgerrors.ErrInvalidAngle,
		},
		{
			name:    "rectangle has only two equal pairs",
			corners: [4]valueobjects.Point{pt(1, 5), pt(1, 2), pt(6, 5), pt(6, 2)},
			wantErr: pkgerrors.ErrNotARhombus,
		},
		{
			name:    "short diagonal shorter than the side",
			corners: [4]valueobjects.Point{pt(0, 1), pt(2, 2), pt(4, 1), pt(2, 0)},
			wantErr: pkgerrors.ErrNotARhombus,
		},
		{
			name:    "two doubled points",
			corners: [4]valueobjects.Point{pt(0, 0), pt(0, 0), pt(3, 4), pt(3, 4)},
			wantErr: pkgerrors.ErrInvalidGeometry,
		},
		{
			name:    "single point",
			corners: [4]valueobjects.Point{pt(2, 2), pt(2, 2), pt(2, 2), pt(2, 2)},
			wantErr: pkgerrors.ErrDegenerateShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRhombusFromCorners(tt.corners)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Rhombus{}, r)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantSide, r.Side(), Epsilon)
			assert.InDelta(t, tt.wantAngle, r.Angle(), Epsilon)
			assert.InDelta(t, tt.wantArea, r.Area(), Epsilon)
			assert.InDelta(t, 4*tt.wantSide, r.Perimeter(), Epsilon)
			assert.True(t, r.Center().Equals(pt(4, 3)))

			corners, ok := r.Corners()
			assert.True(t, ok)
			assert.Equal(t, tt.corners, corners)
		})
	}
}

func TestRhombus_CornerRoundTrip(t *testing.T) {
	first, err := NewRhombusFromCorners([4]valueobjects.Point{pt(0, 3), pt(4, 6), pt(8, 3), pt(4, 0)})
	require.NoError(t, err)

	corners, ok := first.Corners()
	require.True(t, ok)

	second, err := NewRhombusFromCorners(corners)
	require.NoError(t, err)
	assert.InDelta(t, first.Side(), second.Side(), Epsilon)
	assert.InDelta(t, first.Angle(), second.Angle(), Epsilon)
}

func TestRhombus_WithAngleAndSide(t *testing.T) {
	r, err := NewRhombus(5, 60, pt(1, 1))
	require.NoError(t, err)

	flatter, err := r.WithAngle(30)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, flatter.Area(), 1e-9)

	_, err = r.WithAngle(120)
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidAngle)

	longer, err := r.WithSide(10)
	require.NoError(t, err)
	assert.Equal(t, 40.0, longer.Perimeter())
	assert.Equal(t, 60.0, longer.Angle())

	_, err = r.WithSide(0)
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidSide)
}
