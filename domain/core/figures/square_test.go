package figures

import (
	"testing"

	"figures/domain/core/valueobjects"
	pkgerrors "figures/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSquare(t *testing.T) {
	s, err := NewSquare(3, pt(1, 1))
	require.NoError(t, err)

	assert.Equal(t, "Square", s.Name())
	assert.Equal(t, 3.0, s.Side())
	assert.Equal(t, 9.0, s.Area())
	assert.Equal(t, 12.0, s.Perimeter())

	_, err = NewSquare(-1, pt(1, 1))
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidSide)
}

func TestNewSquareFromCorners(t *testing.T) {
	tests := []struct {
		name     string
		corners  [4]valueobjects.Point
		wantSide float64
		wantErr  []*pkgerrors.DomainError
	}{
		{
			name:     "axis aligned",
			corners:  [4]valueobjects.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)},
			wantSide: 4,
		},
		{
			name:     "tilted",
			corners:  [4]valueobjects.Point{pt(3, 0), pt(7, 3), pt(4, 7), pt(0, 4)},
			wantSide: 5,
		},
		{
			name:    "rectangle that is not a square",
			corners: [4]valueobjects.Point{pt(1, 5), pt(1, 2), pt(6, 5), pt(6, 2)},
			wantErr: []*pkgerrors.DomainError{pkgerrors.ErrNotASquare},
		},
		{
			name:    "not even a rectangle",
			corners: [4]valueobjects.Point{pt(2, 6), pt(3, 7), pt(8, 7), pt(9, 2)},
			wantErr: []*pkgerrors.DomainError{pkgerrors.ErrNotASquare, pkgerrors.ErrNotARectangle},
		},
		{
			name:    "single point",
			corners: [4]valueobjects.Point{pt(1, 1), pt(1, 1), pt(1, 1), pt(1, 1)},
			wantErr: []*pkgerrors.DomainError{pkgerrors.ErrDegenerateShape},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSquareFromCorners(tt.corners)

			if len(tt.wantErr) > 0 {
				for _, want := range tt.wantErr {
					assert.ErrorIs(t, err, want)
				}
				assert.Equal(t, Square{}, s)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantSide, s.Side(), Epsilon)
			assert.Equal(t, "Square", s.Name())
			assert.InDelta(t, tt.wantSide*tt.wantSide, s.Area(), Epsilon)
		})
	}
}

func TestSquare_CornerRoundTrip(t *testing.T) {
	original, err := NewSquare(4, pt(2, 2))
	require.NoError(t, err)

	corners, ok := original.Corners()
	require.True(t, ok)
	assert.Equal(t, [4]valueobjects.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}, corners)

	rebuilt, err := NewSquareFromCorners(corners)
	require.NoError(t, err)
	assert.InDelta(t, original.Side(), rebuilt.Side(), Epsilon)
	assert.True(t, rebuilt.Center().Equals(pt(2, 2)))
}

func TestSquare_WithSide(t *testing.T) {
	s, err := NewSquare(2, pt(5, 5))
	require.NoError(t, err)

	next, err := s.WithSide(6)
	require.NoError(t, err)
	assert.Equal(t, 36.0, next.Area())
	assert.Equal(t, 4.0, s.Area())

	_, err = s.WithSide(-6)
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidSide)
}
