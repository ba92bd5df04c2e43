package commands

import (
	"testing"

	pkgerrors "figures/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corners(n int) []PointInput {
	out := make([]PointInput, n)
	for i := range out {
		out[i] = PointInput{X: i, Y: i * 2}
	}
	return out
}

func TestBuildFigureCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cmd       BuildFigureCommand
		wantField string
	}{
		{
			name: "circle by radius",
			cmd:  BuildFigureCommand{Kind: "circle", Radius: 3, Center: &PointInput{X: 1, Y: 1}},
		},
		{
			name: "rectangle by sides",
			cmd:  BuildFigureCommand{Kind: "rectangle", SideA: 4, SideB: 5},
		},
		{
			name: "rectangle by corners",
			cmd:  BuildFigureCommand{Kind: "rectangle", Corners: corners(4)},
		},
		{
			name: "triangle",
			cmd:  BuildFigureCommand{Kind: "triangle", Corners: corners(3)},
		},
		{
			name: "negative values are left to the domain",
			cmd:  BuildFigureCommand{Kind: "circle", Radius: -2, Center: &PointInput{X: -1, Y: 0}},
		},
		{
			name:      "missing kind",
			cmd:       BuildFigureCommand{Radius: 3},
			wantField: "kind",
		},
		{
			name:      "unknown kind",
			cmd:       BuildFigureCommand{Kind: "hexagon"},
			wantField: "kind",
		},
		{
			name:      "name too long",
			cmd:       BuildFigureCommand{Kind: "circle", Name: string(make([]byte, 65))},
			wantField: "name",
		},
		{
			name:      "too many corners",
			cmd:       BuildFigureCommand{Kind: "rectangle", Corners: corners(5)},
			wantField: "corners",
		},
		{
			name:      "triangle with four corners",
			cmd:       BuildFigureCommand{Kind: "triangle", Corners: corners(4)},
			wantField: "corners",
		},
		{
			name:      "triangle without corners",
			cmd:       BuildFigureCommand{Kind: "triangle"},
			wantField: "corners",
		},
		{
			name:      "square with three corners",
			cmd:       BuildFigureCommand{Kind: "square", Corners: corners(3)},
			wantField: "corners",
		},
		{
			name:      "circle with corners",
			cmd:       BuildFigureCommand{Kind: "circle", Corners: corners(4)},
			wantField: "corners",
		},
		{
			name:      "center and corners together",
			cmd:       BuildFigureCommand{Kind: "rhombus", Corners: corners(4), Center: &PointInput{X: 1, Y: 1}},
			wantField: "center",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs *pkgerrors.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

func TestPointInput_ToPoint(t *testing.T) {
	p, err := PointInput{X: 2, Y: 3}.ToPoint()
	require.NoError(t, err)
	assert.Equal(t, 2, p.X())
	assert.Equal(t, 3, p.Y())

	_, err = PointInput{X: -2, Y: 3}.ToPoint()
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidCoordinate)
}
