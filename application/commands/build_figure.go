package commands

import (
	"fmt"

	"figures/domain/core/figures"
	"figures/domain/core/valueobjects"
	pkgerrors "figures/pkg/errors"
	"figures/pkg/utils"
)

// PointInput is an unvalidated point. Coordinates are checked by the domain.
type PointInput struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// ToPoint converts the input to a validated Point
func (p PointInput) ToPoint() (valueobjects.Point, error) {
	return valueobjects.NewPoint(p.X, p.Y)
}

// BuildFigureCommand represents the command to construct a figure.
// A figure is built from Corners when they are given, otherwise from its dimensions.
type BuildFigureCommand struct {
	Kind    string       `json:"kind" yaml:"kind" validate:"required,oneof=circle rectangle square rhombus triangle"`
	Name    string       `json:"name,omitempty" yaml:"name,omitempty" validate:"max=64"`
	Center  *PointInput  `json:"center,omitempty" yaml:"center,omitempty"`
	Radius  float64      `json:"radius,omitempty" yaml:"radius,omitempty"`
	SideA   float64      `json:"side_a,omitempty" yaml:"side_a,omitempty"`
	SideB   float64      `json:"side_b,omitempty" yaml:"side_b,omitempty"`
	Side    float64      `json:"side,omitempty" yaml:"side,omitempty"`
	Angle   int          `json:"angle,omitempty" yaml:"angle,omitempty"`
	Corners []PointInput `json:"corners,omitempty" yaml:"corners,omitempty" validate:"omitempty,max=4"`
}

// FromCorners reports whether the figure is built from corner points
func (c BuildFigureCommand) FromCorners() bool {
	return len(c.Corners) > 0
}

// Validate checks the command's structure. Geometry is left to the domain constructors.
func (c BuildFigureCommand) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return err
	}

	verrs := pkgerrors.NewValidationErrors()
	n := len(c.Corners)

	switch figures.Kind(c.Kind) {
	case figures.KindCircle:
		if n > 0 {
			verrs.Add("corners", "circle cannot be built from corners")
		}
	case figures.KindTriangle:
		if n != 3 {
			verrs.Add("corners", fmt.Sprintf("triangle needs exactly 3 corners, got %d", n))
		}
	case figures.KindRectangle, figures.KindSquare, figures.KindRhombus:
		if n != 0 && n != 4 {
			verrs.Add("corners", fmt.Sprintf("%s needs exactly 4 corners, got %d", c.Kind, n))
		}
	}

	if n > 0 && c.Center != nil {
		verrs.Add("center", "center is derived from corners and cannot be given")
	}

	if verrs.HasErrors() {
		return verrs
	}
	return nil
}
