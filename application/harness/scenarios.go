package harness

import (
	"fmt"

	"figures/application/commands"
	pkgerrors "figures/pkg/errors"
)

// Scenario is one build command and the outcome it must produce.
// An empty WantCode means the build must succeed.
type Scenario struct {
	Name     string
	Command  commands.BuildFigureCommand
	WantCode string
}

func at(x, y int) *commands.PointInput {
	return &commands.PointInput{X: x, Y: y}
}

func corners(coords ...int) []commands.PointInput {
	out := make([]commands.PointInput, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, commands.PointInput{X: coords[i], Y: coords[i+1]})
	}
	return out
}

// DefaultScenarios returns the built-in smoke scenarios
func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Name:    "triangle",
			Command: commands.BuildFigureCommand{Kind: "triangle", Corners: corners(6, 3, 2, 4, 1, 10)},
		},
		{
			Name:    "rectangle-corners",
			Command: commands.BuildFigureCommand{Kind: "rectangle", Corners: corners(1, 5, 1, 2, 6, 5, 6, 2)},
		},
		{
			Name:    "rectangle-corners-shuffled",
			Command: commands.BuildFigureCommand{Kind: "rectangle", Corners: corners(6, 2, 1, 5, 6, 5, 1, 2)},
		},
		{
			Name:    "circle",
			Command: commands.BuildFigureCommand{Kind: "circle", Radius: 3, Center: at(1, 1)},
		},
		{
			Name:    "rectangle",
			Command: commands.BuildFigureCommand{Kind: "rectangle", SideA: 4, SideB: 5, Center: at(1, 3)},
		},
		{
			Name:    "square",
			Command: commands.BuildFigureCommand{Kind: "square", Side: 3, Center: at(1, 1)},
		},
		{
			Name:    "rhombus",
			Command: commands.BuildFigureCommand{Kind: "rhombus", Side: 5, Angle: 60, Center: at(1, 1)},
		},
		{
			Name:    "rhombus-corners",
			Command: commands.BuildFigureCommand{Kind: "rhombus", Corners: corners(0, 3, 4, 6, 8, 3, 4, 0)},
		},
		{
			Name:     "circle-negative-radius",
			Command:  commands.BuildFigureCommand{Kind: "circle", Radius: -2, Center: at(1, 1)},
			WantCode: pkgerrors.CodeInvalidRadius,
		},
		{
			Name:     "circle-negative-center",
			Command:  commands.BuildFigureCommand{Kind: "circle", Radius: 2, Center: at(-1, 1)},
			WantCode: pkgerrors.CodeInvalidCoordinate,
		},
		{
			Name:     "rectangle-negative-side",
			Command:  commands.BuildFigureCommand{Kind: "rectangle", SideA: -5, SideB: 3, Center: at(1, 1)},
			WantCode: pkgerrors.CodeInvalidSide,
		},
		{
			Name:     "rectangle-stray-corner",
			Command:  commands.BuildFigureCommand{Kind: "rectangle", Corners: corners(0, 0, 4, 0, 4, 3, 1, 1)},
			WantCode: pkgerrors.CodeNotARectangle,
		},
		{
			Name:     "square-from-rectangle-corners",
			Command:  commands.BuildFigureCommand{Kind: "square", Corners: corners(2, 6, 3, 7, 8, 7, 9, 2)},
			WantCode: pkgerrors.CodeNotASquare,
		},
		{
			Name:     "rhombus-obtuse-angle",
			Command:  commands.BuildFigureCommand{Kind: "rhombus", Side: 5, Angle: 107, Center: at(1, 1)},
			WantCode: pkgerrors.CodeInvalidAngle,
		},
		{
			Name:     "rhombus-square-corners",
			Command:  commands.BuildFigureCommand{Kind: "rhombus", Corners: corners(0, 0, 2, 0, 2, 2, 0, 2)},
			WantCode: pkgerrors.CodeInvalidAngle,
		},
		{
			Name:     "triangle-vertical-line",
			Command:  commands.BuildFigureCommand{Kind: "triangle", Corners: corners(1, 1, 1, 5, 1, 9)},
			WantCode: pkgerrors.CodeCollinearPoints,
		},
		{
			Name:     "triangle-diagonal-line",
			Command:  commands.BuildFigureCommand{Kind: "triangle", Corners: corners(0, 0, 1, 1, 2, 2)},
			WantCode: pkgerrors.CodeCollinearPoints,
		},
		{
			Name:     "unknown-kind",
			Command:  commands.BuildFigureCommand{Kind: "hexagon"},
			WantCode: pkgerrors.CodeFieldValidation,
		},
	}
}

// Filter keeps the named scenarios in the order given. No names keeps everything.
func Filter(scenarios []Scenario, names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return scenarios, nil
	}

	byName := make(map[string]Scenario, len(scenarios))
	for _, s := range scenarios {
		byName[s.Name] = s
	}

	selected := make([]Scenario, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q", name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}
