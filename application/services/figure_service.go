package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"figures/application/commands"
	"figures/domain/core/figures"
	"figures/domain/core/valueobjects"
	pkgerrors "figures/pkg/errors"
	"figures/pkg/observability"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// BuiltFigure is a validated figure together with the ID assigned to it
type BuiltFigure struct {
	ID     uuid.UUID
	Figure figures.Figure
}

// Description is a read-only summary of a figure
type Description struct {
	ID        string
	Name      string
	Kind      figures.Kind
	Center    valueobjects.Point
	Area      float64
	Perimeter float64
}

// String renders the name followed by area and perimeter, one per line
func (d Description) String() string {
	return fmt.Sprintf("My name: %s\n%.6g\n%.6g", d.Name, d.Area, d.Perimeter)
}

// Describe summarizes any figure
func Describe(fig figures.Figure) Description {
	return Description{
		Name:      fig.Name(),
		Kind:      fig.Kind(),
		Center:    fig.Center(),
		Area:      fig.Area(),
		Perimeter: fig.Perimeter(),
	}
}

// Describe summarizes the figure and attaches its ID
func (b *BuiltFigure) Describe() Description {
	d := Describe(b.Figure)
	d.ID = b.ID.String()
	return d
}

// namedFigure is a figure whose display name can be changed in place
type namedFigure interface {
	figures.Figure
	SetName(name string)
}

// FigureService turns build commands into validated figures
type FigureService struct {
	logger  *zap.Logger
	metrics *observability.Collector // nil when metrics are disabled
	tracer  trace.Tracer
}

// NewFigureService creates a new figure service
func NewFigureService(logger *zap.Logger, metrics *observability.Collector) *FigureService {
	return &FigureService{
		logger:  logger,
		metrics: metrics,
		tracer:  otel.Tracer("figures.application.figure_service"),
	}
}

// Build validates the command and constructs the requested figure
func (s *FigureService) Build(ctx context.Context, cmd commands.BuildFigureCommand) (*BuiltFigure, error) {
	ctx, span := s.tracer.Start(ctx, "FigureService.Build",
		trace.WithAttributes(
			attribute.String("figure.kind", cmd.Kind),
			attribute.Bool("figure.from_corners", cmd.FromCorners()),
			attribute.Int("figure.corners", len(cmd.Corners)),
		),
	)
	defer span.End()

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Context done before build")
		return nil, err
	}

	start := time.Now()
	fig, err := s.construct(cmd)
	s.record(cmd.Kind, err, time.Since(start))

	if err != nil {
		code := pkgerrors.CodeOf(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, code)

		fields := []zap.Field{
			zap.String("kind", cmd.Kind),
			zap.String("code", code),
			zap.Error(err),
		}
		var verrs *pkgerrors.ValidationErrors
		if errors.As(err, &verrs) {
			fields = append(fields, zap.Any("fields", verrs.ToMap()))
		}
		s.logger.Debug("Figure rejected", fields...)
		return nil, err
	}

	if cmd.Name != "" {
		fig.SetName(cmd.Name)
	}

	built := &BuiltFigure{ID: uuid.New(), Figure: fig}
	span.SetAttributes(attribute.String("figure.id", built.ID.String()))
	span.SetStatus(codes.Ok, "")

	s.logger.Debug("Figure built",
		zap.String("figure_id", built.ID.String()),
		zap.String("kind", string(fig.Kind())),
		zap.String("center", fig.Center().String()),
		zap.Float64("area", fig.Area()),
		zap.Float64("perimeter", fig.Perimeter()),
	)
	return built, nil
}

func (s *FigureService) construct(cmd commands.BuildFigureCommand) (namedFigure, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	kind := figures.Kind(cmd.Kind)
	if kind == figures.KindTriangle {
		var corners [3]valueobjects.Point
		if err := toPoints(cmd.Corners, corners[:]); err != nil {
			return nil, err
		}
		t, err := figures.NewTriangle(corners)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}

	if cmd.FromCorners() {
		var corners [4]valueobjects.Point
		if err := toPoints(cmd.Corners, corners[:]); err != nil {
			return nil, err
		}
		return fromCorners(kind, corners)
	}

	center := valueobjects.Point{}
	if cmd.Center != nil {
		p, err := cmd.Center.ToPoint()
		if err != nil {
			return nil, err
		}
		center = p
	}
	return fromDimensions(kind, cmd, center)
}

func fromCorners(kind figures.Kind, corners [4]valueobjects.Point) (namedFigure, error) {
	switch kind {
	case figures.KindRectangle:
		r, err := figures.NewRectangleFromCorners(corners)
		if err != nil {
			return nil, err
		}
		return &r, nil
	case figures.KindSquare:
		sq, err := figures.NewSquareFromCorners(corners)
		if err != nil {
			return nil, err
		}
		return &sq, nil
	case figures.KindRhombus:
		rh, err := figures.NewRhombusFromCorners(corners)
		if err != nil {
			return nil, err
		}
		return &rh, nil
	default:
		return nil, fmt.Errorf("%s cannot be built from corners", kind)
	}
}

func fromDimensions(kind figures.Kind, cmd commands.BuildFigureCommand, center valueobjects.Point) (namedFigure, error) {
	switch kind {
	case figures.KindCircle:
		c, err := figures.NewCircle(cmd.Radius, center)
		if err != nil {
			return nil, err
		}
		return &c, nil
	case figures.KindRectangle:
		r, err := figures.NewRectangle(cmd.SideA, cmd.SideB, center)
		if err != nil {
			return nil, err
		}
		return &r, nil
	case figures.KindSquare:
		sq, err := figures.NewSquare(cmd.Side, center)
		if err != nil {
			return nil, err
		}
		return &sq, nil
	case figures.KindRhombus:
		rh, err := figures.NewRhombus(cmd.Side, cmd.Angle, center)
		if err != nil {
			return nil, err
		}
		return &rh, nil
	default:
		return nil, fmt.Errorf("%s cannot be built from dimensions", kind)
	}
}

// toPoints validates every input and fills dst in order
func toPoints(inputs []commands.PointInput, dst []valueobjects.Point) error {
	for i, in := range inputs {
		p, err := in.ToPoint()
		if err != nil {
			return fmt.Errorf("corner %d: %w", i, err)
		}
		dst[i] = p
	}
	return nil
}

func (s *FigureService) record(kind string, err error, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	if !figures.Kind(kind).IsValid() {
		kind = "unknown"
	}
	s.metrics.RecordBuild(kind, pkgerrors.CodeOf(err), elapsed)
}
