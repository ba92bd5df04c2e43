package harness

import (
	"context"
	"fmt"
	"io"

	"figures/application/services"
	pkgerrors "figures/pkg/errors"
	"figures/pkg/observability"

	"go.uber.org/zap"
)

// Result is the outcome of a single scenario
type Result struct {
	Scenario string
	WantCode string
	GotCode  string
	Passed   bool
}

// Report summarizes a harness run
type Report struct {
	Passed  int
	Failed  int
	Results []Result
}

// OK reports whether every scenario that ran matched its expectation
func (r Report) OK() bool {
	return r.Failed == 0
}

// Runner builds each scenario through the figure service and prints what it gets
type Runner struct {
	service  *services.FigureService
	out      io.Writer
	logger   *zap.Logger
	metrics  *observability.Collector
	failFast bool
}

// NewRunner creates a new scenario runner. metrics may be nil.
func NewRunner(
	service *services.FigureService,
	out io.Writer,
	logger *zap.Logger,
	metrics *observability.Collector,
	failFast bool,
) *Runner {
	return &Runner{
		service:  service,
		out:      out,
		logger:   logger,
		metrics:  metrics,
		failFast: failFast,
	}
}

// Run executes the scenarios in order. It returns early only when ctx is done
// or, with fail-fast enabled, after the first mismatch.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) (Report, error) {
	report := Report{Results: make([]Result, 0, len(scenarios))}

	for _, s := range scenarios {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		built, err := r.service.Build(ctx, s.Command)
		code := pkgerrors.CodeOf(err)
		if err != nil && code == "" {
			return report, fmt.Errorf("scenario %s: %w", s.Name, err)
		}

		if err != nil {
			fmt.Fprintf(r.out, "Error: %s\n", message(err))
		} else {
			fmt.Fprintln(r.out, built.Describe().String())
		}

		result := Result{
			Scenario: s.Name,
			WantCode: s.WantCode,
			GotCode:  code,
			Passed:   code == s.WantCode,
		}
		report.Results = append(report.Results, result)
		if r.metrics != nil {
			r.metrics.RecordScenario(result.Passed)
		}

		if result.Passed {
			report.Passed++
			continue
		}

		report.Failed++
		r.logger.Warn("Scenario outcome mismatch",
			zap.String("scenario", s.Name),
			zap.String("want_code", s.WantCode),
			zap.String("got_code", code),
		)
		if r.failFast {
			break
		}
	}

	r.logger.Info("Harness run complete",
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

// message prefers the domain message over the formatted error chain
func message(err error) string {
	if domainErr := pkgerrors.GetDomainError(err); domainErr != nil {
		return domainErr.Message
	}
	return err.Error()
}
