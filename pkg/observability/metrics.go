package observability

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the Prometheus metrics for figure construction
type Collector struct {
	// Registry for this collector instance
	registry *prometheus.Registry

	// FiguresBuilt counts build attempts by kind and status
	FiguresBuilt *prometheus.CounterVec

	// Rejections counts failed builds by error code
	Rejections *prometheus.CounterVec

	// BuildDuration observes how long construction and validation take
	BuildDuration *prometheus.HistogramVec

	// ScenarioOutcomes counts harness scenarios by result
	ScenarioOutcomes *prometheus.CounterVec
}

// NewCollector creates a new metrics collector with the given namespace.
// Each collector owns its registry so tests can build as many as they like.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	figuresBuilt := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "figures_built_total",
			Help:      "Total number of figure build attempts",
		},
		[]string{"kind", "status"},
	)

	rejections := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "figure_rejections_total",
			Help:      "Total number of rejected figures by error code",
		},
		[]string{"code"},
	)

	buildDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "figure_build_duration_seconds",
			Help:      "Figure construction duration in seconds",
			Buckets:   []float64{.000001, .00001, .0001, .001, .01},
		},
		[]string{"kind"},
	)

	scenarioOutcomes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "harness_scenarios_total",
			Help:      "Total number of harness scenarios by outcome",
		},
		[]string{"outcome"},
	)

	registry.MustRegister(
		figuresBuilt,
		rejections,
		buildDuration,
		scenarioOutcomes,
	)

	return &Collector{
		registry:         registry,
		FiguresBuilt:     figuresBuilt,
		Rejections:       rejections,
		BuildDuration:    buildDuration,
		ScenarioOutcomes: scenarioOutcomes,
	}
}

// RecordBuild records one build attempt. code is empty on success.
func (c *Collector) RecordBuild(kind string, code string, duration time.Duration) {
	status := "success"
	if code != "" {
		status = "failure"
		c.Rejections.WithLabelValues(code).Inc()
	}
	c.FiguresBuilt.WithLabelValues(kind, status).Inc()
	c.BuildDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordScenario records the outcome of one harness scenario
func (c *Collector) RecordScenario(passed bool) {
	outcome := "passed"
	if !passed {
		outcome = "failed"
	}
	c.ScenarioOutcomes.WithLabelValues(outcome).Inc()
}

// CounterSample is one counter series flattened for logging
type CounterSample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Counters gathers every counter series, sorted by name
func (c *Collector) Counters() ([]CounterSample, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, err
	}

	samples := make([]CounterSample, 0)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if metric.GetCounter() == nil {
				continue
			}
			labels := make(map[string]string, len(metric.GetLabel()))
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			samples = append(samples, CounterSample{
				Name:   family.GetName(),
				Labels: labels,
				Value:  metric.GetCounter().GetValue(),
			})
		}
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Name < samples[j].Name
	})
	return samples, nil
}
