package di

import (
	"fmt"
	"io"

	"figures/application/harness"
	"figures/application/services"
	"figures/infrastructure/config"
	"figures/pkg/observability"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProvideLogger creates a new logger instance at the configured level
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("environment", string(cfg.Environment))), nil
}

// ProvideCollector creates the metrics collector, or nil when metrics are disabled
func ProvideCollector(cfg *config.Config) *observability.Collector {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return observability.NewCollector(cfg.Metrics.Namespace)
}

// ProvideFigureService creates the figure service
func ProvideFigureService(logger *zap.Logger, metrics *observability.Collector) *services.FigureService {
	return services.NewFigureService(logger, metrics)
}

// ProvideRunner creates the scenario runner writing to out
func ProvideRunner(
	service *services.FigureService,
	out io.Writer,
	logger *zap.Logger,
	metrics *observability.Collector,
	cfg *config.Config,
) *harness.Runner {
	return harness.NewRunner(service, out, logger.Named("harness"), metrics, cfg.Harness.FailFast)
}
