package di

import (
	"figures/application/harness"
	"figures/application/services"
	"figures/infrastructure/config"
	"figures/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	Metrics       *observability.Collector // nil when metrics are disabled
	FigureService *services.FigureService
	Runner        *harness.Runner
}

// Shutdown flushes buffered log entries
func (c *Container) Shutdown() {
	_ = c.Logger.Sync()
}
