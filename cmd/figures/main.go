package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"figures/application/harness"
	"figures/infrastructure/config"
	"figures/infrastructure/di"

	"go.uber.org/zap"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitSetup    = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a YAML config file (defaults to $"+config.PathEnvVar+")")
	watch := flag.Bool("watch", false, "re-run the scenarios whenever the config file changes")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path := config.ResolvePath(*configPath)
	cfg, err := config.NewLoader(path).Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return exitSetup
	}

	ok, err := runScenarios(ctx, cfg)
	if err != nil {
		log.Printf("Harness failed: %v", err)
		return exitSetup
	}
	if !*watch {
		return exitCode(ok)
	}

	logger, err := di.ProvideLogger(cfg)
	if err != nil {
		log.Printf("Failed to create logger: %v", err)
		return exitSetup
	}
	defer logger.Sync()

	watcher, err := config.NewWatcher(path, cfg, logger)
	if err != nil {
		logger.Error("Failed to start config watcher", zap.Error(err))
		return exitSetup
	}
	defer watcher.Stop()

	if !watcher.Enabled() {
		logger.Warn("Watch requested but hot reloading is disabled",
			zap.String("path", path),
		)
		return exitCode(ok)
	}

	changes := make(chan *config.Config)
	watcher.OnChange(func(next *config.Config) {
		select {
		case changes <- next:
		case <-ctx.Done():
		}
	})

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping")
			return exitCode(ok)
		case next := <-changes:
			ok, err = runScenarios(ctx, next)
			if err != nil {
				logger.Error("Harness failed after reload", zap.Error(err))
				ok = false
			}
		}
	}
}

// runScenarios wires a fresh container for cfg and runs the selected scenarios
func runScenarios(ctx context.Context, cfg *config.Config) (bool, error) {
	container, err := di.InitializeContainer(cfg, os.Stdout)
	if err != nil {
		return false, fmt.Errorf("failed to initialize container: %w", err)
	}
	defer container.Shutdown()

	scenarios, err := harness.Filter(harness.DefaultScenarios(), cfg.Harness.Scenarios)
	if err != nil {
		return false, err
	}

	report, err := container.Runner.Run(ctx, scenarios)
	if err != nil {
		return false, err
	}

	logCounters(container)
	return report.OK(), nil
}

func logCounters(container *di.Container) {
	if container.Metrics == nil {
		return
	}

	samples, err := container.Metrics.Counters()
	if err != nil {
		container.Logger.Warn("Failed to gather metrics", zap.Error(err))
		return
	}
	for _, s := range samples {
		container.Logger.Info("Metric",
			zap.String("name", s.Name),
			zap.Any("labels", s.Labels),
			zap.Float64("value", s.Value),
		)
	}
}

func exitCode(ok bool) int {
	if ok {
		return exitOK
	}
	return exitMismatch
}
