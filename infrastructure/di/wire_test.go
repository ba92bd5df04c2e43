package di

import (
	"bytes"
	"context"
	"testing"

	"figures/application/harness"
	"figures/infrastructure/config"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.LogLevel = "error"
	return cfg
}

func TestInitializeContainer(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig()

	container, err := InitializeContainer(cfg, &out)
	require.NoError(t, err)
	require.NotNil(t, container)
	defer container.Shutdown()

	assert.Same(t, cfg, container.Config)
	require.NotNil(t, container.Logger)
	require.NotNil(t, container.Metrics)
	require.NotNil(t, container.FigureService)
	require.NotNil(t, container.Runner)

	scenarios := harness.DefaultScenarios()
	report, err := container.Runner.Run(context.Background(), scenarios)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.NotEmpty(t, out.String())

	passed := testutil.ToFloat64(container.Metrics.ScenarioOutcomes.WithLabelValues("passed"))
	assert.Equal(t, float64(len(scenarios)), passed)
}

func TestInitializeContainer_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false

	container, err := InitializeContainer(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	defer container.Shutdown()

	assert.Nil(t, container.Metrics)

	report, err := container.Runner.Run(context.Background(), harness.DefaultScenarios()[:2])
	require.NoError(t, err)
	assert.Equal(t, 2, report.Passed)
}

func TestProvideLogger(t *testing.T) {
	tests := []struct {
		name    string
		env     config.Environment
		level   string
		wantErr bool
	}{
		{name: "development", env: config.Development, level: "debug"},
		{name: "production", env: config.Production, level: "warn"},
		{name: "bad level", env: config.Development, level: "chatty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Environment = tt.env
			cfg.LogLevel = tt.level

			logger, err := ProvideLogger(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger.Check(mustLevel(t, tt.level), "level check"))
		})
	}
}

func mustLevel(t *testing.T, s string) zapcore.Level {
	t.Helper()
	level, err := zapcore.ParseLevel(s)
	require.NoError(t, err)
	return level
}
