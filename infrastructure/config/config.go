// Package config loads the settings for the figures harness from defaults,
// an optional YAML file and the environment, in that order.
package config

import (
	"fmt"

	"figures/pkg/utils"
)

// Environment represents the deployment environment
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Config holds all settings
type Config struct {
	Environment Environment   `yaml:"environment" validate:"required,oneof=development staging production"`
	LogLevel    string        `yaml:"log_level" validate:"required,oneof=debug info warn error"`
	Metrics     MetricsConfig `yaml:"metrics"`
	Harness     HarnessConfig `yaml:"harness"`

	// LoadedFrom lists the sources applied, lowest priority first
	LoadedFrom []string `yaml:"-"`
}

// MetricsConfig controls the Prometheus collector
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace" validate:"required,max=64"`
}

// HarnessConfig selects which scenarios run and how
type HarnessConfig struct {
	// Scenarios names the scenarios to run; empty runs all of them
	Scenarios []string `yaml:"scenarios" validate:"dive,required"`
	FailFast  bool     `yaml:"fail_fast"`
}

// Default returns the configuration used before any file or environment is applied
func Default() *Config {
	return &Config{
		Environment: Development,
		LogLevel:    "info",
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "figures",
		},
		Harness: HarnessConfig{
			Scenarios: []string{},
		},
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}
