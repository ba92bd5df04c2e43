package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PathEnvVar names the variable that points at the config file when no flag is given
const PathEnvVar = "FIGURES_CONFIG"

// ResolvePath returns the config file path: the flag value if set, else FIGURES_CONFIG.
// An empty result means no file is read.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(PathEnvVar)
}

// Loader layers configuration sources.
// Order, lowest priority first: defaults, the YAML file, environment variables.
type Loader struct {
	path    string
	sources []string
}

// NewLoader creates a loader reading the file at path. An empty path skips the file.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load builds and validates the configuration
func (l *Loader) Load() (*Config, error) {
	l.sources = l.sources[:0]

	cfg := Default()
	l.sources = append(l.sources, "defaults")

	if l.path != "" {
		if err := l.loadFile(cfg); err != nil {
			return nil, err
		}
		l.sources = append(l.sources, l.path)
	}

	if err := l.loadEnvironmentVariables(cfg); err != nil {
		return nil, err
	}
	l.sources = append(l.sources, "environment")

	cfg.LoadedFrom = append([]string(nil), l.sources...)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (l *Loader) loadFile(cfg *Config) error {
	file, err := os.Open(l.path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse %s: %w", l.path, err)
	}
	return nil
}

// loadEnvironmentVariables overlays environment variables on the configuration
func (l *Loader) loadEnvironmentVariables(cfg *Config) error {
	if val := os.Getenv("ENVIRONMENT"); val != "" {
		cfg.Environment = Environment(strings.ToLower(val))
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.LogLevel = strings.ToLower(val)
	}

	if val := os.Getenv("ENABLE_METRICS"); val != "" {
		enabled, err := parseBool("ENABLE_METRICS", val)
		if err != nil {
			return err
		}
		cfg.Metrics.Enabled = enabled
	}
	if val := os.Getenv("METRICS_NAMESPACE"); val != "" {
		cfg.Metrics.Namespace = val
	}

	if val := os.Getenv("HARNESS_SCENARIOS"); val != "" {
		cfg.Harness.Scenarios = splitList(val)
	}
	if val := os.Getenv("HARNESS_FAIL_FAST"); val != "" {
		failFast, err := parseBool("HARNESS_FAIL_FAST", val)
		if err != nil {
			return err
		}
		cfg.Harness.FailFast = failFast
	}
	return nil
}

func parseBool(name, s string) (bool, error) {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", name, s)
	}
	return val, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
