package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/psybedev/trackassist/internal/telemetry"
)

// Config holds the pipeline's tunable parameters. Grounded on
// strategy.Config's shape (strategy/config.go): DefaultConfig,
// Validate, Clone, and JSON round-tripping, carrying collector
// cadence/budget instead of API/rate-limit parameters. No config
// *file* I/O lives here; embedding callers own reading a file and
// calling FromJSON themselves (spec.md §1 places config file I/O out
// of scope).
type Config struct {
	Collector *telemetry.CollectorConfig `json:"collector"`
}

// DefaultConfig returns the spec.md default constants.
func DefaultConfig() *Config {
	return &Config{
		Collector: telemetry.DefaultCollectorConfig(),
	}
}

// Validate checks that every field is within a sane range.
func (c *Config) Validate() error {
	if c.Collector == nil {
		return fmt.Errorf("collector config is required")
	}
	if c.Collector.RetryDelay <= 0 {
		return fmt.Errorf("collector retry delay must be positive")
	}
	if c.Collector.RetryBudget <= 0 {
		return fmt.Errorf("collector retry budget must be positive")
	}
	if c.Collector.LiveBufferSize <= 0 {
		return fmt.Errorf("collector live buffer size must be positive")
	}
	if c.Collector.WriterBufferSize <= 0 {
		return fmt.Errorf("collector writer buffer size must be positive")
	}
	return nil
}

// Clone deep-copies the config so callers can mutate a copy freely.
func (c *Config) Clone() *Config {
	cp := *c
	if c.Collector != nil {
		cc := *c.Collector
		cp.Collector = &cc
	}
	return &cp
}

func (c *Config) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

func FromJSON(data []byte) (*Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
