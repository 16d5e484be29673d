// Package config provides the configuration for objectpool workload runs.
// A single WorkloadConfig describes one run of the workload driver and is
// organized into logical sections:
//   - Workload: rounds, burst size, payload size, release order
//   - Observability: logging level and encoding
//
// Example usage:
//
//	cfg := config.NewWorkloadConfig("burst-test")
//	cfg.Workload.Burst = 64
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"github.com/ajitpratap0/objectpool/pkg/errors"
)

// ReleaseOrder selects the order in which a round's handles are released.
type ReleaseOrder string

const (
	// ReleaseLIFO releases the most recently acquired handle first
	ReleaseLIFO ReleaseOrder = "lifo"
	// ReleaseFIFO releases the earliest acquired handle first
	ReleaseFIFO ReleaseOrder = "fifo"
)

// WorkloadConfig is the configuration of one workload run.
type WorkloadConfig struct {
	// Name identifies the run in logs and reports
	Name    string `yaml:"name" json:"name"`
	// Version indicates the configuration version
	Version string `yaml:"version" json:"version"`

	// Workload controls the acquire/release pattern
	Workload WorkloadSection `yaml:"workload" json:"workload"`

	// Observability controls logging
	Observability ObservabilityConfig `yaml:"observability" json:"observability"`
}

// WorkloadSection contains the acquire/release pattern of a run.
type WorkloadSection struct {
	// Rounds is the number of acquire-then-release rounds
	Rounds       int          `yaml:"rounds" json:"rounds"`
	// Burst is the number of handles held at once within a round
	Burst        int          `yaml:"burst" json:"burst"`
	// PayloadSize is the number of bytes written into each buffer
	PayloadSize  int          `yaml:"payload_size" json:"payload_size"`
	// ReleaseOrder is lifo or fifo
	ReleaseOrder ReleaseOrder `yaml:"release_order" json:"release_order"`
}

// ObservabilityConfig contains logging settings.
type ObservabilityConfig struct {
	// LogLevel sets logging verbosity (debug, info, warn, error)
	LogLevel    string `yaml:"log_level" json:"log_level"`
	// LogEncoding is json or console
	LogEncoding string `yaml:"log_encoding" json:"log_encoding"`
	// Development enables colored levels and error stacktraces
	Development bool   `yaml:"development" json:"development"`
}

// NewWorkloadConfig creates a WorkloadConfig with defaults.
//
// Parameters:
//   - name: The run name
//
// Example:
//
//	cfg := config.NewWorkloadConfig("smoke")
//	cfg.Workload.Rounds = 10 // Override default
func NewWorkloadConfig(name string) *WorkloadConfig {
	return &WorkloadConfig{
		Name:    name,
		Version: "1.0.0",
		Workload: WorkloadSection{
			Rounds:       100,
			Burst:        16,
			PayloadSize:  1024,
			ReleaseOrder: ReleaseLIFO,
		},
		Observability: ObservabilityConfig{
			LogLevel:    "info",
			LogEncoding: "json",
		},
	}
}

// Validate checks required fields and value ranges.
func (c *WorkloadConfig) Validate() error {
	if c.Name == "" {
		return errors.New(errors.ErrorTypeConfig, "name is required")
	}
	if c.Workload.Rounds <= 0 {
		return errors.Newf(errors.ErrorTypeConfig, "rounds must be positive, got %d", c.Workload.Rounds).
			WithDetail("field", "workload.rounds")
	}
	if c.Workload.Burst <= 0 {
		return errors.Newf(errors.ErrorTypeConfig, "burst must be positive, got %d", c.Workload.Burst).
			WithDetail("field", "workload.burst")
	}
	if c.Workload.PayloadSize < 0 {
		return errors.Newf(errors.ErrorTypeConfig, "payload_size cannot be negative, got %d", c.Workload.PayloadSize).
			WithDetail("field", "workload.payload_size")
	}
	switch c.Workload.ReleaseOrder {
	case ReleaseLIFO, ReleaseFIFO:
	default:
		return errors.Newf(errors.ErrorTypeConfig, "release_order must be lifo or fifo, got %q", c.Workload.ReleaseOrder).
			WithDetail("field", "workload.release_order")
	}
	return nil
}
