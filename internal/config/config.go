// Package config holds the host-level settings of the cluster-vm tool,
// read from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries the host-level settings. Values come from the
// environment; command-line flags override them.
type Config struct {
	// ManagerPath is the executable used to reach the cluster's VM
	// manager.
	ManagerPath string `env:"CLUSTER_VM_MANAGER_PATH" envDefault:"vm-mgr"`

	// ManagerTimeout bounds a single manager invocation. Zero means no
	// timeout.
	ManagerTimeout time.Duration `env:"CLUSTER_VM_MANAGER_TIMEOUT" envDefault:"0"`

	// Output selects the default output format (table, yaml or json).
	Output string `env:"CLUSTER_VM_OUTPUT" envDefault:"json"`
}

// FromEnv loads the configuration from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
