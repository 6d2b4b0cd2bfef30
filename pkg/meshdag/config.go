package meshdag

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the build's tunable constants (spec.md §4.C, §4.H, §6)
// plus logging settings, following this codebase's config.Default() /
// config.Load() convention.
type Config struct {
	// ClusterSize is the target maximum triangles per cluster.
	ClusterSize int `yaml:"cluster_size"`
	// MinClusterSize floors the per-group simplification target.
	MinClusterSize int `yaml:"min_cluster_size"`
	// MinGroupSize and MaxGroupSize bound group sizes.
	MinGroupSize int `yaml:"min_group_size"`
	MaxGroupSize int `yaml:"max_group_size"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds build-progress logging settings (internal/buildlog).
// Build does not read it; Build logs only through a logger passed with
// WithLogger.
type LoggingConfig struct {
	Level   string `yaml:"level"`    // debug, info, warn, error
	LogFile string `yaml:"log_file"` // optional rotating file path; "" = console only
}

// DefaultConfig returns the spec.md §4.H defaults.
func DefaultConfig() Config {
	return Config{
		ClusterSize:    128,
		MinClusterSize: 64,
		MinGroupSize:   4,
		MaxGroupSize:   32,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads a YAML config file, starting from DefaultConfig and
// overlaying whatever fields the file sets.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("meshdag: reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("meshdag: parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("meshdag: marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("meshdag: writing config %s: %w", path, err)
	}
	return nil
}
