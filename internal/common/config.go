// Package common provides shared configuration, logging, and version
// utilities.
package common

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment   string              `toml:"environment"` // "development" or "production"
	Logging       LoggingConfig       `toml:"logging"`
	Artifacts     ArtifactsConfig     `toml:"artifacts"`
	Collaborators CollaboratorsConfig `toml:"collaborators"`
}

// LoggingConfig controls the arbor writers.
type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// ArtifactsConfig controls where generated diagrams and scripts are saved.
type ArtifactsConfig struct {
	Dir string `toml:"dir"` // Output directory for saved artifacts
}

// CollaboratorsConfig controls the external Graphviz and python tooling.
type CollaboratorsConfig struct {
	DotCommand     string   `toml:"dot_command"`      // Graphviz binary name (default: "dot")
	PythonCommands []string `toml:"python_commands"`  // Interpreter candidates, tried in order
	Timeout        string   `toml:"timeout"`          // e.g. "10s" - subprocess deadline, killed on expiry
	LaunchesPerSec float64  `toml:"launches_per_sec"` // Rate limit on subprocess launches
	LaunchBurst    int      `toml:"launch_burst"`     // Burst allowance for the rate limiter
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Environment: "development",
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
		Artifacts: ArtifactsConfig{
			Dir: home + string(os.PathSeparator) + "threatmodel_diagrams",
		},
		Collaborators: CollaboratorsConfig{
			DotCommand:     "dot",
			PythonCommands: []string{"python3", "python"},
			Timeout:        "10s",
			LaunchesPerSec: 2,
			LaunchBurst:    4,
		},
	}
}

// LoadFromFile loads TOML configuration from the given path. A missing
// file is not an error: defaults apply so the MCP binary can start with
// zero setup.
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

// TimeoutDuration parses the collaborator timeout, falling back to 10s
// on an empty or malformed value.
func (c *CollaboratorsConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}
