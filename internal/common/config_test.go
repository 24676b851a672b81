package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "dot", config.Collaborators.DotCommand)
	assert.Equal(t, []string{"python3", "python"}, config.Collaborators.PythonCommands)
	assert.Equal(t, 10*time.Second, config.Collaborators.TimeoutDuration())
	assert.Contains(t, config.Artifacts.Dir, "threatmodel_diagrams")
}

func TestLoadFromFileMissing(t *testing.T) {
	config, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Collaborators.DotCommand, config.Collaborators.DotCommand)
}

func TestLoadFromFile(t *testing.T) {
	content := `
environment = "production"

[logging]
level = "debug"
output = ["stdout", "file"]

[artifacts]
dir = "/tmp/diagrams"

[collaborators]
dot_command = "/usr/local/bin/dot"
python_commands = ["python3.12"]
timeout = "30s"
launches_per_sec = 5.0
launch_burst = 10
`
	path := filepath.Join(t.TempDir(), "limes.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, []string{"stdout", "file"}, config.Logging.Output)
	assert.Equal(t, "/tmp/diagrams", config.Artifacts.Dir)
	assert.Equal(t, "/usr/local/bin/dot", config.Collaborators.DotCommand)
	assert.Equal(t, []string{"python3.12"}, config.Collaborators.PythonCommands)
	assert.Equal(t, 30*time.Second, config.Collaborators.TimeoutDuration())
	assert.Equal(t, 5.0, config.Collaborators.LaunchesPerSec)
	assert.Equal(t, 10, config.Collaborators.LaunchBurst)
}

func TestLoadFromFilePartialOverride(t *testing.T) {
	content := `
[logging]
level = "warn"
`
	path := filepath.Join(t.TempDir(), "limes.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadFromFile(path)
	require.NoError(t, err)

	// Unset sections keep their defaults.
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "dot", config.Collaborators.DotCommand)
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limes.toml")
	require.NoError(t, os.WriteFile(path, []byte("environment = [broken"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestTimeoutDurationFallback(t *testing.T) {
	for _, raw := range []string{"", "not-a-duration", "-5s", "0s"} {
		c := CollaboratorsConfig{Timeout: raw}
		assert.Equal(t, 10*time.Second, c.TimeoutDuration(), "timeout %q", raw)
	}

	c := CollaboratorsConfig{Timeout: "250ms"}
	assert.Equal(t, 250*time.Millisecond, c.TimeoutDuration())
}
