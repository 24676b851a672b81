package pytm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/limes/internal/common"
	"github.com/ternarybob/limes/internal/interfaces"
	"github.com/ternarybob/limes/internal/models"
)

// Executor runs generated PyTM code through the external python
// interpreter. Like the Graphviz service, failures surface as
// ErrCollaboratorUnavailable and callers fall back to the built-in
// synthesizer output.
type Executor struct {
	pythonCmd string
	available bool
	timeout   time.Duration
	limiter   *rate.Limiter
	logger    arbor.ILogger
}

// NewExecutor probes PATH for the configured interpreter candidates in
// order.
func NewExecutor(config *common.Config, logger arbor.ILogger) *Executor {
	candidates := config.Collaborators.PythonCommands
	if len(candidates) == 0 {
		candidates = []string{"python3", "python"}
	}

	pythonCmd := ""
	for _, candidate := range candidates {
		if _, err := exec.LookPath(candidate); err == nil {
			pythonCmd = candidate
			break
		}
	}
	if pythonCmd == "" {
		logger.Warn().Msg("Python not found, PyTM execution disabled")
	}

	perSec := config.Collaborators.LaunchesPerSec
	if perSec <= 0 {
		perSec = 2
	}
	burst := config.Collaborators.LaunchBurst
	if burst <= 0 {
		burst = 4
	}

	return &Executor{
		pythonCmd: pythonCmd,
		available: pythonCmd != "",
		timeout:   config.Collaborators.TimeoutDuration(),
		limiter:   rate.NewLimiter(rate.Limit(perSec), burst),
		logger:    logger,
	}
}

// Available reports whether a python interpreter was found on PATH.
func (e *Executor) Available() bool {
	return e.available
}

// Run writes code to a scratch file and executes it with the given pytm
// arguments, returning stdout. The subprocess runs under the configured
// deadline and is killed on expiry.
func (e *Executor) Run(ctx context.Context, code string, args ...string) (string, error) {
	if !e.available {
		return "", fmt.Errorf("%w: python not found on PATH", models.ErrCollaboratorUnavailable)
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrCollaboratorUnavailable, err)
	}

	tempDir, err := os.MkdirTemp("", "limes-pytm-*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrCollaboratorUnavailable, err)
	}
	defer os.RemoveAll(tempDir)

	modelFile := filepath.Join(tempDir, "model.py")
	if err := os.WriteFile(modelFile, []byte(code), 0644); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrCollaboratorUnavailable, err)
	}

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmdArgs := append([]string{modelFile}, args...)
	cmd := exec.CommandContext(runCtx, e.pythonCmd, cmdArgs...)
	cmd.Dir = tempDir
	output, err := cmd.Output()
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			e.logger.Warn().Msg("PyTM execution timed out")
			return "", fmt.Errorf("%w: pytm timed out after %s", models.ErrCollaboratorUnavailable, e.timeout)
		}
		e.logger.Warn().Err(err).Msg("PyTM execution failed")
		return "", fmt.Errorf("%w: pytm failed: %v", models.ErrCollaboratorUnavailable, err)
	}

	return string(output), nil
}

// Ensure Executor implements PyTMRunner interface
var _ interfaces.PyTMRunner = (*Executor)(nil)
