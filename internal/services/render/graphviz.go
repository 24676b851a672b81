// Package render invokes the external Graphviz dot binary to rasterize
// DOT text. The core never blocks on this: failures surface as
// ErrCollaboratorUnavailable and callers degrade to textual output.
package render

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

// Service wraps the dot binary with a deadline and a launch rate limit.
type Service struct {
	dotCmd    string
	available bool
	timeout   time.Duration
	limiter   *rate.Limiter
	logger    arbor.ILogger
}

// NewService probes PATH for the configured dot binary.
func NewService(config *common.Config, logger arbor.ILogger) *Service {
	dotCmd := config.Collaborators.DotCommand
	if dotCmd == "" {
		dotCmd = "dot"
	}
	_, err := exec.LookPath(dotCmd)
	if err != nil {
		logger.Warn().Str("command", dotCmd).Msg("Graphviz not found, diagram rasterization disabled")
	}

	perSec := config.Collaborators.LaunchesPerSec
	if perSec <= 0 {
		perSec = 2
	}
	burst := config.Collaborators.LaunchBurst
	if burst <= 0 {
		burst = 4
	}

	return &Service{
		dotCmd:    dotCmd,
		available: err == nil,
		timeout:   config.Collaborators.TimeoutDuration(),
		limiter:   rate.NewLimiter(rate.Limit(perSec), burst),
		logger:    logger,
	}
}

// Available reports whether the dot binary was found on PATH.
func (s *Service) Available() bool {
	return s.available
}

// Convert renders DOT text to png or svg. The subprocess runs under the
// configured deadline and is killed on expiry.
func (s *Service) Convert(ctx context.Context, dot string, format string) ([]byte, error) {
	if !s.available {
		return nil, fmt.Errorf("%w: %s not found on PATH", models.ErrCollaboratorUnavailable, s.dotCmd)
	}
	if format != "png" && format != "svg" {
		return nil, models.NewInputError("format", "must be png or svg")
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrCollaboratorUnavailable, err)
	}

	tempDir, err := os.MkdirTemp("", "limes-render-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrCollaboratorUnavailable, err)
	}
	defer os.RemoveAll(tempDir)

	dotFile := filepath.Join(tempDir, "graph.dot")
	outFile := filepath.Join(tempDir, "graph."+format)
	if err := os.WriteFile(dotFile, []byte(dot), 0644); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrCollaboratorUnavailable, err)
	}

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, s.dotCmd, "-T"+format, dotFile, "-o", outFile)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			s.logger.Warn().Str("format", format).Msg("Graphviz conversion timed out")
			return nil, fmt.Errorf("%w: dot timed out after %s", models.ErrCollaboratorUnavailable, s.timeout)
		}
		s.logger.Warn().Err(err).Str("output", string(output)).Msg("Graphviz conversion failed")
		return nil, fmt.Errorf("%w: dot failed: %v", models.ErrCollaboratorUnavailable, err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrCollaboratorUnavailable, err)
	}
	return data, nil
}

// Ensure Service implements GraphvizService interface
var _ interfaces.GraphvizService = (*Service)(nil)
