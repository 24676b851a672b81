// Package artifacts persists generated outputs to the configured
// directory using the {slug}_threatmodel_{timestamp}.{ext} naming
// convention.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/limes/internal/common"
	"github.com/ternarybob/limes/internal/interfaces"
	"github.com/ternarybob/limes/internal/models"
)

// timestampLayout keeps artifact names sortable.
const timestampLayout = "20060102_150405"

// Service writes artifacts to disk. Write failures are returned to the
// caller, which reports them as non-fatal warnings attached to the
// primary result.
type Service struct {
	dir    string
	now    func() time.Time
	logger arbor.ILogger
}

// NewService creates an artifact service rooted at the configured
// directory.
func NewService(config *common.Config, logger arbor.ILogger) *Service {
	return &Service{
		dir:    config.Artifacts.Dir,
		now:    time.Now,
		logger: logger,
	}
}

// Save writes data under the artifact directory and returns the absolute
// path. The filename stem strips characters outside word/space/hyphen
// from the system name and replaces spaces with underscores.
func (s *Service) Save(systemName, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory %s: %w", s.dir, err)
	}

	name := Filename(systemName, ext, s.now())
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	s.logger.Info().
		Str("path", abs).
		Int("bytes", len(data)).
		Msg("Saved artifact")

	return abs, nil
}

// Filename builds the artifact name for a system at a point in time.
func Filename(systemName, ext string, at time.Time) string {
	stem := models.FileSlug(systemName)
	if stem == "" {
		stem = "threat_model"
	}
	return fmt.Sprintf("%s_threatmodel_%s.%s", stem, at.Format(timestampLayout), ext)
}

// Ensure Service implements ArtifactService interface
var _ interfaces.ArtifactService = (*Service)(nil)
