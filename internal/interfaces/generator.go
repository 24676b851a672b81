package interfaces

import "github.com/ternarybob/limes/internal/models"

// GeneratorService serializes an entity graph into PyTM python source,
// preserving input order. Never fails on well-typed input.
type GeneratorService interface {
	Generate(model *models.ThreatModel) string
}
