// Package classifier extracts components and trust boundaries from
// free-text architecture descriptions using a fixed ordered rule table.
package classifier

import (
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/limes/internal/interfaces"
	"github.com/ternarybob/limes/internal/models"
)

// Service implements rule-table classification.
type Service struct {
	logger arbor.ILogger
}

// NewService creates a new classifier service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// Extract walks the detection table in order against the lower-cased
// description. Each rule whose keywords match emits one component (dedup
// by canonical name) and registers its boundary. After the table pass,
// completion defaults fire: a "User" actor when no actor category
// matched, and an "Application Server" in DMZ when no server or process
// category matched. "Internet" is always present and always first in the
// boundary list. Pure and total; empty input still yields the defaults.
func (s *Service) Extract(description string) ([]models.Component, []models.TrustBoundary) {
	lower := strings.ToLower(description)

	components := make([]models.Component, 0, len(rules))
	seen := make(map[string]bool)

	reg := newBoundaryRegistry()

	for _, r := range rules {
		if seen[r.name] || !matches(lower, r.keywords) {
			continue
		}
		components = append(components, models.Component{
			Name:     r.name,
			Type:     r.compType,
			Boundary: r.boundary,
		})
		seen[r.name] = true
		reg.register(r.boundary)
	}

	if !hasCategory(components, models.CategoryActor) {
		components = append(components, models.Component{
			Name:     defaultActorName,
			Type:     models.ComponentTypeUser,
			Boundary: "Internet",
		})
	}
	if !hasCategory(components, models.CategoryProcess) {
		components = append(components, models.Component{
			Name:     defaultServerName,
			Type:     models.ComponentTypeServer,
			Boundary: "DMZ",
		})
		reg.register("DMZ")
	}

	s.logger.Debug().
		Int("components", len(components)).
		Int("boundaries", len(reg.ordered)).
		Msg("Extracted components from description")

	return components, reg.ordered
}

// ExtractModel wraps Extract into a ThreatModel with no explicit flows;
// downstream generators derive the default flow plan.
func (s *Service) ExtractModel(name, description string) *models.ThreatModel {
	components, boundaries := s.Extract(description)
	return &models.ThreatModel{
		Name:        name,
		Description: description,
		Components:  components,
		Boundaries:  boundaries,
	}
}

// matches reports whether any keyword occurs as a substring of the
// lower-cased description.
func matches(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func hasCategory(components []models.Component, category models.ComponentCategory) bool {
	for _, c := range components {
		if c.Type.Category() == category {
			return true
		}
	}
	return false
}

// boundaryRegistry keeps registration order with Internet seeded first.
type boundaryRegistry struct {
	ordered []models.TrustBoundary
	seen    map[string]bool
}

func newBoundaryRegistry() *boundaryRegistry {
	reg := &boundaryRegistry{seen: make(map[string]bool)}
	reg.register("Internet")
	return reg
}

func (r *boundaryRegistry) register(name string) {
	if r.seen[name] {
		return
	}
	boundary, ok := boundaryCatalog[name]
	if !ok {
		// Table rules only reference catalog boundaries, but keep the
		// registry total in case the table grows a new zone.
		boundary = models.TrustBoundary{Name: name, Type: models.BoundaryTypeInternal, SecurityLevel: 5}
	}
	r.ordered = append(r.ordered, boundary)
	r.seen[name] = true
}

// Ensure Service implements ClassifierService interface
var _ interfaces.ClassifierService = (*Service)(nil)
