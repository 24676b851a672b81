// Package analysis produces the templated markdown reports. The finding
// catalog is static by design: no threat reasoning is computed here.
package analysis

import (
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/limes/internal/interfaces"
	"github.com/ternarybob/limes/internal/models"
)

// findingCatalog is the fixed generic finding list returned when no
// computed analysis is available.
var findingCatalog = []models.Finding{
	{ID: "INP01", Title: "Potential SQL Injection in database queries", Severity: models.SeverityHigh,
		Description: "Use parameterized queries for all database access."},
	{ID: "AUTH01", Title: "Weak authentication between components", Severity: models.SeverityHigh,
		Description: "Implement strong authentication and authorization between all components."},
	{ID: "CRYPTO01", Title: "Unencrypted data transmission", Severity: models.SeverityHigh,
		Description: "Enable TLS/SSL for all communications."},
	{ID: "LOG01", Title: "Insufficient logging and monitoring", Severity: models.SeverityMedium,
		Description: "Add comprehensive security logging and monitoring."},
	{ID: "ACCESS01", Title: "Missing access controls on APIs", Severity: models.SeverityMedium,
		Description: "Implement least privilege access on all API surfaces."},
	{ID: "HDR01", Title: "Missing security response headers", Severity: models.SeverityLow,
		Description: "Set standard security headers and configure CORS deliberately."},
	{ID: "DEP01", Title: "Outdated third-party dependencies", Severity: models.SeverityLow,
		Description: "Schedule regular dependency updates and security audits."},
}

// Service renders the analysis reports.
type Service struct {
	logger arbor.ILogger
}

// NewService creates a new analysis service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// AnalyzeSystem formats the component and boundary breakdown as markdown,
// grouped by component type in first-seen type order.
func (s *Service) AnalyzeSystem(model *models.ThreatModel) string {
	var sb strings.Builder
	sb.WriteString("# System Analysis\n\n")
	fmt.Fprintf(&sb, "## Components Identified (%d)\n\n", len(model.Components))

	var typeOrder []models.ComponentType
	byType := make(map[models.ComponentType][]models.Component)
	for _, comp := range model.Components {
		if _, ok := byType[comp.Type]; !ok {
			typeOrder = append(typeOrder, comp.Type)
		}
		byType[comp.Type] = append(byType[comp.Type], comp)
	}

	for _, compType := range typeOrder {
		fmt.Fprintf(&sb, "### %ss\n", titleCase(compType.String()))
		for _, comp := range byType[compType] {
			fmt.Fprintf(&sb, "- **%s** (in %s)\n", comp.Name, comp.Boundary)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "## Trust Boundaries (%d)\n", len(model.Boundaries))
	for _, boundary := range model.Boundaries {
		fmt.Fprintf(&sb, "- %s (%s, security level %d)\n", boundary.Name, boundary.Type, boundary.SecurityLevel)
	}

	if len(model.DataFlows) > 0 {
		fmt.Fprintf(&sb, "\n## Data Flows (%d)\n", len(model.DataFlows))
		fmt.Fprintf(&sb, "Highest classification in transit: **%s**\n", models.HighestClassification(model.DataFlows))
	}

	return sb.String()
}

// QuickAnalysis formats the summary security report.
func (s *Service) QuickAnalysis(model *models.ThreatModel) string {
	var sb strings.Builder
	sb.WriteString("# Quick Security Analysis\n\n")
	sb.WriteString("## System Overview\n")
	fmt.Fprintf(&sb, "- **Components**: %d\n", len(model.Components))
	fmt.Fprintf(&sb, "- **Trust Boundaries**: %d\n", len(model.Boundaries))
	fmt.Fprintf(&sb, "- **External Integrations**: %d\n", model.ExternalCount())

	sb.WriteString(`
## Key Security Concerns

### Critical
1. **Data Protection**: Ensure all data at rest and in transit is encrypted
2. **Authentication**: Implement strong authentication between all components
3. **Input Validation**: Validate all inputs to prevent injection attacks

### Important
1. **Access Control**: Implement least privilege access
2. **Logging**: Enable comprehensive security logging
3. **Secrets Management**: Use secure vault for credentials

### Recommendations
1. Regular security audits
2. Implement rate limiting
3. Use security headers
4. Enable CORS properly
5. Regular dependency updates

## Next Steps
1. Run full threat analysis with ` + "`get_threats`" + `
2. Review component interactions with ` + "`generate_diagram`" + `
3. Implement security controls in ` + "`get_pytm_code`" + `
`)

	return sb.String()
}

// Findings returns the generic catalog filtered by severity. An empty or
// "all" filter returns everything; an unknown filter returns an empty
// list rather than failing.
func (s *Service) Findings(severityFilter string) []models.Finding {
	filter := strings.ToLower(strings.TrimSpace(severityFilter))
	if filter == "" || filter == "all" {
		out := make([]models.Finding, len(findingCatalog))
		copy(out, findingCatalog)
		return out
	}

	var out []models.Finding
	for _, finding := range findingCatalog {
		if string(finding.Severity) == filter {
			out = append(out, finding)
		}
	}
	return out
}

// titleCase capitalizes the first letter of each underscore-separated
// word ("file_storage" -> "File Storage").
func titleCase(s string) string {
	words := strings.Split(s, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// Ensure Service implements AnalysisService interface
var _ interfaces.AnalysisService = (*Service)(nil)
