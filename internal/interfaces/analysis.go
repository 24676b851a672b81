package interfaces

import "github.com/ternarybob/limes/internal/models"

// AnalysisService produces the templated analysis texts. Findings are a
// static catalog, not computed threat reasoning.
type AnalysisService interface {
	// AnalyzeSystem formats a component/boundary breakdown as markdown.
	AnalyzeSystem(model *models.ThreatModel) string

	// QuickAnalysis formats the summary security report as markdown.
	QuickAnalysis(model *models.ThreatModel) string

	// Findings returns the generic finding catalog filtered by severity.
	// An empty or "all" filter returns every finding.
	Findings(severityFilter string) []models.Finding
}
