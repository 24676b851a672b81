package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/limes/internal/models"
)

func newTestService() *Service {
	return NewService(arbor.NewLogger())
}

func sampleModel() *models.ThreatModel {
	return &models.ThreatModel{
		Name: "Web Shop",
		Components: []models.Component{
			{Name: "User", Type: models.ComponentTypeUser, Boundary: "Internet"},
			{Name: "Web Frontend", Type: models.ComponentTypeServer, Boundary: "Internet"},
			{Name: "Orders DB", Type: models.ComponentTypeDatabase, Boundary: "Internal"},
			{Name: "Sessions DB", Type: models.ComponentTypeDatabase, Boundary: "Internal"},
			{Name: "Payment Gateway", Type: models.ComponentTypeExternalService, Boundary: "Internet"},
		},
		Boundaries: []models.TrustBoundary{
			{Name: "Internet", Type: models.BoundaryTypeInternet, SecurityLevel: 0},
			{Name: "Internal", Type: models.BoundaryTypeInternal, SecurityLevel: 7},
		},
	}
}

func TestAnalyzeSystemGroupsByType(t *testing.T) {
	svc := newTestService()
	report := svc.AnalyzeSystem(sampleModel())

	assert.Contains(t, report, "## Components Identified (5)")
	assert.Contains(t, report, "### Users\n- **User** (in Internet)")
	assert.Contains(t, report, "### Databases\n- **Orders DB** (in Internal)\n- **Sessions DB** (in Internal)")
	assert.Contains(t, report, "## Trust Boundaries (2)")
	assert.Contains(t, report, "- Internal (internal, security level 7)")

	// First-seen type order: users before servers before databases.
	usersAt := strings.Index(report, "### Users")
	serversAt := strings.Index(report, "### Servers")
	assert.Less(t, usersAt, serversAt)

	// No flows, no flow section.
	assert.NotContains(t, report, "## Data Flows")
}

func TestAnalyzeSystemReportsHighestClassification(t *testing.T) {
	svc := newTestService()
	model := sampleModel()
	model.DataFlows = []models.DataFlow{
		{Source: "User", Destination: "Web Frontend", Classification: models.ClassificationPublic},
		{Source: "Web Frontend", Destination: "Orders DB", Classification: models.ClassificationRestricted},
		{Source: "Web Frontend", Destination: "Sessions DB", Classification: models.ClassificationInternal},
	}

	report := svc.AnalyzeSystem(model)
	assert.Contains(t, report, "## Data Flows (3)")
	assert.Contains(t, report, "Highest classification in transit: **RESTRICTED**")
}

func TestQuickAnalysisCounts(t *testing.T) {
	svc := newTestService()
	report := svc.QuickAnalysis(sampleModel())

	assert.Contains(t, report, "# Quick Security Analysis")
	assert.Contains(t, report, "- **Components**: 5")
	assert.Contains(t, report, "- **Trust Boundaries**: 2")
	assert.Contains(t, report, "- **External Integrations**: 1")
	assert.Contains(t, report, "## Key Security Concerns")
	assert.Contains(t, report, "`get_pytm_code`")
}

func TestFindingsFilter(t *testing.T) {
	svc := newTestService()

	all := svc.Findings("all")
	require.Len(t, all, 7)
	assert.Equal(t, all, svc.Findings(""))

	high := svc.Findings("high")
	require.Len(t, high, 3)
	for _, f := range high {
		assert.Equal(t, models.SeverityHigh, f.Severity)
	}

	// Case and whitespace tolerant.
	assert.Equal(t, high, svc.Findings("  HIGH "))

	assert.Len(t, svc.Findings("medium"), 2)
	assert.Len(t, svc.Findings("low"), 2)

	// Unknown filters yield an empty list, not an error.
	assert.Empty(t, svc.Findings("apocalyptic"))
}

func TestFindingsReturnsCopy(t *testing.T) {
	svc := newTestService()

	first := svc.Findings("all")
	first[0].Title = "mutated"

	second := svc.Findings("all")
	assert.NotEqual(t, "mutated", second[0].Title)
}
