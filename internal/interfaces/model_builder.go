package interfaces

import "github.com/ternarybob/limes/internal/models"

// ModelBuilderService validates structured input and produces the
// canonical entity graph. This path does not degrade gracefully: any
// enum, range, or reference violation fails with a
// *models.ValidationError naming the field and offending value.
type ModelBuilderService interface {
	Build(input *models.ModelInput) (*models.ThreatModel, error)
}
