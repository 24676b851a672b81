// Package interfaces provides service interfaces for dependency injection.
package interfaces

import "github.com/ternarybob/limes/internal/models"

// ClassifierService extracts components and trust boundaries from a
// free-text architecture description. Pure and total: every input,
// including the empty string, yields a non-empty component and boundary
// set, so there is no error return.
type ClassifierService interface {
	// Extract returns components in rule-table order and boundaries in
	// registration order with "Internet" always present and first.
	Extract(description string) ([]models.Component, []models.TrustBoundary)

	// ExtractModel wraps Extract into a ThreatModel with the given
	// system name and the description attached.
	ExtractModel(name, description string) *models.ThreatModel
}
