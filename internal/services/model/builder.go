// Package model validates structured input and builds the canonical
// entity graph. Unlike the classifier path this does not degrade
// gracefully: any violation aborts with a ValidationError naming the
// field and offending value.
package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/limes/internal/interfaces"
	"github.com/ternarybob/limes/internal/models"
)

// Builder validates ModelInput records and produces ThreatModels.
type Builder struct {
	validate *validator.Validate
	logger   arbor.ILogger
}

// NewBuilder creates a new model builder.
func NewBuilder(logger arbor.ILogger) *Builder {
	return &Builder{
		validate: validator.New(),
		logger:   logger,
	}
}

// Build validates the structured input and returns the canonical model.
// Input order of components, boundaries, and dataflows is preserved; it
// decides emission order in the diagram and PyTM outputs. Dataflow
// endpoints are not resolved here: unresolved references are skipped by
// the generators, the same policy on both paths.
func (b *Builder) Build(input *models.ModelInput) (*models.ThreatModel, error) {
	if input == nil {
		return nil, models.NewInputError("model", "is required")
	}

	if err := b.validate.Struct(input); err != nil {
		return nil, translateValidatorError(err)
	}

	boundaries := make([]models.TrustBoundary, 0, len(input.Boundaries))
	declared := make(map[string]bool, len(input.Boundaries))
	for i, raw := range input.Boundaries {
		kind := models.BoundaryType(strings.ToLower(raw.Type))
		if !kind.IsValid() {
			return nil, models.NewValidationError(boundaryField(i, "type"), raw.Type, "not a valid boundary type")
		}
		level := *raw.SecurityLevel
		if level < 0 || level > 10 {
			return nil, models.NewValidationError(boundaryField(i, "security_level"), strconv.Itoa(level), "must be in [0,10]")
		}
		boundaries = append(boundaries, models.TrustBoundary{
			Name:          raw.Name,
			Type:          kind,
			SecurityLevel: level,
			Description:   raw.Description,
			Controls:      raw.Controls,
		})
		declared[raw.Name] = true
	}

	components := make([]models.Component, 0, len(input.Components))
	for i, raw := range input.Components {
		compType := models.ComponentType(strings.ToLower(raw.Type))
		if !compType.IsValid() {
			return nil, models.NewValidationError(componentField(i, "type"), raw.Type, "not a valid component type")
		}
		if !declared[raw.Boundary] {
			return nil, models.NewValidationError(componentField(i, "boundary"), raw.Boundary, "references an undeclared trust boundary")
		}
		controls := make([]models.SecurityControl, 0, len(raw.Controls))
		for _, ctrl := range raw.Controls {
			controls = append(controls, models.SecurityControl{
				Name:    ctrl.Name,
				Enabled: ctrl.Enabled,
				Config:  ctrl.Config,
			})
		}
		components = append(components, models.Component{
			Name:        raw.Name,
			Type:        compType,
			Boundary:    raw.Boundary,
			Description: raw.Description,
			Controls:    controls,
			Metadata:    raw.Metadata,
		})
	}

	flows := make([]models.DataFlow, 0, len(input.DataFlows))
	for i, raw := range input.DataFlows {
		protocol, ok := parseProtocol(raw.Protocol)
		if !ok {
			return nil, models.NewValidationError(flowField(i, "protocol"), raw.Protocol, "not a valid protocol")
		}
		classification := models.Classification(strings.ToUpper(raw.Classification))
		if !classification.IsValid() {
			return nil, models.NewValidationError(flowField(i, "classification"), raw.Classification, "not a valid classification")
		}
		if raw.Port < 0 || raw.Port > 65535 {
			return nil, models.NewValidationError(flowField(i, "port"), strconv.Itoa(raw.Port), "must be in [0,65535]")
		}
		flows = append(flows, models.DataFlow{
			Source:         raw.Source,
			Destination:    raw.Destination,
			Protocol:       protocol,
			DataType:       raw.DataType,
			Classification: classification,
			Bidirectional:  raw.Bidirectional,
			Port:           raw.Port,
			Authentication: raw.Authentication,
			Encryption:     raw.Encryption,
			Description:    raw.Description,
		})
	}

	b.logger.Debug().
		Str("model", input.Name).
		Int("components", len(components)).
		Int("boundaries", len(boundaries)).
		Int("dataflows", len(flows)).
		Msg("Built threat model from structured input")

	return &models.ThreatModel{
		Name:        input.Name,
		Description: input.Description,
		Components:  components,
		Boundaries:  boundaries,
		DataFlows:   flows,
		Metadata:    input.Metadata,
	}, nil
}

// parseProtocol matches case-insensitively against the protocol enum.
func parseProtocol(raw string) (models.Protocol, bool) {
	for _, p := range models.AllProtocols() {
		if strings.EqualFold(raw, string(p)) {
			return p, true
		}
	}
	return "", false
}

// translateValidatorError converts the first validator violation into the
// field/value shape the error contract requires.
func translateValidatorError(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		first := verrs[0]
		value := fmt.Sprintf("%v", first.Value())
		return models.NewValidationError(first.Namespace(), value, "failed "+first.Tag()+" constraint")
	}
	return models.NewValidationError("model", "", err.Error())
}

func componentField(i int, field string) string {
	return fmt.Sprintf("components[%d].%s", i, field)
}

func boundaryField(i int, field string) string {
	return fmt.Sprintf("boundaries[%d].%s", i, field)
}

func flowField(i int, field string) string {
	return fmt.Sprintf("dataflows[%d].%s", i, field)
}

// Ensure Builder implements ModelBuilderService interface
var _ interfaces.ModelBuilderService = (*Builder)(nil)
