package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/limes/internal/models"
)

func intPtr(v int) *int { return &v }

func validInput() *models.ModelInput {
	return &models.ModelInput{
		Name:        "Web Shop",
		Description: "An online shop",
		Boundaries: []models.BoundaryInput{
			{Name: "Internet", Type: "internet", SecurityLevel: intPtr(0)},
			{Name: "Internal", Type: "internal", SecurityLevel: intPtr(7)},
		},
		Components: []models.ComponentInput{
			{Name: "User", Type: "user", Boundary: "Internet"},
			{Name: "Web Server", Type: "server", Boundary: "Internal",
				Controls: []models.SecurityControlInput{{Name: "authentication", Enabled: true}}},
			{Name: "Orders DB", Type: "database", Boundary: "Internal"},
		},
		DataFlows: []models.DataFlowInput{
			{Source: "User", Destination: "Web Server", Protocol: "HTTPS",
				DataType: "Order Request", Classification: "INTERNAL", Port: 443, Encryption: "TLS1.3"},
			{Source: "Web Server", Destination: "Orders DB", Protocol: "SQL",
				DataType: "Order Record", Classification: "CONFIDENTIAL", Bidirectional: true},
		},
	}
}

func newTestBuilder() *Builder {
	return NewBuilder(arbor.NewLogger())
}

func TestBuildValidInput(t *testing.T) {
	builder := newTestBuilder()
	model, err := builder.Build(validInput())
	require.NoError(t, err)

	assert.Equal(t, "Web Shop", model.Name)
	require.Len(t, model.Components, 3)
	require.Len(t, model.Boundaries, 2)
	require.Len(t, model.DataFlows, 2)

	// Input order is preserved.
	assert.Equal(t, "User", model.Components[0].Name)
	assert.Equal(t, "Web Server", model.Components[1].Name)
	assert.Equal(t, "Orders DB", model.Components[2].Name)
	assert.Equal(t, models.ComponentTypeDatabase, model.Components[2].Type)

	// Protocol and classification parse case-insensitively onto the enums.
	assert.Equal(t, models.ProtocolHTTPS, model.DataFlows[0].Protocol)
	assert.Equal(t, models.ClassificationConfidential, model.DataFlows[1].Classification)
	assert.True(t, model.DataFlows[1].Bidirectional)

	require.Len(t, model.Components[1].Controls, 1)
	assert.True(t, model.Components[1].Controls[0].Enabled)
}

func TestBuildNilInput(t *testing.T) {
	builder := newTestBuilder()
	_, err := builder.Build(nil)

	var inputErr *models.InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestBuildMissingName(t *testing.T) {
	builder := newTestBuilder()
	input := validInput()
	input.Name = ""

	_, err := builder.Build(input)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Field, "Name")
}

func TestBuildInvalidComponentType(t *testing.T) {
	builder := newTestBuilder()
	input := validInput()
	input.Components[1].Type = "mainframe"

	_, err := builder.Build(input)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "components[1].type", verr.Field)
	assert.Equal(t, "mainframe", verr.Value)
}

func TestBuildInvalidProtocol(t *testing.T) {
	builder := newTestBuilder()
	input := validInput()
	input.DataFlows[0].Protocol = "carrier-pigeon"

	_, err := builder.Build(input)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "dataflows[0].protocol", verr.Field)
	assert.Equal(t, "carrier-pigeon", verr.Value)
}

func TestBuildInvalidClassification(t *testing.T) {
	builder := newTestBuilder()
	input := validInput()
	input.DataFlows[1].Classification = "SUPER_SECRET"

	_, err := builder.Build(input)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "dataflows[1].classification", verr.Field)
}

func TestBuildSecurityLevelOutOfRange(t *testing.T) {
	builder := newTestBuilder()

	for _, level := range []int{-1, 11} {
		input := validInput()
		input.Boundaries[1].SecurityLevel = intPtr(level)

		_, err := builder.Build(input)
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr, "level %d", level)
		assert.Equal(t, "boundaries[1].security_level", verr.Field)
	}
}

func TestBuildInvalidBoundaryType(t *testing.T) {
	builder := newTestBuilder()
	input := validInput()
	input.Boundaries[0].Type = "perimeter"

	_, err := builder.Build(input)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "boundaries[0].type", verr.Field)
	assert.Equal(t, "perimeter", verr.Value)
}

func TestBuildUndeclaredBoundaryReference(t *testing.T) {
	builder := newTestBuilder()
	input := validInput()
	input.Components[0].Boundary = "Mars"

	// Components must reference declared boundaries; this path fails
	// rather than auto-creating.
	_, err := builder.Build(input)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "components[0].boundary", verr.Field)
	assert.Equal(t, "Mars", verr.Value)
}

func TestBuildDoesNotResolveFlowEndpoints(t *testing.T) {
	builder := newTestBuilder()
	input := validInput()
	input.DataFlows[0].Source = "Ghost Component"

	// Unresolved endpoints are skipped by the generators, not rejected
	// here.
	model, err := builder.Build(input)
	require.NoError(t, err)
	assert.Len(t, model.DataFlows, 2)
}
