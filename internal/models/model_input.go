package models

// ModelInput is the structured-input shape accepted by the model builder.
// Field presence is checked with validator tags; enum membership and
// cross-references get explicit checks so errors can name the offending
// field and value.
type ModelInput struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	Components  []ComponentInput  `json:"components" validate:"required,min=1,dive"`
	Boundaries  []BoundaryInput   `json:"boundaries" validate:"dive"`
	DataFlows   []DataFlowInput   `json:"dataflows" validate:"dive"`
	Metadata    map[string]string `json:"metadata"`
}

// ComponentInput is the raw component record before validation.
type ComponentInput struct {
	Name        string                 `json:"name" validate:"required"`
	Type        string                 `json:"type" validate:"required"`
	Boundary    string                 `json:"boundary" validate:"required"`
	Description string                 `json:"description"`
	Controls    []SecurityControlInput `json:"controls"`
	Metadata    map[string]string      `json:"metadata"`
}

// BoundaryInput is the raw trust boundary record before validation.
type BoundaryInput struct {
	Name          string   `json:"name" validate:"required"`
	Type          string   `json:"type" validate:"required"`
	SecurityLevel *int     `json:"security_level" validate:"required"`
	Description   string   `json:"description"`
	Controls      []string `json:"controls"`
}

// DataFlowInput is the raw dataflow record before validation.
type DataFlowInput struct {
	Source         string `json:"source" validate:"required"`
	Destination    string `json:"destination" validate:"required"`
	Protocol       string `json:"protocol" validate:"required"`
	DataType       string `json:"data_type" validate:"required"`
	Classification string `json:"classification" validate:"required"`
	Bidirectional  bool   `json:"bidirectional"`
	Port           int    `json:"port"`
	Authentication string `json:"authentication"`
	Encryption     string `json:"encryption"`
	Description    string `json:"description"`
}

// SecurityControlInput is the raw security control record.
type SecurityControlInput struct {
	Name    string            `json:"name" validate:"required"`
	Enabled bool              `json:"enabled"`
	Config  map[string]string `json:"config"`
}
