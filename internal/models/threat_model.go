package models

// SecurityControl represents a named mitigation attached to a component.
type SecurityControl struct {
	Name    string            `json:"name"`
	Enabled bool              `json:"enabled"`
	Config  map[string]string `json:"config,omitempty"`
}

// Component is a node in the architecture model: an actor, a server or
// process, a datastore, or an external service. Components are immutable
// value records constructed by the classifier or the model builder and
// never mutated afterwards.
type Component struct {
	Name        string            `json:"name"`
	Type        ComponentType     `json:"type"`
	Boundary    string            `json:"boundary"`
	Description string            `json:"description,omitempty"`
	Controls    []SecurityControl `json:"controls,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// TrustBoundary is a named security zone grouping components that share
// a trust level.
type TrustBoundary struct {
	Name          string       `json:"name"`
	Type          BoundaryType `json:"type"`
	SecurityLevel int          `json:"security_level"`
	Description   string       `json:"description,omitempty"`
	Controls      []string     `json:"controls,omitempty"`
}

// DataFlow is a directed, annotated edge between two components. Source
// and Destination reference components by display name.
type DataFlow struct {
	Source         string         `json:"source"`
	Destination    string         `json:"destination"`
	Protocol       Protocol       `json:"protocol"`
	DataType       string         `json:"data_type"`
	Classification Classification `json:"classification"`
	Bidirectional  bool           `json:"bidirectional,omitempty"`
	Port           int            `json:"port,omitempty"`
	Authentication string         `json:"authentication,omitempty"`
	Encryption     string         `json:"encryption,omitempty"`
	Description    string         `json:"description,omitempty"`
}

// ThreatModel is the canonical entity graph handed to the diagram
// synthesizer and the PyTM generator. Slice order is the input order and
// decides emission order everywhere downstream.
type ThreatModel struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Components  []Component       `json:"components"`
	Boundaries  []TrustBoundary   `json:"boundaries"`
	DataFlows   []DataFlow        `json:"dataflows,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// ComponentsByCategory returns the components of the given category in
// emission order.
func (m *ThreatModel) ComponentsByCategory(category ComponentCategory) []Component {
	var out []Component
	for _, comp := range m.Components {
		if comp.Type.Category() == category {
			out = append(out, comp)
		}
	}
	return out
}

// HasBoundary reports whether a boundary with the given name is declared.
func (m *ThreatModel) HasBoundary(name string) bool {
	for _, b := range m.Boundaries {
		if b.Name == name {
			return true
		}
	}
	return false
}

// ExternalCount returns the number of external-service components.
func (m *ThreatModel) ExternalCount() int {
	return len(m.ComponentsByCategory(CategoryExternal))
}
