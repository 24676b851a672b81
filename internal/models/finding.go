package models

// Severity grades a security finding.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// IsValid checks if the Severity is a known, valid level
func (s Severity) IsValid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// String returns the string representation of the Severity
func (s Severity) String() string {
	return string(s)
}

// Finding is a single entry in the generic security finding catalog.
// Findings are templated, not computed from the model.
type Finding struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description,omitempty"`
}
