package models

// Classification is an ordinal data sensitivity label. The ordering is
// total: PUBLIC < INTERNAL < CONFIDENTIAL < RESTRICTED < TOP_SECRET.
type Classification string

const (
	ClassificationPublic       Classification = "PUBLIC"
	ClassificationInternal     Classification = "INTERNAL"
	ClassificationConfidential Classification = "CONFIDENTIAL"
	ClassificationRestricted   Classification = "RESTRICTED"
	ClassificationTopSecret    Classification = "TOP_SECRET"
)

// classificationRanks maps each label onto its position in the total order.
var classificationRanks = map[Classification]int{
	ClassificationPublic:       0,
	ClassificationInternal:     1,
	ClassificationConfidential: 2,
	ClassificationRestricted:   3,
	ClassificationTopSecret:    4,
}

// IsValid checks if the Classification is a known, valid label
func (c Classification) IsValid() bool {
	_, ok := classificationRanks[c]
	return ok
}

// String returns the string representation of the Classification
func (c Classification) String() string {
	return string(c)
}

// Rank returns the position of the label in the total order.
// Unknown labels rank below PUBLIC.
func (c Classification) Rank() int {
	if rank, ok := classificationRanks[c]; ok {
		return rank
	}
	return -1
}

// AllClassifications returns all valid labels in ascending order.
func AllClassifications() []Classification {
	return []Classification{
		ClassificationPublic,
		ClassificationInternal,
		ClassificationConfidential,
		ClassificationRestricted,
		ClassificationTopSecret,
	}
}

// HighestClassification returns the most sensitive label among the given
// flows. Returns PUBLIC when no flow carries a valid label.
func HighestClassification(flows []DataFlow) Classification {
	highest := ClassificationPublic
	for _, flow := range flows {
		if flow.Classification.Rank() > highest.Rank() {
			highest = flow.Classification
		}
	}
	return highest
}
