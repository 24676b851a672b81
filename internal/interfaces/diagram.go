package interfaces

import "github.com/ternarybob/limes/internal/models"

// DiagramService converts an entity graph into Graphviz DOT text with
// boundary clustering and category styling. Deterministic: identical
// input yields byte-identical output. Never fails on well-typed input.
type DiagramService interface {
	Render(model *models.ThreatModel) string
}
