// Package diagram converts an entity graph into Graphviz DOT text with
// boundary clustering, category styling, and deterministic ordering.
package diagram

import (
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/limes/internal/interfaces"
	"github.com/ternarybob/limes/internal/models"
)

// clusterPriority fixes the emission order of the well-known zones.
// Remaining boundaries follow in first-seen order.
var clusterPriority = []string{"Internet", "DMZ", "Internal"}

// clusterPalette keys cluster background colors by boundary kind.
var clusterPalette = map[models.BoundaryType]string{
	models.BoundaryTypeInternet:   "#E8F4FD",
	models.BoundaryTypeDMZ:        "#FFF3E0",
	models.BoundaryTypeInternal:   "#E8F5E9",
	models.BoundaryTypeCloud:      "#F3E5F5",
	models.BoundaryTypePartner:    "#FFFDE7",
	models.BoundaryTypeRestricted: "#FFEBEE",
}

const clusterFallbackColor = "#ECEFF1"

// nodeStyle carries the shape and fill for one component category.
type nodeStyle struct {
	shape string
	fill  string
}

var nodeStyles = map[models.ComponentCategory]nodeStyle{
	models.CategoryActor:     {shape: "ellipse", fill: "lightblue"},
	models.CategoryProcess:   {shape: "box", fill: "lightgreen"},
	models.CategoryDatastore: {shape: "cylinder", fill: "orange"},
	models.CategoryExternal:  {shape: "diamond", fill: "lightcoral"},
}

var nodeFallbackStyle = nodeStyle{shape: "box", fill: "lightgray"}

// Service renders threat models as DOT.
type Service struct {
	logger arbor.ILogger
}

// NewService creates a new diagram service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// Render produces the DOT description of the model. Identical input
// yields byte-identical output. Node identifiers come from the shared
// slug function; when two display names slug to the same identifier the
// first wins and later components collapse onto that node. Dataflows
// whose endpoints do not resolve to a component are skipped.
func (s *Service) Render(model *models.ThreatModel) string {
	ids := assignIdentifiers(model.Components)

	var sb strings.Builder
	sb.WriteString("digraph ThreatModel {\n")
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  nodesep=1.5;\n")
	sb.WriteString("  ranksep=2;\n\n")

	emitted := make(map[string]bool)
	for i, boundary := range orderBoundaries(model.Boundaries) {
		fmt.Fprintf(&sb, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&sb, "    label=\"%s\";\n", escapeLabel(boundary.Name))
		sb.WriteString("    style=filled;\n")
		fmt.Fprintf(&sb, "    color=\"%s\";\n", clusterColor(boundary.Type))
		for _, comp := range model.Components {
			if comp.Boundary != boundary.Name || emitted[ids[comp.Name]] {
				continue
			}
			writeNode(&sb, "    ", ids[comp.Name], comp)
			emitted[ids[comp.Name]] = true
		}
		sb.WriteString("  }\n\n")
	}

	// Components referencing an unknown boundary still get a node so no
	// edge can dangle; they sit outside every cluster.
	for _, comp := range model.Components {
		if emitted[ids[comp.Name]] {
			continue
		}
		writeNode(&sb, "  ", ids[comp.Name], comp)
		emitted[ids[comp.Name]] = true
	}

	sb.WriteString("  // Data flows\n")
	if len(model.DataFlows) == 0 {
		s.writePlannedEdges(&sb, model, ids)
	} else {
		s.writeFlowEdges(&sb, model, ids)
	}

	sb.WriteString("}\n")
	return sb.String()
}

// writePlannedEdges emits the automatic edge variant from the shared
// default flow plan.
func (s *Service) writePlannedEdges(sb *strings.Builder, model *models.ThreatModel, ids map[string]string) {
	for _, flow := range models.DefaultFlowPlan(model.Components) {
		style := ""
		if flow.Response {
			style = ", style=dashed"
		}
		fmt.Fprintf(sb, "  %s -> %s [label=\"%s\"%s];\n",
			ids[flow.Source], ids[flow.Destination], escapeLabel(flow.Label), style)
	}
}

// writeFlowEdges emits one edge per explicit dataflow: solid when an
// encryption annotation is present, dashed otherwise, plus a dotted
// reverse edge for bidirectional flows.
func (s *Service) writeFlowEdges(sb *strings.Builder, model *models.ThreatModel, ids map[string]string) {
	skipped := 0
	for _, flow := range model.DataFlows {
		src, okSrc := ids[flow.Source]
		dst, okDst := ids[flow.Destination]
		if !okSrc || !okDst {
			skipped++
			continue
		}
		style := "dashed"
		if flow.Encryption != "" {
			style = "solid"
		}
		fmt.Fprintf(sb, "  %s -> %s [label=\"%s\", style=%s];\n",
			src, dst, escapeLabel(flow.DataType), style)
		if flow.Bidirectional {
			fmt.Fprintf(sb, "  %s -> %s [label=\"Response\", style=dotted];\n", dst, src)
		}
	}
	if skipped > 0 {
		s.logger.Debug().
			Int("skipped", skipped).
			Str("model", model.Name).
			Msg("Skipped dataflows with unresolved endpoints")
	}
}

func writeNode(sb *strings.Builder, indent, id string, comp models.Component) {
	style := nodeStyleFor(comp.Type.Category())
	fmt.Fprintf(sb, "%s%s [label=\"%s\", shape=%s, style=filled, fillcolor=%s];\n",
		indent, id, escapeLabel(comp.Name), style.shape, style.fill)
}

// assignIdentifiers slugs every component name in emission order. On
// collision the earlier component keeps the identifier and the later
// display name maps onto the same node (first-wins).
func assignIdentifiers(components []models.Component) map[string]string {
	ids := make(map[string]string, len(components))
	for _, comp := range components {
		if _, ok := ids[comp.Name]; ok {
			continue
		}
		ids[comp.Name] = models.Slug(comp.Name)
	}
	return ids
}

// orderBoundaries applies the priority list, then first-seen order.
func orderBoundaries(boundaries []models.TrustBoundary) []models.TrustBoundary {
	ordered := make([]models.TrustBoundary, 0, len(boundaries))
	taken := make(map[string]bool, len(boundaries))
	for _, name := range clusterPriority {
		for _, b := range boundaries {
			if b.Name == name && !taken[name] {
				ordered = append(ordered, b)
				taken[name] = true
			}
		}
	}
	for _, b := range boundaries {
		if !taken[b.Name] {
			ordered = append(ordered, b)
			taken[b.Name] = true
		}
	}
	return ordered
}

func clusterColor(kind models.BoundaryType) string {
	if color, ok := clusterPalette[kind]; ok {
		return color
	}
	return clusterFallbackColor
}

func nodeStyleFor(category models.ComponentCategory) nodeStyle {
	if style, ok := nodeStyles[category]; ok {
		return style
	}
	return nodeFallbackStyle
}

// escapeLabel makes user-supplied text safe inside a double-quoted DOT
// string: backslashes and quotes are escaped, newlines become spaces.
func escapeLabel(text string) string {
	text = strings.ReplaceAll(text, "\\", "\\\\")
	text = strings.ReplaceAll(text, "\"", "\\\"")
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	return text
}

// Ensure Service implements DiagramService interface
var _ interfaces.DiagramService = (*Service)(nil)
