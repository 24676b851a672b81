// Package pytm serializes an entity graph into PyTM python source and
// runs it through the external interpreter when one is available.
package pytm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/limes/internal/interfaces"
	"github.com/ternarybob/limes/internal/models"
)

// classificationToPyTM maps our ordered labels onto pytm's Classification
// enum, which has no INTERNAL/CONFIDENTIAL members.
var classificationToPyTM = map[models.Classification]string{
	models.ClassificationPublic:       "Classification.PUBLIC",
	models.ClassificationInternal:     "Classification.RESTRICTED",
	models.ClassificationConfidential: "Classification.SENSITIVE",
	models.ClassificationRestricted:   "Classification.SECRET",
	models.ClassificationTopSecret:    "Classification.TOP_SECRET",
}

// controlAttributes maps well-known security control names onto pytm
// element control attributes. Unknown controls fall back to a comment.
var controlAttributes = map[string]string{
	"input_validation": "controls.validatesInput",
	"sanitization":     "controls.sanitizesInput",
	"authentication":   "controls.authenticatesSource",
	"authorization":    "controls.authorizesSource",
	"encryption":       "controls.isEncrypted",
	"audit_logging":    "controls.auditsAccess",
}

// piiKeywords and credentialKeywords drive the Data object flag
// heuristics, matched as substrings of the lower-cased data_type label.
var (
	piiKeywords        = []string{"pii", "personal data", "personal info", "customer record"}
	credentialKeywords = []string{"password", "token", "key", "credential", "secret"}
)

// Generator emits PyTM source from threat models.
type Generator struct {
	logger arbor.ILogger
}

// NewGenerator creates a new PyTM generator.
func NewGenerator(logger arbor.ILogger) *Generator {
	return &Generator{logger: logger}
}

// Generate serializes the model in input order: header, boundaries, Data
// objects (one per distinct flow data_type), components with controls,
// then dataflows. Models without explicit flows get the shared default
// flow plan so diagram and script agree. Deterministic given ordered
// input; flows with unresolved endpoints are skipped, matching the
// diagram synthesizer.
func (g *Generator) Generate(model *models.ThreatModel) string {
	var sb strings.Builder

	sb.WriteString("#!/usr/bin/env python3\n")
	sb.WriteString("from pytm import TM, Actor, Server, Datastore, Process, Dataflow, Boundary, ExternalEntity, Data, Classification\n\n")
	fmt.Fprintf(&sb, "tm = TM(\"%s\")\n", escapeString(model.Name))
	fmt.Fprintf(&sb, "tm.description = \"\"\"%s\"\"\"\n", escapeTriple(model.Description))
	sb.WriteString("tm.isOrdered = False\n")
	sb.WriteString("tm.mergeResponses = False\n")
	writeMetadata(&sb, model.Metadata)
	sb.WriteString("\n")

	boundaryVars := g.writeBoundaries(&sb, model.Boundaries)
	dataVars := g.writeDataObjects(&sb, model.DataFlows)
	compVars := g.writeComponents(&sb, model.Components, boundaryVars)
	g.writeDataFlows(&sb, model, compVars, dataVars)

	sb.WriteString("\nif __name__ == \"__main__\":\n    tm.process()\n")
	return sb.String()
}

func writeMetadata(sb *strings.Builder, metadata map[string]string) {
	if len(metadata) == 0 {
		return
	}
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(sb, "# %s: %s\n", sanitizeComment(k), sanitizeComment(metadata[k]))
	}
}

// writeBoundaries emits one Boundary per record with security level and
// controls as trailing comments. Returns name -> variable.
func (g *Generator) writeBoundaries(sb *strings.Builder, boundaries []models.TrustBoundary) map[string]string {
	sb.WriteString("# Boundaries\n")
	vars := make(map[string]string, len(boundaries))
	for _, boundary := range boundaries {
		if _, ok := vars[boundary.Name]; ok {
			continue
		}
		v := models.Slug(boundary.Name)
		vars[boundary.Name] = v
		fmt.Fprintf(sb, "%s = Boundary(\"%s\")  # security_level=%d", v, escapeString(boundary.Name), boundary.SecurityLevel)
		if len(boundary.Controls) > 0 {
			fmt.Fprintf(sb, ", controls=%s", sanitizeComment(strings.Join(boundary.Controls, ",")))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return vars
}

// writeDataObjects emits one Data declaration per distinct data_type in
// flow order, annotated with classification and the PII/credential
// heuristics. Returns data_type -> variable.
func (g *Generator) writeDataObjects(sb *strings.Builder, flows []models.DataFlow) map[string]string {
	vars := make(map[string]string)
	if len(flows) == 0 {
		return vars
	}
	sb.WriteString("# Data objects\n")
	for _, flow := range flows {
		if flow.DataType == "" {
			continue
		}
		if _, ok := vars[flow.DataType]; ok {
			continue
		}
		v := models.Slug(flow.DataType) + "_data"
		vars[flow.DataType] = v
		fmt.Fprintf(sb, "%s = Data(\"%s\", classification=%s, isPII=%s, isCredentials=%s)\n",
			v, escapeString(flow.DataType),
			pytmClassification(flow.Classification),
			pyBool(containsAny(flow.DataType, piiKeywords)),
			pyBool(containsAny(flow.DataType, credentialKeywords)))
	}
	sb.WriteString("\n")
	return vars
}

// writeComponents emits one typed declaration per component with
// boundary assignment, description, and one statement per enabled
// security control. Returns name -> variable, first-wins on slug
// collisions like the diagram synthesizer.
func (g *Generator) writeComponents(sb *strings.Builder, components []models.Component, boundaryVars map[string]string) map[string]string {
	sb.WriteString("# Components\n")
	vars := make(map[string]string, len(components))
	taken := make(map[string]bool, len(components))
	for _, comp := range components {
		if _, ok := vars[comp.Name]; ok {
			continue
		}
		v := models.Slug(comp.Name)
		vars[comp.Name] = v
		if taken[v] {
			// Collided display name collapses onto the first declaration.
			continue
		}
		taken[v] = true

		fmt.Fprintf(sb, "%s = %s(\"%s\")\n", v, pytmElement(comp.Type), escapeString(comp.Name))
		if bv, ok := boundaryVars[comp.Boundary]; ok {
			fmt.Fprintf(sb, "%s.inBoundary = %s\n", v, bv)
		}
		if comp.Description != "" {
			fmt.Fprintf(sb, "%s.description = \"%s\"\n", v, escapeString(comp.Description))
		}
		for _, ctrl := range comp.Controls {
			if !ctrl.Enabled {
				continue
			}
			if attr, ok := controlAttributes[strings.ToLower(ctrl.Name)]; ok {
				fmt.Fprintf(sb, "%s.%s = True\n", v, attr)
			} else {
				fmt.Fprintf(sb, "# %s control: %s (enabled)\n", v, sanitizeComment(ctrl.Name))
			}
		}
		sb.WriteString("\n")
	}
	return vars
}

// writeDataFlows emits explicit flows with their annotations, or the
// shared default flow plan when the model carries none.
func (g *Generator) writeDataFlows(sb *strings.Builder, model *models.ThreatModel, compVars, dataVars map[string]string) {
	sb.WriteString("# Data flows\n")

	if len(model.DataFlows) == 0 {
		for i, flow := range models.DefaultFlowPlan(model.Components) {
			src, dst := compVars[flow.Source], compVars[flow.Destination]
			fmt.Fprintf(sb, "flow_%d = Dataflow(%s, %s, \"%s\")\n", i, src, dst, escapeString(flow.Label))
			if flow.Response {
				fmt.Fprintf(sb, "flow_%d.isResponse = True\n", i)
			}
		}
		return
	}

	skipped := 0
	for i, flow := range model.DataFlows {
		src, okSrc := compVars[flow.Source]
		dst, okDst := compVars[flow.Destination]
		if !okSrc || !okDst {
			skipped++
			continue
		}
		fmt.Fprintf(sb, "flow_%d = Dataflow(%s, %s, \"%s\")\n", i, src, dst, escapeString(flow.DataType))
		fmt.Fprintf(sb, "flow_%d.protocol = \"%s\"\n", i, flow.Protocol)
		if flow.Port > 0 {
			fmt.Fprintf(sb, "flow_%d.dstPort = %d\n", i, flow.Port)
		}
		if dv, ok := dataVars[flow.DataType]; ok {
			fmt.Fprintf(sb, "flow_%d.data = %s\n", i, dv)
		}
		if flow.Authentication != "" {
			fmt.Fprintf(sb, "flow_%d.authenticatedWith = True  # %s\n", i, sanitizeComment(flow.Authentication))
		}
		if flow.Encryption != "" {
			fmt.Fprintf(sb, "flow_%d.isEncrypted = True  # %s\n", i, sanitizeComment(flow.Encryption))
		}
		if flow.Bidirectional {
			fmt.Fprintf(sb, "flow_%d_response = Dataflow(%s, %s, \"Response\")\n", i, dst, src)
			fmt.Fprintf(sb, "flow_%d_response.isResponse = True\n", i)
			fmt.Fprintf(sb, "flow_%d_response.responseTo = flow_%d\n", i, i)
		}
	}
	if skipped > 0 {
		g.logger.Debug().
			Int("skipped", skipped).
			Str("model", model.Name).
			Msg("Skipped dataflows with unresolved endpoints")
	}
}

// pytmElement selects the PyTM element class for a component type.
func pytmElement(t models.ComponentType) string {
	switch t.Category() {
	case models.CategoryActor:
		return "Actor"
	case models.CategoryDatastore:
		return "Datastore"
	case models.CategoryExternal:
		return "ExternalEntity"
	case models.CategoryProcess:
		if t == models.ComponentTypeServer {
			return "Server"
		}
		return "Process"
	default:
		return "Server"
	}
}

func pytmClassification(c models.Classification) string {
	if mapped, ok := classificationToPyTM[c]; ok {
		return mapped
	}
	return "Classification.UNKNOWN"
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func containsAny(label string, keywords []string) bool {
	lower := strings.ToLower(label)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// escapeString makes text safe inside a double-quoted python string:
// backslashes and quotes escaped, newlines become \n sequences.
func escapeString(text string) string {
	text = strings.ReplaceAll(text, "\\", "\\\\")
	text = strings.ReplaceAll(text, "\"", "\\\"")
	text = strings.ReplaceAll(text, "\r\n", "\\n")
	text = strings.ReplaceAll(text, "\n", "\\n")
	text = strings.ReplaceAll(text, "\r", "\\n")
	return text
}

// escapeTriple guards a triple-quoted literal: backslashes escaped and
// any embedded quote run broken so it cannot terminate the literal.
func escapeTriple(text string) string {
	text = strings.ReplaceAll(text, "\\", "\\\\")
	text = strings.ReplaceAll(text, "\"", "\\\"")
	return text
}

// sanitizeComment keeps user text on one comment line.
func sanitizeComment(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	return text
}

// Ensure Generator implements GeneratorService interface
var _ interfaces.GeneratorService = (*Generator)(nil)
